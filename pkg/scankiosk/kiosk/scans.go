package kiosk

import (
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/i18n"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/navigator"
)

// Scans turns navigator decisions into screen results. Every screen
// implementation uses it so that scans behave the same with or without a display.
type Scans struct {
	Nav  *navigator.Navigator
	Msgs *i18n.Messages
}

// OnHome handles a scan on the home screen. When done is true the home screen
// should finish with res; otherwise it stays and shows toast if it is not empty.
func (s Scans) OnHome(code string) (res HomeResult, toast string, done bool) {
	d := s.Nav.Resolve(navigator.ViewHome, code)
	switch d.Action {
	case navigator.ActionShowProduct:
		return HomeResult{Action: HomeActionShowProduct, Code: d.Code}, "", true
	case navigator.ActionToast:
		return HomeResult{}, s.Msgs.UnknownBarcode(d.Code), false
	}
	return HomeResult{}, "", false
}

// OnTile handles a tile being clicked or activated. Inert tiles return false.
func (s Scans) OnTile(code string) (HomeResult, bool) {
	d := s.Nav.Select(code)
	if d.Action != navigator.ActionShowProduct {
		return HomeResult{}, false
	}
	return HomeResult{Action: HomeActionShowProduct, Code: d.Code}, true
}

// OnProduct handles a scan on a product screen. Every scan there leaves the
// screen, so the result is always final.
func (s Scans) OnProduct(code string) ProductResult {
	d := s.Nav.Resolve(navigator.ViewProduct, code)
	switch {
	case d.Action == navigator.ActionShowProduct:
		return ProductResult{Action: ProductActionShowProduct, Code: d.Code}
	case d.Err != nil:
		return ProductResult{Action: ProductActionInvalid, Code: d.Code}
	default:
		return ProductResult{Action: ProductActionBack}
	}
}
