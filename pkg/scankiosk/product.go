package scankiosk

import (
	"context"

	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/catalog"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/constants"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/i18n"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/icons"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/internal"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/kiosk"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/scanner"
	"github.com/veandco/go-sdl2/sdl"
)

// Back button position from the top-left corner.
const backButtonInset int32 = 24

type productScreenState struct {
	screens   *Screens
	product   catalog.Product
	backRect  sdl.Rect
	name      *sdl.Texture // Drawn when the product image is missing
	backLabel *sdl.Texture // Drawn when the back icon is missing
	result    kiosk.ProductResult
	finished  bool
}

// Product shows one product full screen until the back button is pressed,
// another code is scanned, or the window is closed.
func (s *Screens) Product(ctx context.Context, in kiosk.ProductInput) (kiosk.ProductResult, error) {
	state := &productScreenState{
		screens: s,
		product: in.Product,
		backRect: sdl.Rect{
			X: backButtonInset,
			Y: backButtonInset,
			W: icons.BackButtonSize,
			H: icons.BackButtonSize,
		},
	}
	defer state.cleanup()

	dec := s.newDecoder(state.onScan)
	if err := dec.Activate(s.hub); err != nil {
		return kiosk.ProductResult{Action: kiosk.ProductActionExit}, err
	}
	defer dec.Deactivate()

	s.opts.Logger.Info("Showing product", "code", in.Product.Code, "name", in.Product.Name)

	for !state.finished {
		if ctx.Err() != nil {
			return kiosk.ProductResult{Action: kiosk.ProductActionExit}, nil
		}
		state.handleEvent(s.pump(state.isFinished))
		state.render()
	}
	return state.result, nil
}

func (st *productScreenState) onScan(ev scanner.ScanEvent) {
	if st.finished {
		return
	}
	st.finish(st.screens.opts.Scans.OnProduct(ev.Code))
}

func (st *productScreenState) isFinished() bool { return st.finished }

func (st *productScreenState) finish(res kiosk.ProductResult) {
	st.result = res
	st.finished = true
}

func (st *productScreenState) handleEvent(event sdl.Event) {
	if event == nil || st.finished {
		return
	}

	switch e := event.(type) {
	case *sdl.QuitEvent:
		st.finish(kiosk.ProductResult{Action: kiosk.ProductActionExit})

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN {
			return
		}
		ev := st.screens.publishKey(e)
		if st.finished || ev.DefaultPrevented() {
			return
		}
		switch ev.Key {
		case constants.KeyEscape, constants.KeyBackspace:
			st.finish(kiosk.ProductResult{Action: kiosk.ProductActionBack})
		}

	case *sdl.MouseButtonEvent:
		if e.Type == sdl.MOUSEBUTTONUP && e.Button == sdl.BUTTON_LEFT {
			x, y := st.screens.toOutput(e.X, e.Y)
			p := sdl.Point{X: x, Y: y}
			if p.InRect(&st.backRect) {
				st.finish(kiosk.ProductResult{Action: kiosk.ProductActionBack})
			}
		}
	}
}

func (st *productScreenState) render() {
	w := st.screens.window
	renderer := st.screens.renderer
	full := sdl.Rect{X: 0, Y: 0, W: w.GetWidth(), H: w.GetHeight()}

	w.Clear()
	if tex := st.screens.image(st.product.ProductImage); tex != nil {
		w.RenderCover(tex, full)
	} else {
		if st.name == nil {
			st.name = renderText(renderer, st.product.Name, internal.Fonts.LargeFont, internal.GetTheme().PlaceholderText)
		}
		renderCentered(renderer, st.name, full)
	}

	st.renderBackButton()
	w.Present()
}

func (st *productScreenState) renderBackButton() {
	renderer := st.screens.renderer

	style := st.product.BackButton
	if style == "" {
		style = catalog.BackButtonDark
	}
	if tex := st.screens.backButtons[style]; tex != nil {
		renderer.Copy(tex, nil, &st.backRect)
		return
	}

	if st.backLabel == nil {
		label := i18n.MsgBack
		if msgs := st.screens.opts.Scans.Msgs; msgs != nil {
			label = msgs.Get(i18n.MsgBack, nil)
		}
		st.backLabel = renderText(renderer, label, internal.Fonts.SmallFont, internal.GetTheme().ToastTextColor)
	}
	renderCentered(renderer, st.backLabel, st.backRect)
}

func (st *productScreenState) cleanup() {
	if st.name != nil {
		st.name.Destroy()
	}
	if st.backLabel != nil {
		st.backLabel.Destroy()
	}
}
