// Package navigator decides what the kiosk does with a scanned or selected code.
//
// The navigator is the consumer side of the scan decoder: given the view that is
// currently on screen and a code, it looks the code up in the catalog and returns a
// Decision. It never touches the screen itself.
package navigator

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/catalog"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/constants"
)

// Consumer-level scan errors. Both are shown to the user as a transient toast.
var (
	ErrUnknownCode     = errors.New("unknown barcode")
	ErrPlaceholderCode = errors.New("barcode has no product page")
)

// CodeError attaches the offending code to ErrUnknownCode or ErrPlaceholderCode.
type CodeError struct {
	Code string
	Err  error
}

func (e *CodeError) Error() string {
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *CodeError) Unwrap() error {
	return e.Err
}

// View identifies the screen a scan arrived on.
type View int

const (
	ViewHome View = iota
	ViewProduct
)

func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewProduct:
		return "product"
	default:
		return "unknown"
	}
}

// Action is what the current screen should do next.
type Action int

const (
	ActionIgnore      Action = iota // Stay put, show nothing
	ActionShowProduct               // Open Decision.Product's detail view
	ActionToast                     // Stay put and show Decision.Err as a toast
	ActionGoHome                    // Return home; show Decision.Err there if set
)

func (a Action) String() string {
	switch a {
	case ActionIgnore:
		return "ignore"
	case ActionShowProduct:
		return "show_product"
	case ActionToast:
		return "toast"
	case ActionGoHome:
		return "go_home"
	default:
		return "unknown"
	}
}

// Decision is the navigator's answer for one code.
type Decision struct {
	Action  Action
	Code    string
	Product catalog.Product
	Err     error
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithHomeCode sets the code that means "go home". Scanning it on the home
// screen is ignored.
func WithHomeCode(code string) Option {
	return func(n *Navigator) {
		n.homeCode = catalog.NormalizeCode(code)
	}
}

// WithLogger sets the logger used to trace decisions.
func WithLogger(l *slog.Logger) Option {
	return func(n *Navigator) {
		if l != nil {
			n.logger = l
		}
	}
}

// Navigator resolves codes against a catalog.
type Navigator struct {
	catalog  *catalog.Catalog
	homeCode string
	logger   *slog.Logger
}

// New creates a navigator over c.
func New(c *catalog.Catalog, opts ...Option) *Navigator {
	n := &Navigator{
		catalog:  c,
		homeCode: constants.DefaultHomeCode,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// HomeCode returns the normalized home code.
func (n *Navigator) HomeCode() string {
	return n.homeCode
}

// Resolve decides what to do with a scan that arrived while view was shown.
func (n *Navigator) Resolve(view View, code string) Decision {
	code = catalog.NormalizeCode(code)
	d := n.resolve(view, code)
	n.logger.Info("Resolved scan",
		"view", view.String(),
		"code", code,
		"action", d.Action.String(),
		"error", d.Err,
	)
	return d
}

func (n *Navigator) resolve(view View, code string) Decision {
	if n.homeCode != "" && code == n.homeCode {
		if view == ViewHome {
			return Decision{Action: ActionIgnore, Code: code}
		}
		return Decision{Action: ActionGoHome, Code: code}
	}

	product, err := n.activatable(code)
	if err == nil {
		return Decision{Action: ActionShowProduct, Code: code, Product: product}
	}

	if view == ViewProduct {
		return Decision{Action: ActionGoHome, Code: code, Product: product, Err: err}
	}
	return Decision{Action: ActionToast, Code: code, Product: product, Err: err}
}

// Select handles a tile being chosen on the home grid. Only activatable products
// navigate; every other tile is inert.
func (n *Navigator) Select(code string) Decision {
	code = catalog.NormalizeCode(code)
	product, err := n.activatable(code)
	if err != nil {
		return Decision{Action: ActionIgnore, Code: code, Product: product}
	}
	return Decision{Action: ActionShowProduct, Code: code, Product: product}
}

// Product returns the activatable product for code, or a *CodeError.
func (n *Navigator) Product(code string) (catalog.Product, error) {
	return n.activatable(catalog.NormalizeCode(code))
}

func (n *Navigator) activatable(code string) (catalog.Product, error) {
	product, ok := n.catalog.Lookup(code)
	if !ok {
		return catalog.Product{}, &CodeError{Code: code, Err: ErrUnknownCode}
	}
	if !product.Activatable() {
		return product, &CodeError{Code: code, Err: ErrPlaceholderCode}
	}
	return product, nil
}

// IsUnknownCode reports whether err classifies a code with no catalog entry.
func IsUnknownCode(err error) bool {
	return errors.Is(err, ErrUnknownCode)
}

// IsPlaceholderCode reports whether err classifies a code whose entry has no detail view.
func IsPlaceholderCode(err error) bool {
	return errors.Is(err, ErrPlaceholderCode)
}
