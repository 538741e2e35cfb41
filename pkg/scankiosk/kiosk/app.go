// Package kiosk wires the home and product screens together.
//
// The navigation rules live here and do not depend on how screens are drawn:
// the SDL screens and the headless screens both implement Screens and run
// through the same router.
package kiosk

import (
	"context"
	"errors"
	"log/slog"

	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/i18n"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/navigator"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/router"
)

// Screens shows the kiosk's two views. Each call blocks until the view is left.
type Screens interface {
	Home(ctx context.Context, in HomeInput) (HomeResult, error)
	Product(ctx context.Context, in ProductInput) (ProductResult, error)
}

// App is a configured kiosk.
type App struct {
	Nav     *navigator.Navigator
	Msgs    *i18n.Messages
	Screens Screens
	Logger  *slog.Logger

	// OnNavigate, when set, is called with every screen the kiosk moves to
	// and the input it is shown with.
	OnNavigate func(to router.Screen, input any)
}

// Scans returns the scan handling shared by all screen implementations.
func (a *App) Scans() Scans {
	return Scans{Nav: a.Nav, Msgs: a.Msgs}
}

// Router builds the screen router.
func (a *App) Router() *router.Router {
	r := router.New().
		Name(ScreenHome, "home").
		Name(ScreenProduct, "product").
		WithLogger(a.logger())

	r.RegisterContext(ScreenHome, func(ctx context.Context, input any) (any, error) {
		return a.Screens.Home(ctx, input.(HomeInput))
	})
	r.RegisterContext(ScreenProduct, func(ctx context.Context, input any) (any, error) {
		return a.Screens.Product(ctx, input.(ProductInput))
	})

	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
		next, input := a.transition(from, result, stack)
		if a.OnNavigate != nil {
			a.OnNavigate(next, input)
		}
		return next, input
	})

	return r
}

// Run shows the home screen and navigates until a screen exits or ctx is done.
// Cancellation is a normal shutdown and returns nil.
func (a *App) Run(ctx context.Context) error {
	err := a.Router().RunContext(ctx, ScreenHome, HomeInput{})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (a *App) transition(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
	switch from {
	case ScreenHome:
		res := result.(HomeResult)
		if res.Action != HomeActionShowProduct {
			return router.ScreenExit, nil
		}

		product, err := a.Nav.Product(res.Code)
		if err != nil {
			return ScreenHome, HomeInput{Toast: a.Msgs.UnknownBarcode(res.Code), Resume: res.Resume}
		}
		stack.Push(ScreenHome, HomeInput{}, res.Resume)
		return ScreenProduct, ProductInput{Product: product}

	case ScreenProduct:
		res := result.(ProductResult)
		switch res.Action {
		case ProductActionExit:
			return router.ScreenExit, nil

		case ProductActionShowProduct:
			// Product to product replaces the current view; home stays underneath.
			if product, err := a.Nav.Product(res.Code); err == nil {
				return ScreenProduct, ProductInput{Product: product}
			}
			return ScreenHome, a.homeInput(stack, a.Msgs.UnknownBarcode(res.Code))

		case ProductActionInvalid:
			return ScreenHome, a.homeInput(stack, a.Msgs.UnknownBarcode(res.Code))

		default:
			return ScreenHome, a.homeInput(stack, "")
		}
	}

	a.logger().Error("Unknown screen finished", "screen", int(from))
	return router.ScreenExit, nil
}

// homeInput pops back to the home screen, restoring its focus.
func (a *App) homeInput(stack *router.Stack, toast string) HomeInput {
	in := HomeInput{Toast: toast}
	if entry := stack.PopTo(ScreenHome); entry != nil {
		if resume, ok := entry.Resume.(*HomeResume); ok {
			in.Resume = resume
		}
	}
	return in
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.Logger
}
