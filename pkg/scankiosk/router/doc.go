// Package router runs the kiosk's screens one after another.
//
// Each screen is a function from an input to a result. A single transition
// function looks at the result of the screen that just finished and picks the
// next screen and its input, so all navigation rules live in one place.
//
// # Basic Usage
//
//	const (
//	    ScreenHome router.Screen = iota
//	    ScreenProduct
//	)
//
//	r := router.New()
//
//	r.RegisterContext(ScreenHome, func(ctx context.Context, input any) (any, error) {
//	    return homeScreen(ctx, input.(HomeInput))
//	})
//
//	r.RegisterContext(ScreenProduct, func(ctx context.Context, input any) (any, error) {
//	    return productScreen(ctx, input.(ProductInput))
//	})
//
//	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
//	    switch from {
//	    case ScreenHome:
//	        res := result.(HomeResult)
//	        if res.Action == HomeActionShowProduct {
//	            // Remember where focus was so Back can restore it.
//	            stack.Push(ScreenHome, HomeInput{}, res.Resume)
//	            return ScreenProduct, ProductInput{Code: res.Code}
//	        }
//	    case ScreenProduct:
//	        if entry := stack.PopTo(ScreenHome); entry != nil {
//	            return ScreenHome, HomeInput{Resume: entry.Resume.(*HomeResume)}
//	        }
//	        return ScreenHome, HomeInput{}
//	    }
//	    return router.ScreenExit, nil
//	})
//
//	err := r.RunContext(ctx, ScreenHome, HomeInput{})
//
// # Resume State
//
// Screens can return resume state (like the focused tile) that gets stored
// on the stack when navigating forward. When navigating back, this state
// is passed back to the screen via its input, allowing it to restore position.
//
// # Cancellation
//
// RunContext checks its context before every screen and hands it to screens
// registered with RegisterContext. Run is RunContext with a background context.
package router
