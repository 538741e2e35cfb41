package router

import (
	"context"
	"fmt"
	"log/slog"
)

// Screen is a type-safe identifier for screens.
// Applications should define their own Screen constants using iota.
//
// Example:
//
//	const (
//	    ScreenHome Screen = iota
//	    ScreenProduct
//	)
type Screen int

// ScreenFunc is a function that runs a screen.
// It takes an input and returns a result.
// The input and result types are screen-specific.
type ScreenFunc func(input any) (result any, err error)

// ScreenContextFunc is a ScreenFunc that also receives the router's context.
// Screens that block on input should return when the context is done.
type ScreenContextFunc func(ctx context.Context, input any) (result any, err error)

// TransitionFunc is called after each screen completes to determine the next screen.
// It receives the screen that just completed, its result, and the navigation stack.
// It returns the next screen to navigate to and its input.
//
// Return (screen, input) to navigate to a new screen.
// Return stack.Pop() values to go back.
// Return (-1, nil) to exit the router.
type TransitionFunc func(from Screen, result any, stack *Stack) (next Screen, input any)

// ScreenExit is a special Screen value that signals the router to exit.
const ScreenExit Screen = -1

// Router manages screen navigation with explicit data flow.
// Screens are registered with their functions, and a single transition
// function handles all routing logic in one place.
type Router struct {
	screens    map[Screen]ScreenContextFunc
	names      map[Screen]string
	transition TransitionFunc
	stack      *Stack
	logger     *slog.Logger
}

// New creates a new Router.
func New() *Router {
	return &Router{
		screens: make(map[Screen]ScreenContextFunc),
		names:   make(map[Screen]string),
		stack:   NewStack(),
		logger:  slog.New(slog.DiscardHandler),
	}
}

// Register adds a screen to the router.
// The screen function will be called when navigating to this screen.
func (r *Router) Register(screen Screen, fn ScreenFunc) *Router {
	return r.RegisterContext(screen, func(_ context.Context, input any) (any, error) {
		return fn(input)
	})
}

// RegisterContext adds a screen that observes the router's context.
func (r *Router) RegisterContext(screen Screen, fn ScreenContextFunc) *Router {
	r.screens[screen] = fn
	return r
}

// Name sets a human-readable name for screen, used in logs and errors.
func (r *Router) Name(screen Screen, name string) *Router {
	r.names[screen] = name
	return r
}

// WithLogger logs every transition at debug level.
func (r *Router) WithLogger(l *slog.Logger) *Router {
	if l != nil {
		r.logger = l
	}
	return r
}

// OnTransition sets the transition function that determines navigation flow.
// This function is called after each screen completes.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// Run starts the router at the given screen with the given input.
// It continues running until the transition function returns ScreenExit
// or an error occurs.
func (r *Router) Run(start Screen, input any) error {
	return r.RunContext(context.Background(), start, input)
}

// RunContext is Run with cancellation. A cancelled context stops the router
// before the next screen starts and is returned as the error.
func (r *Router) RunContext(ctx context.Context, start Screen, input any) error {
	if r.transition == nil {
		return fmt.Errorf("router: no transition function set")
	}

	current := start
	currentInput := input

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fn, ok := r.screens[current]
		if !ok {
			return fmt.Errorf("router: screen %s not registered", r.screenName(current))
		}

		result, err := fn(ctx, currentInput)
		if err != nil {
			return fmt.Errorf("router: screen %s error: %w", r.screenName(current), err)
		}

		next, nextInput := r.transition(current, result, r.stack)

		r.logger.Debug("Screen transition",
			"from", r.screenName(current),
			"to", r.screenName(next),
			"stack", r.stack.Len(),
		)

		if next == ScreenExit {
			return nil
		}

		current = next
		currentInput = nextInput
	}
}

// Stack returns the navigation stack for use in transition functions.
// This allows the transition function to push/pop for back navigation.
func (r *Router) Stack() *Stack {
	return r.stack
}

func (r *Router) screenName(s Screen) string {
	if s == ScreenExit {
		return "exit"
	}
	if name, ok := r.names[s]; ok {
		return name
	}
	return fmt.Sprintf("%d", int(s))
}
