package scankiosk

import (
	"errors"
	"fmt"
)

// InfrastructureError reports a failure of the display stack itself: SDL
// could not start, a font or image could not be loaded, a texture could not
// be created. Scans never produce one.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init", "load_tile")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("scankiosk: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("scankiosk: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}
