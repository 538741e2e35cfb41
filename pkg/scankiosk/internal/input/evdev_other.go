//go:build !linux

package input

import (
	"context"
	"errors"
	"log/slog"
)

// EvdevSource is only available on Linux.
type EvdevSource struct {
	Device string
	Grab   bool
	Logger *slog.Logger
}

func (s *EvdevSource) Run(ctx context.Context, emit Emit) error {
	return errors.New("input: evdev is only supported on linux")
}
