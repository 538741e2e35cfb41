// Package input reads key presses from devices that are not the kiosk window:
// a dedicated evdev scanner device on Linux, or a raw terminal for headless runs.
//
// Sources run on their own goroutine and hand key identifiers to an Emit
// callback. Callers are expected to move those keys onto the scanner loop
// (scanner.Dispatcher.Post) rather than decode them in place.
package input

import (
	"context"
	"errors"
)

// Emit receives one key identifier, in the same format the scan decoder expects.
type Emit func(key string)

// Source produces key presses until its context is cancelled.
type Source interface {
	Run(ctx context.Context, emit Emit) error
}

// ErrInterrupted is returned by the terminal source when the user presses Ctrl-C.
var ErrInterrupted = errors.New("input: interrupted")

// ErrDeviceNotFound is returned when no input device matches the configured name.
var ErrDeviceNotFound = errors.New("input: device not found")
