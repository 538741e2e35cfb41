//go:build linux

package input

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/holoplot/go-evdev"
)

// EvdevSource reads a dedicated scanner from /dev/input.
//
// Device is either a device node path or a case-insensitive substring of the
// device name (for example "Honeywell"). With Grab set the device is grabbed
// exclusively so scanned codes never reach the desktop or the kiosk window.
type EvdevSource struct {
	Device string
	Grab   bool
	Logger *slog.Logger
}

// Run opens the device and emits key presses until ctx is cancelled.
func (s *EvdevSource) Run(ctx context.Context, emit Emit) error {
	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	path, err := resolveDevicePath(s.Device)
	if err != nil {
		return err
	}

	dev, err := evdev.Open(path)
	if err != nil {
		return fmt.Errorf("input: open %s: %w", path, err)
	}

	name, _ := dev.Name()
	logger.Info("Scanner device opened", "path", path, "name", name)

	if s.Grab {
		if err := dev.Grab(); err != nil {
			dev.Close()
			return fmt.Errorf("input: grab %s: %w", path, err)
		}
	}

	var closeOnce sync.Once
	closeDevice := func() {
		closeOnce.Do(func() {
			if s.Grab {
				dev.Ungrab()
			}
			dev.Close()
		})
	}
	defer closeDevice()

	// Closing the device is the only way to unblock ReadOne.
	stop := context.AfterFunc(ctx, closeDevice)
	defer stop()

	var tr EvdevTranslator
	for {
		ev, err := dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, os.ErrClosed) {
				logger.Debug("Scanner device closed", "path", path)
				return nil
			}
			return fmt.Errorf("input: read %s: %w", path, err)
		}

		if key, ok := tr.Translate(*ev); ok {
			emit(key)
		}
	}
}

func resolveDevicePath(device string) (string, error) {
	if device == "" {
		return "", fmt.Errorf("%w: no device configured", ErrDeviceNotFound)
	}
	if strings.HasPrefix(device, "/") {
		return device, nil
	}

	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return "", fmt.Errorf("input: list devices: %w", err)
	}

	want := strings.ToLower(device)
	for _, p := range paths {
		if strings.Contains(strings.ToLower(p.Name), want) {
			return p.Path, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrDeviceNotFound, device)
}
