// Package constants defines shared constants, key identifiers, and configuration values
// used throughout the scankiosk application.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names read at startup.
const (
	EnvironmentEnvVar   = "ENVIRONMENT"
	WindowWidthEnvVar   = "WINDOW_WIDTH"
	WindowHeightEnvVar  = "WINDOW_HEIGHT"
	ScannerDeviceEnvVar = "SCANNER_DEVICE"
	ConfigPathEnvVar    = "SCANKIOSK_CONFIG"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// Key identifiers as delivered by every key source. Printable characters are
// delivered as themselves; everything else uses one of these names.
const (
	KeyEnter      = "Enter"
	KeyShift      = "Shift"
	KeyControl    = "Control"
	KeyAlt        = "Alt"
	KeyMeta       = "Meta"
	KeyTab        = "Tab"
	KeyEscape     = "Escape"
	KeyCapsLock   = "CapsLock"
	KeyBackspace  = "Backspace"
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyUnknown    = "Unidentified"
)

// Default timing and layout constants.
const (
	DefaultScanIdleTimeout = 300 * time.Millisecond // Idle gap that completes a scan without a terminator
	DefaultToastDuration   = 2 * time.Second        // How long an "unknown barcode" toast stays up

	DefaultHomeCode = "HOME"

	DefaultGridColumns       = 3
	DefaultTileSize    int32 = 320
	DefaultTileGap     int32 = 24
	DefaultBannerH     int32 = 112
)
