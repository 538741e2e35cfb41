// Package scankiosk runs the barcode scanner kiosk on an SDL display.
//
// The kiosk shows a home screen of product tiles. Scanning a product's
// barcode, or touching its tile, opens a full-screen product image; scanning
// another code moves on, and the back button or the home code returns to the
// tiles. Unknown codes show a short toast.
//
// Scan decoding, navigation and catalog handling live in subpackages that do
// not depend on SDL. This package draws them.
package scankiosk

import (
	"log/slog"

	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/constants"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/internal"
)

// Options configures the display.
type Options struct {
	WindowTitle   string                 // Window title, visible in windowed mode
	Windowed      bool                   // Run in a resizable window instead of fullscreen
	WindowOptions internal.WindowOptions // Explicit SDL window flags; overrides Windowed
	FontPath      string                 // TTF font; a system font is used when empty or missing
	Background    string                 // Home screen background image; may be empty
	Theme         *internal.Theme        // Colors; the default theme when nil
	LogPath       string                 // Full path of the log file; stdout only when empty
}

// Init starts SDL and opens the kiosk window.
// Must be called before Run and from the main OS thread.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	theme := internal.DefaultTheme()
	if options.Theme != nil {
		theme = *options.Theme
	}
	if options.FontPath != "" {
		theme.FontPath = options.FontPath
	}
	internal.SetTheme(theme)

	winOpts := options.WindowOptions
	if winOpts.IsZero() {
		winOpts = internal.KioskWindowOptions(options.Windowed || constants.IsDevMode())
	}

	if err := internal.Init(options.WindowTitle, winOpts, theme.FontPath, options.Background); err != nil {
		return NewInfrastructureError("init", err)
	}
	return nil
}

// Close releases all SDL resources and closes the log file.
func Close() {
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before the first log line is written.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// GetWindow returns the underlying SDL window wrapper.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}
