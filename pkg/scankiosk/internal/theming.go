package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the kiosk screens.
type Theme struct {
	BackgroundColor sdl.Color // Shown behind letterboxed images and while textures load
	FocusColor      sdl.Color // Outline of the keyboard-focused tile
	ToastColor      sdl.Color // Toast pill background
	ToastTextColor  sdl.Color
	PlaceholderText sdl.Color // Label drawn on tiles whose image is missing
	FontPath        string    // Path to the primary UI font
}

// DefaultTheme matches the kiosk artwork: black surround, red toast.
func DefaultTheme() Theme {
	return Theme{
		BackgroundColor: HexToColor(0x000000),
		FocusColor:      HexToColor(0xFFFFFF),
		ToastColor:      HexToColor(0xDC2626),
		ToastTextColor:  HexToColor(0xFFFFFF),
		PlaceholderText: HexToColor(0xD4D4D4),
	}
}

var currentTheme = DefaultTheme()

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}
