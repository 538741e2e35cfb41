// Package internal contains the SDL side of the kiosk: window setup, fonts,
// theming, texture caching and keyboard translation.
// Types and functions in this package are not part of the public API.
package internal
