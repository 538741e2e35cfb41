package internal

import (
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/constants"
	"github.com/veandco/go-sdl2/sdl"
)

var namedSDLKeys = map[sdl.Keycode]string{
	sdl.K_RETURN:    constants.KeyEnter,
	sdl.K_RETURN2:   constants.KeyEnter,
	sdl.K_KP_ENTER:  constants.KeyEnter,
	sdl.K_LSHIFT:    constants.KeyShift,
	sdl.K_RSHIFT:    constants.KeyShift,
	sdl.K_LCTRL:     constants.KeyControl,
	sdl.K_RCTRL:     constants.KeyControl,
	sdl.K_LALT:      constants.KeyAlt,
	sdl.K_RALT:      constants.KeyAlt,
	sdl.K_LGUI:      constants.KeyMeta,
	sdl.K_RGUI:      constants.KeyMeta,
	sdl.K_TAB:       constants.KeyTab,
	sdl.K_ESCAPE:    constants.KeyEscape,
	sdl.K_CAPSLOCK:  constants.KeyCapsLock,
	sdl.K_BACKSPACE: constants.KeyBackspace,
	sdl.K_UP:        constants.KeyArrowUp,
	sdl.K_DOWN:      constants.KeyArrowDown,
	sdl.K_LEFT:      constants.KeyArrowLeft,
	sdl.K_RIGHT:     constants.KeyArrowRight,
}

// Shifted US-layout symbols, keyed by the unshifted character.
var shiftedSymbols = map[rune]rune{
	'1': '!', '2': '@', '3': '#', '4': '$', '5': '%',
	'6': '^', '7': '&', '8': '*', '9': '(', '0': ')',
	'-': '_', '=': '+', '[': '{', ']': '}', ';': ':',
	'\'': '"', '`': '~', '\\': '|', ',': '<', '.': '>', '/': '?',
}

var keypadKeys = map[sdl.Keycode]string{
	sdl.K_KP_0: "0", sdl.K_KP_1: "1", sdl.K_KP_2: "2", sdl.K_KP_3: "3", sdl.K_KP_4: "4",
	sdl.K_KP_5: "5", sdl.K_KP_6: "6", sdl.K_KP_7: "7", sdl.K_KP_8: "8", sdl.K_KP_9: "9",
	sdl.K_KP_MINUS: "-", sdl.K_KP_PLUS: "+", sdl.K_KP_MULTIPLY: "*", sdl.K_KP_DIVIDE: "/",
	sdl.K_KP_PERIOD: ".",
}

// KeyFromSDL returns the key identifier for a key-down event, in the same
// format as every other key source: the typed character for printable keys,
// a name such as "Enter" or "ArrowUp" otherwise.
func KeyFromSDL(e *sdl.KeyboardEvent) string {
	sym := e.Keysym.Sym
	if name, ok := namedSDLKeys[sym]; ok {
		return name
	}
	if k, ok := keypadKeys[sym]; ok {
		return k
	}

	// Printable keycodes are their unshifted ASCII character.
	if sym < 0x20 || sym >= 0x7f {
		return constants.KeyUnknown
	}
	r := rune(sym)

	shift := e.Keysym.Mod&uint16(sdl.KMOD_SHIFT) != 0
	caps := e.Keysym.Mod&uint16(sdl.KMOD_CAPS) != 0

	if r >= 'a' && r <= 'z' {
		if shift != caps {
			r -= 'a' - 'A'
		}
		return string(r)
	}
	if shift {
		if s, ok := shiftedSymbols[r]; ok {
			r = s
		}
	}
	return string(r)
}
