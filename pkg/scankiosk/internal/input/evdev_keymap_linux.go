//go:build linux

package input

import (
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/constants"
	"github.com/holoplot/go-evdev"
)

// keyPair is the unshifted and shifted character a US-layout key produces.
type keyPair struct {
	lower, upper string
}

var printableKeys = map[evdev.EvCode]keyPair{
	evdev.KEY_1: {"1", "!"}, evdev.KEY_2: {"2", "@"}, evdev.KEY_3: {"3", "#"},
	evdev.KEY_4: {"4", "$"}, evdev.KEY_5: {"5", "%"}, evdev.KEY_6: {"6", "^"},
	evdev.KEY_7: {"7", "&"}, evdev.KEY_8: {"8", "*"}, evdev.KEY_9: {"9", "("},
	evdev.KEY_0: {"0", ")"},

	evdev.KEY_A: {"a", "A"}, evdev.KEY_B: {"b", "B"}, evdev.KEY_C: {"c", "C"},
	evdev.KEY_D: {"d", "D"}, evdev.KEY_E: {"e", "E"}, evdev.KEY_F: {"f", "F"},
	evdev.KEY_G: {"g", "G"}, evdev.KEY_H: {"h", "H"}, evdev.KEY_I: {"i", "I"},
	evdev.KEY_J: {"j", "J"}, evdev.KEY_K: {"k", "K"}, evdev.KEY_L: {"l", "L"},
	evdev.KEY_M: {"m", "M"}, evdev.KEY_N: {"n", "N"}, evdev.KEY_O: {"o", "O"},
	evdev.KEY_P: {"p", "P"}, evdev.KEY_Q: {"q", "Q"}, evdev.KEY_R: {"r", "R"},
	evdev.KEY_S: {"s", "S"}, evdev.KEY_T: {"t", "T"}, evdev.KEY_U: {"u", "U"},
	evdev.KEY_V: {"v", "V"}, evdev.KEY_W: {"w", "W"}, evdev.KEY_X: {"x", "X"},
	evdev.KEY_Y: {"y", "Y"}, evdev.KEY_Z: {"z", "Z"},

	evdev.KEY_MINUS:      {"-", "_"},
	evdev.KEY_EQUAL:      {"=", "+"},
	evdev.KEY_LEFTBRACE:  {"[", "{"},
	evdev.KEY_RIGHTBRACE: {"]", "}"},
	evdev.KEY_SEMICOLON:  {";", ":"},
	evdev.KEY_APOSTROPHE: {"'", "\""},
	evdev.KEY_GRAVE:      {"`", "~"},
	evdev.KEY_BACKSLASH:  {"\\", "|"},
	evdev.KEY_COMMA:      {",", "<"},
	evdev.KEY_DOT:        {".", ">"},
	evdev.KEY_SLASH:      {"/", "?"},
	evdev.KEY_SPACE:      {" ", " "},

	evdev.KEY_KP0: {"0", "0"}, evdev.KEY_KP1: {"1", "1"}, evdev.KEY_KP2: {"2", "2"},
	evdev.KEY_KP3: {"3", "3"}, evdev.KEY_KP4: {"4", "4"}, evdev.KEY_KP5: {"5", "5"},
	evdev.KEY_KP6: {"6", "6"}, evdev.KEY_KP7: {"7", "7"}, evdev.KEY_KP8: {"8", "8"},
	evdev.KEY_KP9: {"9", "9"},
	evdev.KEY_KPMINUS:    {"-", "-"},
	evdev.KEY_KPPLUS:     {"+", "+"},
	evdev.KEY_KPASTERISK: {"*", "*"},
	evdev.KEY_KPSLASH:    {"/", "/"},
	evdev.KEY_KPDOT:      {".", "."},
}

var namedKeys = map[evdev.EvCode]string{
	evdev.KEY_ENTER:      constants.KeyEnter,
	evdev.KEY_KPENTER:    constants.KeyEnter,
	evdev.KEY_LEFTSHIFT:  constants.KeyShift,
	evdev.KEY_RIGHTSHIFT: constants.KeyShift,
	evdev.KEY_LEFTCTRL:   constants.KeyControl,
	evdev.KEY_RIGHTCTRL:  constants.KeyControl,
	evdev.KEY_LEFTALT:    constants.KeyAlt,
	evdev.KEY_RIGHTALT:   constants.KeyAlt,
	evdev.KEY_LEFTMETA:   constants.KeyMeta,
	evdev.KEY_RIGHTMETA:  constants.KeyMeta,
	evdev.KEY_TAB:        constants.KeyTab,
	evdev.KEY_ESC:        constants.KeyEscape,
	evdev.KEY_CAPSLOCK:   constants.KeyCapsLock,
	evdev.KEY_BACKSPACE:  constants.KeyBackspace,
	evdev.KEY_UP:         constants.KeyArrowUp,
	evdev.KEY_DOWN:       constants.KeyArrowDown,
	evdev.KEY_LEFT:       constants.KeyArrowLeft,
	evdev.KEY_RIGHT:      constants.KeyArrowRight,
}

const (
	keyValueRelease = 0
	keyValuePress   = 1
	keyValueRepeat  = 2
)

// EvdevTranslator turns raw EV_KEY events into key identifiers.
// It tracks the shift and caps lock state of the device.
type EvdevTranslator struct {
	leftShift, rightShift bool
	capsLock              bool
}

// Translate returns the key for ev and true when ev is a key press.
// Releases, repeats and non-key events return false. Modifier presses are
// still reported so the decoder can count them as ignored keys.
func (t *EvdevTranslator) Translate(ev evdev.InputEvent) (string, bool) {
	if ev.Type != evdev.EV_KEY {
		return "", false
	}

	switch ev.Code {
	case evdev.KEY_LEFTSHIFT:
		t.leftShift = ev.Value != keyValueRelease
	case evdev.KEY_RIGHTSHIFT:
		t.rightShift = ev.Value != keyValueRelease
	case evdev.KEY_CAPSLOCK:
		if ev.Value == keyValuePress {
			t.capsLock = !t.capsLock
		}
	}

	if ev.Value != keyValuePress {
		return "", false
	}

	if name, ok := namedKeys[ev.Code]; ok {
		return name, true
	}

	pair, ok := printableKeys[ev.Code]
	if !ok {
		return constants.KeyUnknown, true
	}

	shifted := t.leftShift || t.rightShift
	if isLetter(ev.Code) && t.capsLock {
		shifted = !shifted
	}
	if shifted {
		return pair.upper, true
	}
	return pair.lower, true
}

func isLetter(code evdev.EvCode) bool {
	p, ok := printableKeys[code]
	return ok && len(p.lower) == 1 && p.lower[0] >= 'a' && p.lower[0] <= 'z'
}
