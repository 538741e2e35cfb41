//go:build linux

package input

import (
	"testing"

	"github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
)

func keyEvent(code evdev.EvCode, value int32) evdev.InputEvent {
	return evdev.InputEvent{Type: evdev.EV_KEY, Code: code, Value: value}
}

func press(tr *EvdevTranslator, codes ...evdev.EvCode) []string {
	var keys []string
	for _, c := range codes {
		if k, ok := tr.Translate(keyEvent(c, keyValuePress)); ok {
			keys = append(keys, k)
		}
		tr.Translate(keyEvent(c, keyValueRelease))
	}
	return keys
}

func TestEvdevTranslator_Plain(t *testing.T) {
	var tr EvdevTranslator

	keys := press(&tr, evdev.KEY_S, evdev.KEY_C, evdev.KEY_7, evdev.KEY_ENTER)
	assert.Equal(t, []string{"s", "c", "7", "Enter"}, keys)
}

func TestEvdevTranslator_Shift(t *testing.T) {
	var tr EvdevTranslator

	k, ok := tr.Translate(keyEvent(evdev.KEY_LEFTSHIFT, keyValuePress))
	assert.True(t, ok)
	assert.Equal(t, "Shift", k)

	assert.Equal(t, []string{"S", "C", "&"}, press(&tr, evdev.KEY_S, evdev.KEY_C, evdev.KEY_7))

	tr.Translate(keyEvent(evdev.KEY_LEFTSHIFT, keyValueRelease))
	assert.Equal(t, []string{"s"}, press(&tr, evdev.KEY_S))
}

func TestEvdevTranslator_CapsLockAffectsLettersOnly(t *testing.T) {
	var tr EvdevTranslator

	assert.Equal(t, []string{"CapsLock", "S", "7"}, press(&tr, evdev.KEY_CAPSLOCK, evdev.KEY_S, evdev.KEY_7))

	// Shift inverts caps lock for letters.
	tr.Translate(keyEvent(evdev.KEY_RIGHTSHIFT, keyValuePress))
	assert.Equal(t, []string{"s", "&"}, press(&tr, evdev.KEY_S, evdev.KEY_7))
	tr.Translate(keyEvent(evdev.KEY_RIGHTSHIFT, keyValueRelease))

	assert.Equal(t, []string{"CapsLock", "s"}, press(&tr, evdev.KEY_CAPSLOCK, evdev.KEY_S))
}

func TestEvdevTranslator_IgnoresReleasesRepeatsAndOtherTypes(t *testing.T) {
	var tr EvdevTranslator

	_, ok := tr.Translate(keyEvent(evdev.KEY_A, keyValueRelease))
	assert.False(t, ok)

	_, ok = tr.Translate(keyEvent(evdev.KEY_A, keyValueRepeat))
	assert.False(t, ok)

	_, ok = tr.Translate(evdev.InputEvent{Type: evdev.EV_SYN})
	assert.False(t, ok)
}

func TestEvdevTranslator_NamedKeys(t *testing.T) {
	var tr EvdevTranslator

	keys := press(&tr, evdev.KEY_KPENTER, evdev.KEY_TAB, evdev.KEY_ESC, evdev.KEY_UP, evdev.KEY_LEFTCTRL, evdev.KEY_F1)
	assert.Equal(t, []string{"Enter", "Tab", "Escape", "ArrowUp", "Control", "Unidentified"}, keys)
}

func TestResolveDevicePath(t *testing.T) {
	p, err := resolveDevicePath("/dev/input/event3")
	assert.NoError(t, err)
	assert.Equal(t, "/dev/input/event3", p)

	_, err = resolveDevicePath("")
	assert.ErrorIs(t, err, ErrDeviceNotFound)
}
