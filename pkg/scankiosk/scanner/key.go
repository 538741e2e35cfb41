package scanner

import (
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/constants"
)

// KeyEvent is a single key press delivered by a key source.
// Key is either one printable character ("a", "7", " ") or a named key ("Enter", "Shift").
type KeyEvent struct {
	Key  string
	Time time.Time

	defaultPrevented bool
}

// NewKeyEvent creates a key event stamped with the current time.
func NewKeyEvent(key string) *KeyEvent {
	return &KeyEvent{Key: key, Time: time.Now()}
}

// PreventDefault marks the event as consumed. Sources and screens must not apply
// their own handling (typing into a field, moving focus) to a prevented event.
func (e *KeyEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a handler consumed the event.
func (e *KeyEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// KeyClass is the decoder's view of a key identifier.
type KeyClass int

const (
	KeyIgnored    KeyClass = iota // Modifier/navigation key: no effect at all
	KeyTerminator                 // Completes the current scan
	KeyData                       // Single printable character, appended to the buffer
	KeyFiltered                   // Any other named key: dropped without side effects
)

func (c KeyClass) String() string {
	switch c {
	case KeyIgnored:
		return "ignored"
	case KeyTerminator:
		return "terminator"
	case KeyData:
		return "data"
	case KeyFiltered:
		return "filtered"
	default:
		return "unknown"
	}
}

// KeyPolicy decides which keys contribute to a scan.
type KeyPolicy struct {
	Terminator string
	Ignored    map[string]struct{}
}

// DefaultIgnoredKeys are the modifier and navigation keys a scanner burst may
// contain (Shift for upper-case letters) but that never carry data.
var DefaultIgnoredKeys = []string{
	constants.KeyShift,
	constants.KeyControl,
	constants.KeyAlt,
	constants.KeyMeta,
	constants.KeyTab,
	constants.KeyEscape,
	constants.KeyCapsLock,
	constants.KeyArrowUp,
	constants.KeyArrowDown,
	constants.KeyArrowLeft,
	constants.KeyArrowRight,
}

// DefaultKeyPolicy returns the policy with Enter as terminator and DefaultIgnoredKeys.
func DefaultKeyPolicy() KeyPolicy {
	return NewKeyPolicy(constants.KeyEnter, DefaultIgnoredKeys...)
}

// NewKeyPolicy builds a policy from a terminator and a list of ignored key names.
func NewKeyPolicy(terminator string, ignored ...string) KeyPolicy {
	set := make(map[string]struct{}, len(ignored))
	for _, k := range ignored {
		set[k] = struct{}{}
	}
	return KeyPolicy{Terminator: terminator, Ignored: set}
}

// Classify returns the class of a key identifier. Ignored keys and the terminator
// are checked before the printable-character rule.
func (p KeyPolicy) Classify(key string) KeyClass {
	if _, ok := p.Ignored[key]; ok {
		return KeyIgnored
	}
	if key == p.Terminator {
		return KeyTerminator
	}
	if isPrintableChar(key) {
		return KeyData
	}
	return KeyFiltered
}

func isPrintableChar(key string) bool {
	if utf8.RuneCountInString(key) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(key)
	return r != utf8.RuneError && unicode.IsPrint(r)
}
