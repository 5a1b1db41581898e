package hostapi

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidKeybind indicates a stored keybind could not be parsed.
var ErrInvalidKeybind = errors.New("invalid keybind")

// Modifier masks, as the host reports them on key events.
const (
	ModifierShift   = 1 << 6
	ModifierCtrl    = 1 << 7
	ModifierMeta    = 1 << 8
	ModifierAlt     = 1 << 9
	modifierAllMask = ModifierShift | ModifierCtrl | ModifierMeta | ModifierAlt
)

// Keybind is a key code plus the modifiers that must be held with it.
// The zero value matches nothing.
type Keybind struct {
	KeyCode   int
	Modifiers int
}

// KeyAlt is the host's key code for the Alt key.
const KeyAlt = 18

// DefaultDragHotkey is the overlay drag hotkey the host ships with.
var DefaultDragHotkey = Keybind{KeyCode: KeyAlt, Modifiers: ModifierAlt}

// ParseKeybind parses the stored "keyCode:modifiers" form.
func ParseKeybind(s string) (Keybind, error) {
	code, mods, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Keybind{}, fmt.Errorf("%w: %q", ErrInvalidKeybind, s)
	}
	keyCode, err := strconv.Atoi(code)
	if err != nil {
		return Keybind{}, fmt.Errorf("%w: key code %q: %w", ErrInvalidKeybind, code, err)
	}
	modifiers, err := strconv.Atoi(mods)
	if err != nil {
		return Keybind{}, fmt.Errorf("%w: modifiers %q: %w", ErrInvalidKeybind, mods, err)
	}
	return Keybind{KeyCode: keyCode, Modifiers: modifiers & modifierAllMask}, nil
}

// Matches reports whether e presses this keybind. A bare modifier key
// matches regardless of whether its own modifier bit is set, since hosts
// disagree on that for press and release events.
func (k Keybind) Matches(e KeyEvent) bool {
	if k == (Keybind{}) || e.KeyCode != k.KeyCode {
		return false
	}
	if self := modifierForKey(k.KeyCode); self != 0 {
		return (e.Modifiers|self)&modifierAllMask == k.Modifiers|self
	}
	return e.Modifiers&modifierAllMask == k.Modifiers
}

func (k Keybind) String() string {
	return fmt.Sprintf("%d:%d", k.KeyCode, k.Modifiers)
}

func modifierForKey(keyCode int) int {
	switch keyCode {
	case 16:
		return ModifierShift
	case 17:
		return ModifierCtrl
	case KeyAlt:
		return ModifierAlt
	case 157:
		return ModifierMeta
	default:
		return 0
	}
}
