// Package input describes the fixed set of camera controls and the per-tick
// snapshot of which of them are held down.
package input

import (
	"errors"
	"fmt"
	"strings"
)

// Key is one of the camera controls. Device keys are mapped onto these by the
// frontends; the scene only ever sees Keys.
type Key uint8

const (
	KeyRight Key = iota
	KeyLeft
	KeyUp
	KeyDown
	KeyRotateNegative
	KeyRotatePositive

	keyCount
)

// ErrUnknownKey is returned when a key name does not match any control.
var ErrUnknownKey = errors.New("unknown key")

var keyNames = [keyCount]string{
	KeyRight:          "right",
	KeyLeft:           "left",
	KeyUp:             "up",
	KeyDown:           "down",
	KeyRotateNegative: "rotate-negative",
	KeyRotatePositive: "rotate-positive",
}

// AllKeys returns every control in declaration order.
func AllKeys() []Key {
	keys := make([]Key, 0, keyCount)
	for k := Key(0); k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

func (k Key) String() string {
	if k >= keyCount {
		return fmt.Sprintf("Key(%d)", uint8(k))
	}
	return keyNames[k]
}

// ParseKey resolves a control by name. Matching ignores case and surrounding
// whitespace.
func ParseKey(name string) (Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range keyNames {
		if n == name {
			return Key(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}
