package render

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/panscene/input"
)

// Bindings maps each control to the device keys that trigger it.
type Bindings map[input.Key][]ebiten.Key

// DefaultBindings binds the arrow keys and WASD to panning and Q/E to
// rotation.
func DefaultBindings() Bindings {
	return Bindings{
		input.KeyRight:          {ebiten.KeyArrowRight, ebiten.KeyD},
		input.KeyLeft:           {ebiten.KeyArrowLeft, ebiten.KeyA},
		input.KeyUp:             {ebiten.KeyArrowUp, ebiten.KeyW},
		input.KeyDown:           {ebiten.KeyArrowDown, ebiten.KeyS},
		input.KeyRotateNegative: {ebiten.KeyE},
		input.KeyRotatePositive: {ebiten.KeyQ},
	}
}

// Snapshot reports which controls have at least one bound key held, using
// pressed to query the device.
func (b Bindings) Snapshot(pressed func(ebiten.Key) bool) input.Snapshot {
	var s input.Snapshot
	for k, keys := range b {
		for _, key := range keys {
			if pressed(key) {
				s = s.With(k)
				break
			}
		}
	}
	return s
}

// Set parses "control=Key[,Key...]" and replaces the keys bound to that
// control, using ebiten's key names ("ArrowLeft", "Z", ...).
func (b Bindings) Set(spec string) error {
	name, keyList, ok := strings.Cut(spec, "=")
	if !ok {
		return fmt.Errorf("binding %q: want control=Key[,Key...]", spec)
	}

	control, err := input.ParseKey(name)
	if err != nil {
		return fmt.Errorf("binding %q: %w", spec, err)
	}

	var keys []ebiten.Key
	for _, keyName := range strings.Split(keyList, ",") {
		var key ebiten.Key
		if err := key.UnmarshalText([]byte(strings.TrimSpace(keyName))); err != nil {
			return fmt.Errorf("binding %q: %w", spec, err)
		}
		keys = append(keys, key)
	}
	b[control] = keys
	return nil
}
