package input

import (
	"strings"
)

// Snapshot is the set of controls held down during one tick. It carries no
// history: holding a key for N ticks is N snapshots that each contain it.
type Snapshot uint8

// NewSnapshot returns a snapshot with the given keys pressed.
func NewSnapshot(keys ...Key) Snapshot {
	var s Snapshot
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// With returns a copy of s with k pressed.
func (s Snapshot) With(k Key) Snapshot {
	if k >= keyCount {
		return s
	}
	return s | 1<<k
}

// Pressed reports whether k is held in this snapshot.
func (s Snapshot) Pressed(k Key) bool {
	return k < keyCount && s&(1<<k) != 0
}

// Empty reports whether no key is held.
func (s Snapshot) Empty() bool {
	return s == 0
}

// Keys returns the pressed keys in declaration order.
func (s Snapshot) Keys() []Key {
	var keys []Key
	for k := Key(0); k < keyCount; k++ {
		if s.Pressed(k) {
			keys = append(keys, k)
		}
	}
	return keys
}

// String joins the pressed key names with "+", the same form ParseSnapshot
// accepts.
func (s Snapshot) String() string {
	keys := s.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return strings.Join(names, "+")
}

// ParseSnapshot parses a "+" separated list of key names. An empty string is
// the empty snapshot.
func ParseSnapshot(text string) (Snapshot, error) {
	var s Snapshot
	if strings.TrimSpace(text) == "" {
		return s, nil
	}
	for _, name := range strings.Split(text, "+") {
		k, err := ParseKey(name)
		if err != nil {
			return 0, err
		}
		s = s.With(k)
	}
	return s, nil
}

// ParseScript parses a comma separated sequence of snapshots, one per tick.
// "right,right+up,,left" presses right, then right and up, then nothing, then
// left.
func ParseScript(text string) ([]Snapshot, error) {
	if text == "" {
		return nil, nil
	}
	parts := strings.Split(text, ",")
	script := make([]Snapshot, 0, len(parts))
	for _, part := range parts {
		s, err := ParseSnapshot(part)
		if err != nil {
			return nil, err
		}
		script = append(script, s)
	}
	return script, nil
}
