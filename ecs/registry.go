package ecs

import (
	"reflect"
	"sort"
)

// ComponentRegistry records which component types a Storage accepts.
// Each Storage has its own registry, so independent scenes never share
// component definitions.
type ComponentRegistry struct {
	types map[reflect.Type]string
}

// NewComponentRegistry creates an empty component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		types: make(map[reflect.Type]string),
	}
}

// RegisterComponent registers T with the given registry.
// This must be called for each component type before it can be spawned.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	checkComponentKind(t)
	r.types[t] = t.String()
}

// Registered reports whether t has been registered.
func (r *ComponentRegistry) Registered(t reflect.Type) bool {
	_, ok := r.types[t]
	return ok
}

// Names returns the registered component type names, sorted.
func (r *ComponentRegistry) Names() []string {
	names := make([]string, 0, len(r.types))
	for _, name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Components can be structs or primitives (int, string, etc.) but not
// pointers, maps, channels, or functions.
func checkComponentKind(t reflect.Type) {
	switch t.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		panic("components cannot be pointers, maps, channels, functions, or interfaces: " + t.String())
	}
}
