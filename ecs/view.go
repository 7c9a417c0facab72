package ecs

import (
	"errors"
	"fmt"
	"iter"
	"reflect"
)

var (
	// ErrNoMatch means a view expected exactly one entity and found none.
	ErrNoMatch = errors.New("no entity matches view")
	// ErrMultipleMatches means a view expected exactly one entity and found several.
	ErrMultipleMatches = errors.New("more than one entity matches view")
)

// View represents a query for entities with a specific combination of components.
// The type T should be a struct with embedded or named pointer fields, one per
// component type. Named fields can be marked as optional using the
// `ecs:"optional"` struct tag.
type View[T any] struct {
	storage  *Storage
	name     string
	types    []reflect.Type
	optional []bool
}

// NewView creates a new view for the given struct type.
// Embedded fields are always required.
func NewView[T any](storage *Storage) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	v := &View[T]{
		storage:  storage,
		name:     structType.String(),
		types:    make([]reflect.Type, 0, structType.NumField()),
		optional: make([]bool, 0, structType.NumField()),
	}

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.Type.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types")
		}

		isOptional := false
		if !field.Anonymous {
			switch tag := field.Tag.Get("ecs"); tag {
			case "":
			case "optional":
				isOptional = true
			default:
				panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
			}
		}

		v.types = append(v.types, field.Type.Elem())
		v.optional = append(v.optional, isOptional)
	}

	return v
}

// Fill populates the provided struct pointer with component data for the given entity.
// Returns false if the entity is missing any required components.
// Optional components are set to nil if not present.
func (v *View[T]) Fill(id EntityId, ptr *T) bool {
	e, ok := v.storage.entities.Get(id)
	if !ok {
		return false
	}
	return v.fill(e, reflect.ValueOf(ptr).Elem())
}

func (v *View[T]) fill(e *entity, out reflect.Value) bool {
	for i, compType := range v.types {
		field := out.Field(i)
		comp, ok := e.components[compType]
		if !ok {
			if !v.optional[i] {
				return false
			}
			field.SetZero()
			continue
		}
		field.Set(reflect.ValueOf(comp))
	}
	return true
}

// Get returns a populated view struct for the given entity, or nil if the entity
// doesn't have all the required components.
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

// Iter yields every matching entity in spawn order. Pointers in the yielded
// struct refer to the stored components, so writes through them persist.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		for _, id := range v.storage.order {
			e, ok := v.storage.entities.Get(id)
			if !ok {
				continue
			}

			var result T
			if !v.fill(e, reflect.ValueOf(&result).Elem()) {
				continue
			}
			if !yield(id, result) {
				return
			}
		}
	}
}

// Values returns an iterator over just the view structs (without entity IDs).
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}

// Count returns the number of matching entities.
func (v *View[T]) Count() int {
	n := 0
	for range v.Iter() {
		n++
	}
	return n
}

// TrySingle returns the only matching entity. It fails with ErrNoMatch or
// ErrMultipleMatches when there is not exactly one.
func (v *View[T]) TrySingle() (EntityId, T, error) {
	var (
		foundId EntityId
		found   T
		count   int
	)
	for id, item := range v.Iter() {
		count++
		if count > 1 {
			var zero T
			return 0, zero, fmt.Errorf("view %s: %w", v.name, ErrMultipleMatches)
		}
		foundId, found = id, item
	}
	if count == 0 {
		return 0, found, fmt.Errorf("view %s: %w", v.name, ErrNoMatch)
	}
	return foundId, found, nil
}

// Single is TrySingle for callers that treat anything but exactly one match
// as a programming error. It panics with the wrapped error.
func (v *View[T]) Single() (EntityId, T) {
	id, item, err := v.TrySingle()
	if err != nil {
		panic(err)
	}
	return id, item
}
