package ecs

import (
	"iter"
	"reflect"
	"slices"

	"github.com/kamstrup/intmap"
)

// entity holds one pointer per attached component, keyed by component type.
type entity struct {
	components map[reflect.Type]any
}

// Storage owns every entity and its components.
type Storage struct {
	registry *ComponentRegistry
	entities *intmap.Map[EntityId, *entity]
	order    []EntityId
	lastId   EntityId
}

// NewStorage creates an empty storage accepting the components in registry.
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry: registry,
		entities: intmap.New[EntityId, *entity](16),
	}
}

// Registry returns the registry the storage was created with.
func (s *Storage) Registry() *ComponentRegistry {
	return s.registry
}

// Spawn creates a new entity with the provided components. Components may be
// passed by value or by pointer; either way the storage keeps its own copy.
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	e := &entity{components: make(map[reflect.Type]any, len(components))}
	for _, comp := range components {
		value := reflect.ValueOf(comp)
		if value.Kind() == reflect.Ptr {
			value = value.Elem()
		}

		compType := value.Type()
		if !s.registry.Registered(compType) {
			panic("component type " + compType.String() + " not registered")
		}
		if _, dup := e.components[compType]; dup {
			panic("component type " + compType.String() + " given twice")
		}

		stored := reflect.New(compType)
		stored.Elem().Set(value)
		e.components[compType] = stored.Interface()
	}

	s.lastId++
	id := s.lastId
	s.entities.Put(id, e)
	s.order = append(s.order, id)
	return id
}

// Delete removes the entity and all of its components. Deleting an unknown
// id is a no-op.
func (s *Storage) Delete(id EntityId) {
	if !s.entities.Del(id) {
		return
	}
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
}

// Alive reports whether id refers to a spawned, undeleted entity.
func (s *Storage) Alive(id EntityId) bool {
	_, ok := s.entities.Get(id)
	return ok
}

// Len returns the number of live entities.
func (s *Storage) Len() int {
	return s.entities.Len()
}

// Iter yields live entity ids in spawn order.
func (s *Storage) Iter() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		for _, id := range s.order {
			if !yield(id) {
				return
			}
		}
	}
}

// GetComponent returns a pointer to the component of the given type, or nil
// if the entity does not exist or lacks it.
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	e, ok := s.entities.Get(id)
	if !ok {
		return nil
	}
	return e.components[compType]
}

// HasComponent checks if an entity has a specific component type
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	return s.GetComponent(id, compType) != nil
}

// ComponentTypes returns the types attached to the entity, sorted by name.
func (s *Storage) ComponentTypes(id EntityId) []reflect.Type {
	e, ok := s.entities.Get(id)
	if !ok {
		return nil
	}
	types := make([]reflect.Type, 0, len(e.components))
	for t := range e.components {
		types = append(types, t)
	}
	slices.SortFunc(types, func(a, b reflect.Type) int {
		switch {
		case a.String() < b.String():
			return -1
		case a.String() > b.String():
			return 1
		}
		return 0
	})
	return types
}

type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns the entity's T component, or nil if it has none.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return comp
}
