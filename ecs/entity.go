package ecs

// EntityId is a stable handle for a spawned entity. Ids are assigned in spawn
// order starting at 1 and are never reused by a Storage, so the zero value
// never refers to a live entity.
type EntityId uint64

// Valid reports whether the id could refer to an entity.
func (e EntityId) Valid() bool {
	return e != 0
}
