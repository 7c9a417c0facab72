package ecs_test

import (
	"reflect"
	"slices"
	"testing"

	"github.com/plus3/panscene/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageSpawn(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	first := storage.Spawn(Position{X: 1, Y: 2})
	second := storage.Spawn(&Position{X: 3, Y: 4}, Velocity{DX: 1})

	assert.True(t, first.Valid())
	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, storage.Len())
	assert.True(t, storage.Alive(first))
	assert.True(t, storage.Alive(second))

	pos := ecs.ReadComponent[Position](storage, second)
	require.NotNil(t, pos)
	assert.Equal(t, Position{X: 3, Y: 4}, *pos)

	assert.True(t, storage.HasComponent(second, reflect.TypeFor[Velocity]()))
	assert.False(t, storage.HasComponent(first, reflect.TypeFor[Velocity]()))
}

func TestStorageSpawnCopiesComponents(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	original := &Position{X: 1, Y: 1}
	id := storage.Spawn(original)
	original.X = 99

	assert.Equal(t, float32(1), ecs.ReadComponent[Position](storage, id).X)
}

func TestStorageComponentMutation(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Score(10))

	*ecs.ReadComponent[Score](storage, id) = 20

	assert.Equal(t, Score(20), *ecs.ReadComponent[Score](storage, id))
}

func TestStorageSpawnPanics(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { storage.Spawn() })

	type unregistered struct{}
	assert.Panics(t, func() { storage.Spawn(unregistered{}) })

	assert.Panics(t, func() { storage.Spawn(Position{}, &Position{}) })
}

func TestRegisterComponentRejectsReferenceKinds(t *testing.T) {
	registry := ecs.NewComponentRegistry()
	assert.Panics(t, func() { ecs.RegisterComponent[*Position](registry) })
	assert.Panics(t, func() { ecs.RegisterComponent[map[string]int](registry) })
	assert.Panics(t, func() { ecs.RegisterComponent[func()](registry) })
}

func TestStorageDelete(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	a := storage.Spawn(Name{Value: "a"})
	b := storage.Spawn(Name{Value: "b"})
	c := storage.Spawn(Name{Value: "c"})

	storage.Delete(b)
	storage.Delete(b)
	storage.Delete(ecs.EntityId(12345))

	assert.Equal(t, 2, storage.Len())
	assert.False(t, storage.Alive(b))
	assert.Nil(t, ecs.ReadComponent[Name](storage, b))
	assert.Equal(t, []ecs.EntityId{a, c}, slices.Collect(storage.Iter()))

	// Ids are not reused after a delete.
	d := storage.Spawn(Name{Value: "d"})
	assert.NotEqual(t, b, d)
}

func TestStorageIterSpawnOrder(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	var ids []ecs.EntityId
	for i := 0; i < 10; i++ {
		ids = append(ids, storage.Spawn(Score(i)))
	}

	assert.Equal(t, ids, slices.Collect(storage.Iter()))
}

func TestStorageComponentTypes(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Velocity{}, Name{}, Position{})

	types := storage.ComponentTypes(id)
	require.Len(t, types, 3)
	assert.Equal(t, "ecs_test.Name", types[0].String())
	assert.Equal(t, "ecs_test.Position", types[1].String())
	assert.Equal(t, "ecs_test.Velocity", types[2].String())

	assert.Nil(t, storage.ComponentTypes(ecs.EntityId(999)))
}

func TestReadComponentMissing(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{})

	assert.Nil(t, ecs.ReadComponent[Velocity](storage, id))
	assert.Nil(t, ecs.ReadComponent[Position](storage, ecs.EntityId(0)))
}
