package scene_test

import (
	"math"
	"testing"

	"github.com/plus3/panscene/scene"
	"github.com/stretchr/testify/assert"
)

func assertVecInDelta(t *testing.T, want, got scene.Vec2) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, "x of %v", got)
	assert.InDelta(t, want.Y, got.Y, 1e-9, "y of %v", got)
}

func TestWorldToView(t *testing.T) {
	identity := scene.Transform{Scale: scene.Vec2{X: 1, Y: 1}}
	assertVecInDelta(t, scene.Vec2{X: 3, Y: 4}, scene.WorldToView(identity, scene.Vec2{X: 3, Y: 4}))

	panned := scene.Transform{Translation: scene.Vec2{X: 10, Y: -2}}
	assertVecInDelta(t, scene.Vec2{X: -10, Y: 2}, scene.WorldToView(panned, scene.Vec2{}))

	// A camera turned a quarter turn counter-clockwise sees +X as -Y.
	turned := scene.Transform{Rotation: math.Pi / 2}
	assertVecInDelta(t, scene.Vec2{X: 0, Y: -1}, scene.WorldToView(turned, scene.Vec2{X: 1}))
}

func TestViewToWorldInverts(t *testing.T) {
	camera := scene.Transform{Translation: scene.Vec2{X: 1.5, Y: -7}, Rotation: 0.7}
	for _, p := range []scene.Vec2{{}, {X: 1}, {X: -3, Y: 12}, {X: 64, Y: 32}} {
		assertVecInDelta(t, p, scene.ViewToWorld(camera, scene.WorldToView(camera, p)))
	}
}

func TestVec2(t *testing.T) {
	a := scene.Vec2{X: 1, Y: 2}
	b := scene.Vec2{X: 0.5, Y: -1}

	assert.Equal(t, scene.Vec2{X: 1.5, Y: 1}, a.Add(b))
	assert.Equal(t, scene.Vec2{X: 0.5, Y: 3}, a.Sub(b))
	assertVecInDelta(t, scene.Vec2{X: -2, Y: 1}, a.Rotate(math.Pi/2))
	assert.True(t, a.Finite())
	assert.False(t, scene.Vec2{X: math.NaN()}.Finite())
	assert.Equal(t, "(1, 2)", a.String())
}
