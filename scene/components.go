package scene

import "github.com/plus3/panscene/ecs"

// Transform places an entity in the world. Rotation is in radians about the
// viewing axis, counter-clockwise.
type Transform struct {
	Translation Vec2
	Rotation    float64
	Scale       Vec2
}

// Camera marks the entity the scene is viewed through.
type Camera struct{}

// MovingCamera drifts the camera by Velocity every tick. Velocity is set at
// spawn and never written again.
type MovingCamera struct {
	Velocity Vec2
}

// KeyboardCamera pans by PanStep per held direction key and turns by
// RotateStep per held rotate key, every tick.
type KeyboardCamera struct {
	PanStep    float64
	RotateStep float64
}

// Player marks the sprite entity.
type Player struct{}

// Sprite is drawn as a unit square stretched by the entity's Transform.Scale.
type Sprite struct {
	Color [3]uint8
}

func newRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Camera](registry)
	ecs.RegisterComponent[MovingCamera](registry)
	ecs.RegisterComponent[KeyboardCamera](registry)
	ecs.RegisterComponent[Player](registry)
	ecs.RegisterComponent[Sprite](registry)
	return registry
}

type cameraView struct {
	*Transform
	*Camera
}

type movingCameraView struct {
	*Transform
	*MovingCamera
}

type keyboardCameraView struct {
	*Transform
	*KeyboardCamera
}

type playerView struct {
	*Transform
	*Player
	Sprite *Sprite `ecs:"optional"`
}
