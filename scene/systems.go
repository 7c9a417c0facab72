package scene

import (
	"github.com/plus3/panscene/ecs"
	"github.com/plus3/panscene/input"
)

func spawnCamera(cmds *ecs.Commands, cfg Config) {
	transform := Transform{Scale: Vec2{X: 1, Y: 1}}

	switch cfg.Mode {
	case ModeKeyboard:
		cmds.Spawn(transform, Camera{}, KeyboardCamera{
			PanStep:    cfg.PanStep,
			RotateStep: cfg.RotateStep,
		})
	default:
		cmds.Spawn(transform, Camera{}, MovingCamera{Velocity: cfg.Velocity})
	}
}

func spawnPlayer(cmds *ecs.Commands, cfg Config) {
	cmds.Spawn(
		Transform{Scale: cfg.PlayerScale},
		Player{},
		Sprite{Color: cfg.PlayerColor},
	)
}

// moveCamera adds the velocity once per tick, regardless of frame duration.
func moveCamera(cameras *ecs.View[movingCameraView]) {
	_, camera := cameras.Single()
	camera.Translation = camera.Translation.Add(camera.Velocity)
}

// steerCamera applies one step for every held key. Opposite keys cancel.
func steerCamera(cameras *ecs.View[keyboardCameraView], in input.Snapshot) {
	_, camera := cameras.Single()
	step, turn := camera.PanStep, camera.RotateStep

	if in.Pressed(input.KeyRight) {
		camera.Translation.X += step
	}
	if in.Pressed(input.KeyLeft) {
		camera.Translation.X -= step
	}
	if in.Pressed(input.KeyUp) {
		camera.Translation.Y += step
	}
	if in.Pressed(input.KeyDown) {
		camera.Translation.Y -= step
	}
	if in.Pressed(input.KeyRotateNegative) {
		camera.Rotation -= turn
	}
	if in.Pressed(input.KeyRotatePositive) {
		camera.Rotation += turn
	}
}
