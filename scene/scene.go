// Package scene is the camera and player demo. A Scene spawns one camera and
// one player on its first tick and then moves the camera every tick, either
// by a constant velocity or from the held keys, depending on its Mode.
package scene

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/panscene/ecs"
	"github.com/plus3/panscene/input"
)

// Scene owns the entity storage and the tick scheduler. It is not safe for
// concurrent use; drive it from a single loop.
type Scene struct {
	id        uuid.UUID
	config    Config
	storage   *ecs.Storage
	scheduler *ecs.Scheduler

	cameras         *ecs.View[cameraView]
	movingCameras   *ecs.View[movingCameraView]
	keyboardCameras *ecs.View[keyboardCameraView]
	players         *ecs.View[playerView]
}

// New validates cfg and builds an empty scene. Nothing is spawned until the
// first Tick.
func New(cfg Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	storage := ecs.NewStorage(newRegistry())
	s := &Scene{
		id:              uuid.New(),
		config:          cfg,
		storage:         storage,
		cameras:         ecs.NewView[cameraView](storage),
		movingCameras:   ecs.NewView[movingCameraView](storage),
		keyboardCameras: ecs.NewView[keyboardCameraView](storage),
		players:         ecs.NewView[playerView](storage),
	}
	s.scheduler = ecs.NewScheduler(storage, ecs.SystemFunc(s.startup), ecs.SystemFunc(s.update))
	return s, nil
}

func (s *Scene) startup(frame *ecs.UpdateFrame) {
	spawnCamera(frame.Commands, s.config)
	spawnPlayer(frame.Commands, s.config)
}

func (s *Scene) update(frame *ecs.UpdateFrame) {
	switch s.config.Mode {
	case ModeKeyboard:
		steerCamera(s.keyboardCameras, frame.Input)
	default:
		moveCamera(s.movingCameras)
	}
}

// Tick advances the scene by one step. The first call spawns the camera and
// player and then applies the first camera update. In ModeVelocity the
// snapshot is ignored.
//
// Tick panics if the scene does not hold exactly one camera of its mode.
func (s *Scene) Tick(in input.Snapshot) {
	s.scheduler.Once(in)
}

// Run ticks every interval until ctx is cancelled, asking poll for the keys
// before each tick.
func (s *Scene) Run(ctx context.Context, interval time.Duration, poll func() input.Snapshot) {
	s.scheduler.Run(ctx, interval, poll)
}

// ID identifies this scene instance in logs and reports.
func (s *Scene) ID() uuid.UUID {
	return s.id
}

// Config returns the configuration the scene was built with.
func (s *Scene) Config() Config {
	return s.config
}

// Ticks returns the number of completed ticks.
func (s *Scene) Ticks() uint64 {
	return s.scheduler.Ticks()
}

// Stats returns timing statistics for the startup and update phases.
func (s *Scene) Stats() *ecs.SchedulerStats {
	return s.scheduler.GetStats()
}

// StorageStats returns entity and component counts.
func (s *Scene) StorageStats() ecs.StorageStats {
	return s.storage.CollectStats()
}

// CameraCount returns the number of camera entities. It is zero before the
// first tick.
func (s *Scene) CameraCount() int {
	return s.cameras.Count()
}

// PlayerCount returns the number of player entities. It is zero before the
// first tick.
func (s *Scene) PlayerCount() int {
	return s.players.Count()
}

// Camera returns a copy of the camera's transform.
// It panics unless exactly one camera exists.
func (s *Scene) Camera() Transform {
	_, camera := s.cameras.Single()
	return *camera.Transform
}

// CameraPosition returns the camera translation.
func (s *Scene) CameraPosition() Vec2 {
	return s.Camera().Translation
}

// CameraRotation returns the camera rotation in radians.
func (s *Scene) CameraRotation() float64 {
	return s.Camera().Rotation
}

// Player returns copies of the player's transform and sprite.
// It panics unless exactly one player exists.
func (s *Scene) Player() (Transform, Sprite) {
	_, player := s.players.Single()
	var sprite Sprite
	if player.Sprite != nil {
		sprite = *player.Sprite
	}
	return *player.Transform, sprite
}

// PlayerPosition returns the player translation.
func (s *Scene) PlayerPosition() Vec2 {
	transform, _ := s.Player()
	return transform.Translation
}

// PlayerScale returns the player scale.
func (s *Scene) PlayerScale() Vec2 {
	transform, _ := s.Player()
	return transform.Scale
}
