package scene

import (
	"errors"
	"fmt"
	"math"
)

// Mode selects how the camera is driven.
type Mode string

const (
	// ModeVelocity drifts the camera by a constant velocity every tick.
	ModeVelocity Mode = "velocity"
	// ModeKeyboard pans and turns the camera from the held keys.
	ModeKeyboard Mode = "keyboard"
)

var (
	ErrUnknownMode   = errors.New("unknown camera mode")
	ErrInvalidConfig = errors.New("invalid scene config")
)

// ParseMode resolves a mode name as used on the command line.
func ParseMode(name string) (Mode, error) {
	switch m := Mode(name); m {
	case ModeVelocity, ModeKeyboard:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Config holds everything fixed at scene construction.
type Config struct {
	Mode Mode

	// Velocity is added to the camera translation every tick in ModeVelocity.
	Velocity Vec2

	// PanStep and RotateStep are the per-tick increments in ModeKeyboard.
	PanStep    float64
	RotateStep float64

	// PlayerScale is the player's fixed, non-uniform size.
	PlayerScale Vec2
	PlayerColor [3]uint8
}

// DefaultConfig returns the demo values: a camera drifting at (0.2, 0.1)
// per tick past a 64x32 player.
func DefaultConfig() Config {
	return Config{
		Mode:        ModeVelocity,
		Velocity:    Vec2{X: 0.2, Y: 0.1},
		PanStep:     1.0,
		RotateStep:  0.1,
		PlayerScale: Vec2{X: 64, Y: 32},
		PlayerColor: [3]uint8{255, 179, 186},
	}
}

// Validate reports the first problem with c, wrapping ErrUnknownMode or
// ErrInvalidConfig.
func (c Config) Validate() error {
	if _, err := ParseMode(string(c.Mode)); err != nil {
		return err
	}
	if !c.Velocity.Finite() {
		return fmt.Errorf("%w: velocity %v is not finite", ErrInvalidConfig, c.Velocity)
	}
	if !c.PlayerScale.Finite() {
		return fmt.Errorf("%w: player scale %v is not finite", ErrInvalidConfig, c.PlayerScale)
	}
	if c.PlayerScale.X == 0 || c.PlayerScale.Y == 0 {
		return fmt.Errorf("%w: player scale %v has a zero component", ErrInvalidConfig, c.PlayerScale)
	}
	if !finite(c.PanStep) {
		return fmt.Errorf("%w: pan step %g is not finite", ErrInvalidConfig, c.PanStep)
	}
	if !finite(c.RotateStep) {
		return fmt.Errorf("%w: rotate step %g is not finite", ErrInvalidConfig, c.RotateStep)
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
