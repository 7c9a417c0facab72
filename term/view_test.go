package term_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/panscene/input"
	"github.com/plus3/panscene/scene"
	"github.com/plus3/panscene/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	screenWidth  = 40
	screenHeight = 21
)

func newView(t *testing.T, mutate func(*scene.Config)) (*term.View, tcell.SimulationScreen) {
	t.Helper()

	cfg := scene.DefaultConfig()
	cfg.Velocity = scene.Vec2{}
	if mutate != nil {
		mutate(&cfg)
	}
	s, err := scene.New(cfg)
	require.NoError(t, err)

	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(screenWidth, screenHeight)
	t.Cleanup(screen.Fini)

	return term.NewView(s, screen), screen
}

func cell(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func keyEvent(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestKeyOf(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want input.Key
	}{
		{keyEvent(tcell.KeyRight, 0), input.KeyRight},
		{keyEvent(tcell.KeyLeft, 0), input.KeyLeft},
		{keyEvent(tcell.KeyUp, 0), input.KeyUp},
		{keyEvent(tcell.KeyDown, 0), input.KeyDown},
		{keyEvent(tcell.KeyRune, 'd'), input.KeyRight},
		{keyEvent(tcell.KeyRune, 'A'), input.KeyLeft},
		{keyEvent(tcell.KeyRune, 'w'), input.KeyUp},
		{keyEvent(tcell.KeyRune, 's'), input.KeyDown},
		{keyEvent(tcell.KeyRune, 'e'), input.KeyRotateNegative},
		{keyEvent(tcell.KeyRune, 'q'), input.KeyRotatePositive},
	}
	for _, tc := range cases {
		k, ok := term.KeyOf(tc.ev)
		assert.True(t, ok, tc.ev.Name())
		assert.Equal(t, tc.want, k, tc.ev.Name())
	}

	_, ok := term.KeyOf(keyEvent(tcell.KeyRune, 'z'))
	assert.False(t, ok)
	_, ok = term.KeyOf(keyEvent(tcell.KeyEnter, 0))
	assert.False(t, ok)
}

func TestViewDrawsPlayerAtCenter(t *testing.T) {
	view, screen := newView(t, nil)
	view.Step()

	// 64x32 player over 4x8 cells covers 16x4 cells around the center.
	assert.Equal(t, '█', cell(screen, 20, 10))
	assert.Equal(t, '█', cell(screen, 27, 10))
	assert.Equal(t, ' ', cell(screen, 28, 10))
	assert.Equal(t, ' ', cell(screen, 0, screenHeight-1))

	// Status line.
	assert.Equal(t, 'v', cell(screen, 1, 0))
}

func TestViewFollowsCameraRotation(t *testing.T) {
	view, screen := newView(t, func(cfg *scene.Config) {
		cfg.Mode = scene.ModeKeyboard
		cfg.RotateStep = math.Pi / 2
	})

	view.Step()
	assert.Equal(t, '█', cell(screen, 24, 10))

	// A quarter turn stands the player on its end.
	view.HandleEvent(keyEvent(tcell.KeyRune, 'q'))
	view.Step()
	assert.Equal(t, ' ', cell(screen, 24, 10))
	assert.Equal(t, '█', cell(screen, 23, 7))
}

func TestViewKeyPressLastsOneTick(t *testing.T) {
	view, _ := newView(t, func(cfg *scene.Config) {
		cfg.Mode = scene.ModeKeyboard
	})

	assert.False(t, view.HandleEvent(keyEvent(tcell.KeyRune, 'd')))
	assert.False(t, view.HandleEvent(keyEvent(tcell.KeyUp, 0)))
	view.Step()
	assert.Equal(t, scene.Vec2{X: 1, Y: 1}, view.Scene.CameraPosition())

	view.Step()
	assert.Equal(t, scene.Vec2{X: 1, Y: 1}, view.Scene.CameraPosition())
}

func TestViewDrawsOrigin(t *testing.T) {
	view, screen := newView(t, func(cfg *scene.Config) {
		cfg.Mode = scene.ModeKeyboard
		cfg.PanStep = 40
		cfg.PlayerScale = scene.Vec2{X: 2, Y: 2}
	})

	view.HandleEvent(keyEvent(tcell.KeyRight, 0))
	view.Step()

	assert.Equal(t, '+', cell(screen, 10, 10))
	assert.Equal(t, ' ', cell(screen, 20, 10))
}

func TestViewQuitKeys(t *testing.T) {
	view, _ := newView(t, nil)

	assert.True(t, view.HandleEvent(keyEvent(tcell.KeyEscape, 0)))
	assert.True(t, view.HandleEvent(keyEvent(tcell.KeyCtrlC, 0)))
}

func TestViewRun(t *testing.T) {
	t.Run("stops on escape", func(t *testing.T) {
		view, screen := newView(t, nil)

		done := make(chan struct{})
		go func() {
			view.Run(context.Background(), time.Millisecond)
			close(done)
		}()

		time.Sleep(20 * time.Millisecond)
		screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Run did not return after escape")
		}
		assert.Greater(t, view.Scene.Ticks(), uint64(0))
	})

	t.Run("stops on cancel", func(t *testing.T) {
		view, _ := newView(t, nil)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		done := make(chan struct{})
		go func() {
			view.Run(ctx, time.Millisecond)
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Run did not return after cancellation")
		}
	})
}
