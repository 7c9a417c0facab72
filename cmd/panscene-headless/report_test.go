package main

import (
	"strings"
	"testing"

	"github.com/plus3/panscene/input"
	"github.com/plus3/panscene/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportVelocity(t *testing.T) {
	cfg := scene.DefaultConfig()
	cfg.Velocity = scene.Vec2{X: 1, Y: 2}
	s, err := scene.New(cfg)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		s.Tick(0)
	}

	report := &Report{Scene: s.ID().String(), Config: cfg}
	report.Collect(s)

	var out strings.Builder
	require.NoError(t, report.Generate(&out))

	text := out.String()
	assert.Contains(t, text, "- **Mode:** velocity")
	assert.Contains(t, text, "- **Velocity:** (1, 2) per tick")
	assert.Contains(t, text, "- **Ticks:** 3")
	assert.Contains(t, text, "- **Camera Position:** (3, 6)")
	assert.Contains(t, text, "- **Player Position:** (0, 0)")
	assert.Contains(t, text, "- **Player Scale:** (64, 32)")
	assert.Contains(t, text, "  - scene.Transform: 2")
	assert.NotContains(t, text, "Pan Step")
}

func TestReportBeforeFirstTick(t *testing.T) {
	cfg := scene.DefaultConfig()
	cfg.Mode = scene.ModeKeyboard
	s, err := scene.New(cfg)
	require.NoError(t, err)

	report := &Report{Scene: s.ID().String(), Config: cfg}
	report.Collect(s)

	var out strings.Builder
	require.NoError(t, report.Generate(&out))

	text := out.String()
	assert.Contains(t, text, "- **Pan Step:** 1")
	assert.Contains(t, text, "- **Cameras:** 0")
	assert.NotContains(t, text, "Camera Position")
}

func TestScriptPlayerLoops(t *testing.T) {
	script, err := input.ParseScript("right,,up")
	require.NoError(t, err)

	p := newScriptPlayer(script)
	var got []input.Snapshot
	for i := 0; i < 5; i++ {
		got = append(got, p.next())
	}

	assert.Equal(t, []input.Snapshot{
		input.NewSnapshot(input.KeyRight),
		0,
		input.NewSnapshot(input.KeyUp),
		input.NewSnapshot(input.KeyRight),
		0,
	}, got)

	assert.True(t, newScriptPlayer(nil).next().Empty())
}
