package main

import (
	"io"
	"text/template"
	"time"

	"github.com/plus3/panscene/ecs"
	"github.com/plus3/panscene/scene"
)

type Report struct {
	// Configuration
	Scene    string
	Config   scene.Config
	Script   int
	Interval time.Duration

	// Results
	TotalTime   time.Duration
	Ticks       uint64
	Camera      scene.Transform
	Player      scene.Transform
	CameraCount int
	PlayerCount int
	Phases      *ecs.SchedulerStats
	Storage     ecs.StorageStats
}

// Collect fills the results from the scene's final state.
func (r *Report) Collect(s *scene.Scene) {
	r.Ticks = s.Ticks()
	r.Phases = s.Stats()
	r.Storage = s.StorageStats()
	r.CameraCount = s.CameraCount()
	r.PlayerCount = s.PlayerCount()
	if r.Ticks > 0 {
		r.Camera = s.Camera()
		r.Player, _ = s.Player()
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `# Scene Report

## Configuration
- **Scene:** {{.Scene}}
- **Mode:** {{.Config.Mode}}
{{- if eq .Config.Mode "velocity"}}
- **Velocity:** {{.Config.Velocity}} per tick
{{- else}}
- **Pan Step:** {{.Config.PanStep}}
- **Rotate Step:** {{.Config.RotateStep}} rad
- **Scripted Snapshots:** {{.Script}}
{{- end}}
- **Player Scale:** {{.Config.PlayerScale}}

## Final State
- **Ticks:** {{.Ticks}}
- **Cameras:** {{.CameraCount}}
- **Players:** {{.PlayerCount}}
{{- if .Ticks}}
- **Camera Position:** {{.Camera.Translation}}
- **Camera Rotation:** {{printf "%.4f" .Camera.Rotation}} rad
- **Player Position:** {{.Player.Translation}}
- **Player Scale:** {{.Player.Scale}}
{{- end}}

## Timing
- **Total Time:** {{.TotalTime}}
- **Startup:** {{.Phases.Startup.TotalDuration}}
- **Update (Tick):**
  - **Avg:** {{.Phases.Update.AvgDuration}}
  - **Min:** {{.Phases.Update.MinDuration}}
  - **Max:** {{.Phases.Update.MaxDuration}}

## Storage
- **Entities:** {{.Storage.EntityCount}}
{{- range .Storage.ComponentCounts}}
  - {{.Type}}: {{.Count}}
{{- end}}
`

	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
