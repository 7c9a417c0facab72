// Package debugui draws Dear ImGui inspector windows for a running scene on
// top of an ebiten window.
package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/panscene/scene"
)

// Overlay owns the ImGui backend and the inspector windows. It satisfies
// render.Overlay.
type Overlay struct {
	backend *ebitenbackend.EbitenBackend
	scene   *scene.Scene

	inspector   *SceneInspector
	performance *PerformanceStats
}

// NewOverlay creates the ImGui backend and its window. Call it before
// ebiten.RunGame.
func NewOverlay(s *scene.Scene, title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	return &Overlay{
		backend:     backend,
		scene:       s,
		inspector:   &SceneInspector{},
		performance: NewPerformanceStats(120),
	}
}

// WantCaptureKeyboard reports whether ImGui is consuming keyboard input, in
// which case key presses should not reach the scene.
func (o *Overlay) WantCaptureKeyboard() bool {
	return imgui.CurrentIO().WantCaptureKeyboard()
}

func (o *Overlay) BeginFrame() {
	o.backend.BeginFrame()
}

// EndFrame builds this frame's windows and finishes the ImGui frame.
func (o *Overlay) EndFrame() {
	o.inspector.Render(o.scene)
	o.performance.Render(o.scene)
	o.backend.EndFrame()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

func (o *Overlay) Layout(width, height int) {
	o.backend.Layout(width, height)
}
