package debugui

import (
	"fmt"
	"math"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/panscene/scene"
)

// SceneInspector shows the camera and player transforms.
type SceneInspector struct{}

func (si *SceneInspector) Render(s *scene.Scene) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 110), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 260), imgui.CondOnce)

	if !imgui.BeginV("Scene", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	cfg := s.Config()
	imgui.Text(fmt.Sprintf("Scene: %s", s.ID()))
	imgui.Text(fmt.Sprintf("Mode: %s", cfg.Mode))
	imgui.Text(fmt.Sprintf("Tick: %d", s.Ticks()))
	imgui.Separator()

	if s.Ticks() == 0 {
		imgui.Text("Not started")
		imgui.End()
		return
	}

	if imgui.TreeNodeStr(fmt.Sprintf("Cameras (%d)", s.CameraCount())) {
		camera := s.Camera()
		imgui.Text(fmt.Sprintf("Position: %v", camera.Translation))
		imgui.Text(fmt.Sprintf("Rotation: %.3f rad (%.1f deg)", camera.Rotation, camera.Rotation*180/math.Pi))
		switch cfg.Mode {
		case scene.ModeVelocity:
			imgui.Text(fmt.Sprintf("Velocity: %v per tick", cfg.Velocity))
		case scene.ModeKeyboard:
			imgui.Text(fmt.Sprintf("Pan step: %g, rotate step: %g", cfg.PanStep, cfg.RotateStep))
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr(fmt.Sprintf("Players (%d)", s.PlayerCount())) {
		player, sprite := s.Player()
		imgui.Text(fmt.Sprintf("Position: %v", player.Translation))
		imgui.Text(fmt.Sprintf("Scale: %v", player.Scale))
		imgui.Text(fmt.Sprintf("Color: #%02X%02X%02X", sprite.Color[0], sprite.Color[1], sprite.Color[2]))
		imgui.TreePop()
	}

	imgui.End()
}
