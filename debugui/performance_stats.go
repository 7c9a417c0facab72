package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/panscene/scene"
)

// PerformanceStats plots frame times and shows phase timings and storage
// counts.
type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	timer         *FrameTimer
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		timer:         NewFrameTimer(),
	}
}

func (ps *PerformanceStats) Render(s *scene.Scene) {
	deltaTime := ps.timer.GetDeltaTime()

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 380), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 300), imgui.CondOnce)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ps.historyFrames)
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	stats := s.Stats()
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Startup: %s", stats.Startup.TotalDuration))
	imgui.Text(fmt.Sprintf("Update avg/min/max: %s / %s / %s",
		stats.Update.AvgDuration, stats.Update.MinDuration, stats.Update.MaxDuration))

	storage := s.StorageStats()
	imgui.Text(fmt.Sprintf("Total Entities: %d", storage.EntityCount))

	if imgui.TreeNodeStr("Component Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ComponentStatsTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Component")
			imgui.TableSetupColumn("Entity Count")
			imgui.TableHeadersRow()

			for _, c := range storage.ComponentCounts {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(c.Type)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", c.Count))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
