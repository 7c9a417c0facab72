// Package term shows a scene in a terminal. Terminals report key presses but
// not releases, so every key event counts as held for exactly the next tick.
package term

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/panscene/input"
	"github.com/plus3/panscene/scene"
)

const (
	playerGlyph = '█'
	originGlyph = '+'
)

// View draws a scene onto a tcell screen.
type View struct {
	Scene  *scene.Scene
	Screen tcell.Screen

	// CellWidth and CellHeight are the world units covered by one cell.
	// Terminal cells are roughly twice as tall as they are wide.
	CellWidth  float64
	CellHeight float64

	pending input.Snapshot
}

// NewView creates a view of s on screen. The screen must already be
// initialised.
func NewView(s *scene.Scene, screen tcell.Screen) *View {
	return &View{
		Scene:      s,
		Screen:     screen,
		CellWidth:  4,
		CellHeight: 8,
	}
}

// KeyOf maps a terminal key event onto a control. Arrow keys and WASD pan,
// Q and E rotate.
func KeyOf(ev *tcell.EventKey) (input.Key, bool) {
	switch ev.Key() {
	case tcell.KeyRight:
		return input.KeyRight, true
	case tcell.KeyLeft:
		return input.KeyLeft, true
	case tcell.KeyUp:
		return input.KeyUp, true
	case tcell.KeyDown:
		return input.KeyDown, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'd', 'D':
			return input.KeyRight, true
		case 'a', 'A':
			return input.KeyLeft, true
		case 'w', 'W':
			return input.KeyUp, true
		case 's', 'S':
			return input.KeyDown, true
		case 'e', 'E':
			return input.KeyRotateNegative, true
		case 'q', 'Q':
			return input.KeyRotatePositive, true
		}
	}
	return 0, false
}

// HandleEvent records key presses for the next tick. It reports true when
// the user asked to quit.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return true
		}
		if k, ok := KeyOf(ev); ok {
			v.pending = v.pending.With(k)
		}
	case *tcell.EventResize:
		v.Screen.Sync()
	}
	return false
}

// Step ticks the scene with the keys pressed since the last step and redraws.
func (v *View) Step() {
	v.Scene.Tick(v.pending)
	v.pending = 0
	v.Draw()
}

// Draw renders the current scene state. The camera sits at the center of
// the screen; the top row is a status line.
func (v *View) Draw() {
	v.Screen.Clear()

	if v.Scene.Ticks() == 0 {
		v.Screen.Show()
		return
	}

	width, height := v.Screen.Size()
	camera := v.Scene.Camera()
	player, sprite := v.Scene.Player()
	playerStyle := tcell.StyleDefault.Foreground(
		tcell.NewRGBColor(int32(sprite.Color[0]), int32(sprite.Color[1]), int32(sprite.Color[2])),
	)
	originStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)

	for y := 1; y < height; y++ {
		for x := 0; x < width; x++ {
			world := scene.ViewToWorld(camera, v.cellToView(x, y, width, height))
			if insideSprite(player, world) {
				v.Screen.SetContent(x, y, playerGlyph, nil, playerStyle)
			}
		}
	}

	if ox, oy, ok := v.worldToCell(camera, scene.Vec2{}, width, height); ok {
		if r, _, _, _ := v.Screen.GetContent(ox, oy); r != playerGlyph {
			v.Screen.SetContent(ox, oy, originGlyph, nil, originStyle)
		}
	}

	status := fmt.Sprintf(" %s | tick %d | camera %v rot %.2f | esc quits ",
		v.Scene.Config().Mode, v.Scene.Ticks(), roundVec(camera.Translation), camera.Rotation)
	drawText(v.Screen, 0, 0, width, status, tcell.StyleDefault.Reverse(true))

	v.Screen.Show()
}

// Run steps the scene every interval until the context is cancelled or the
// user quits. It does not finalise the screen.
func (v *View) Run(ctx context.Context, interval time.Duration) {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := v.Screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if v.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			v.Step()
		}
	}
}

// cellToView returns the view-space point at the center of cell (x, y).
func (v *View) cellToView(x, y, width, height int) scene.Vec2 {
	return scene.Vec2{
		X: (float64(x) + 0.5 - float64(width)/2) * v.CellWidth,
		Y: -(float64(y) + 0.5 - float64(height)/2) * v.CellHeight,
	}
}

func (v *View) worldToCell(camera scene.Transform, p scene.Vec2, width, height int) (int, int, bool) {
	view := scene.WorldToView(camera, p)
	x := int(view.X/v.CellWidth + float64(width)/2)
	y := int(-view.Y/v.CellHeight + float64(height)/2)
	return x, y, x >= 0 && x < width && y >= 1 && y < height
}

func insideSprite(sprite scene.Transform, world scene.Vec2) bool {
	local := world.Sub(sprite.Translation).Rotate(-sprite.Rotation)
	return math.Abs(local.X) <= math.Abs(sprite.Scale.X)/2 && math.Abs(local.Y) <= math.Abs(sprite.Scale.Y)/2
}

func roundVec(v scene.Vec2) scene.Vec2 {
	return scene.Vec2{X: math.Round(v.X*100) / 100, Y: math.Round(v.Y*100) / 100}
}

func drawText(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= maxWidth {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
