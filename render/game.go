// Package render shows a scene in an ebiten window and feeds it the held
// keys every frame.
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/panscene/scene"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720

	gridSpacing = 64
)

var (
	backgroundColor = color.RGBA{245, 245, 240, 255}
	gridColor       = color.RGBA{220, 220, 210, 255}
	axisColor       = color.RGBA{170, 170, 160, 255}
)

// Overlay draws on top of the scene, such as a debug UI. BeginFrame and
// EndFrame bracket the scene tick inside Update.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(width, height int)
}

// keyboardCapturer is implemented by overlays that can take keyboard focus
// away from the scene.
type keyboardCapturer interface {
	WantCaptureKeyboard() bool
}

// Game implements ebiten.Game around a scene. Every ebiten update is one
// scene tick.
type Game struct {
	Scene    *scene.Scene
	Bindings Bindings
	Overlay  Overlay
	// ShowHUD prints the camera state in the top left corner.
	ShowHUD bool

	pixel         *ebiten.Image
	width, height int
}

// NewGame creates a game for s with the default key bindings.
func NewGame(s *scene.Scene) *Game {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)

	return &Game{
		Scene:    s,
		Bindings: DefaultBindings(),
		ShowHUD:  true,
		pixel:    pixel,
		width:    ScreenWidth,
		height:   ScreenHeight,
	}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.Overlay != nil {
		g.Overlay.BeginFrame()
	}

	keys := g.Bindings.Snapshot(ebiten.IsKeyPressed)
	if c, ok := g.Overlay.(keyboardCapturer); ok && c.WantCaptureKeyboard() {
		keys = 0
	}
	g.Scene.Tick(keys)

	if g.Overlay != nil {
		g.Overlay.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	if g.Scene.Ticks() == 0 {
		return
	}

	camera := g.Scene.Camera()
	g.drawGrid(screen, camera)
	g.drawPlayer(screen, camera)

	if g.ShowHUD {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"%s camera\ntick %d\nposition %v\nrotation %.2f rad\nFPS %.0f",
			g.Scene.Config().Mode, g.Scene.Ticks(), camera.Translation, camera.Rotation, ebiten.ActualFPS(),
		))
	}

	if g.Overlay != nil {
		g.Overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Overlay != nil {
		g.Overlay.Layout(outsideWidth, outsideHeight)
	}
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// toScreen maps a world point to screen pixels. The view origin is the
// screen center and screen Y grows downward.
func (g *Game) toScreen(camera scene.Transform, p scene.Vec2) (float32, float32) {
	v := scene.WorldToView(camera, p)
	return float32(float64(g.width)/2 + v.X), float32(float64(g.height)/2 - v.Y)
}

// drawGrid draws world-space grid lines around the camera so that panning
// and turning are visible even when the player is off screen.
func (g *Game) drawGrid(screen *ebiten.Image, camera scene.Transform) {
	reach := float64(g.width+g.height) / 2
	lines := int(reach/gridSpacing) + 1
	cx := float64(int(camera.Translation.X/gridSpacing)) * gridSpacing
	cy := float64(int(camera.Translation.Y/gridSpacing)) * gridSpacing

	for i := -lines; i <= lines; i++ {
		offset := float64(i) * gridSpacing

		x := cx + offset
		clr := gridColor
		if x == 0 {
			clr = axisColor
		}
		x0, y0 := g.toScreen(camera, scene.Vec2{X: x, Y: cy - reach})
		x1, y1 := g.toScreen(camera, scene.Vec2{X: x, Y: cy + reach})
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, clr, false)

		y := cy + offset
		clr = gridColor
		if y == 0 {
			clr = axisColor
		}
		x0, y0 = g.toScreen(camera, scene.Vec2{X: cx - reach, Y: y})
		x1, y1 = g.toScreen(camera, scene.Vec2{X: cx + reach, Y: y})
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, clr, false)
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image, camera scene.Transform) {
	player, sprite := g.Scene.Player()

	op := &ebiten.DrawImageOptions{}
	// Unit square centered on the origin, stretched to the player size.
	op.GeoM.Translate(-0.5, -0.5)
	op.GeoM.Scale(player.Scale.X, player.Scale.Y)
	op.GeoM.Rotate(player.Rotation)
	// World to view, in Y-up coordinates.
	op.GeoM.Translate(player.Translation.X-camera.Translation.X, player.Translation.Y-camera.Translation.Y)
	op.GeoM.Rotate(-camera.Rotation)
	// View to screen.
	op.GeoM.Scale(1, -1)
	op.GeoM.Translate(float64(g.width)/2, float64(g.height)/2)

	op.ColorScale.Scale(
		float32(sprite.Color[0])/255,
		float32(sprite.Color[1])/255,
		float32(sprite.Color[2])/255,
		1,
	)
	screen.DrawImage(g.pixel, op)
}
