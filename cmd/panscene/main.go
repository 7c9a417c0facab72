package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/panscene/debugui"
	"github.com/plus3/panscene/render"
	"github.com/plus3/panscene/scene"
)

type bindingFlags struct {
	bindings render.Bindings
}

func (b *bindingFlags) String() string { return "" }

func (b *bindingFlags) Set(spec string) error {
	return b.bindings.Set(spec)
}

func main() {
	cfg := scene.DefaultConfig()
	cfg.RegisterFlags(flag.CommandLine)
	debugUI := flag.Bool("debug-ui", false, "Show the Dear ImGui scene inspector.")
	hud := flag.Bool("hud", true, "Print the camera state in the corner of the window.")
	bindings := &bindingFlags{bindings: render.DefaultBindings()}
	flag.Var(bindings, "bind", `Rebind a control, e.g. "rotate-negative=Z,X". Repeatable.`)
	flag.Parse()

	s, err := scene.New(cfg)
	if err != nil {
		log.Fatalf("Invalid scene config: %v", err)
	}

	game := render.NewGame(s)
	game.Bindings = bindings.bindings
	game.ShowHUD = *hud

	const title = "panscene"
	if *debugUI {
		game.Overlay = debugui.NewOverlay(s, title, render.ScreenWidth, render.ScreenHeight)
	} else {
		ebiten.SetWindowSize(render.ScreenWidth, render.ScreenHeight)
		ebiten.SetWindowTitle(title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Printf("Scene %s: %s camera", s.ID(), cfg.Mode)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}

	log.Printf("Scene %s stopped after %d ticks", s.ID(), s.Ticks())
}
