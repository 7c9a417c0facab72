package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/panscene/scene"
	"github.com/plus3/panscene/term"
)

func main() {
	cfg := scene.DefaultConfig()
	cfg.RegisterFlags(flag.CommandLine)
	interval := flag.Duration("interval", time.Second/30, "Tick interval.")
	cellWidth := flag.Float64("cell-width", 4, "World units per terminal column.")
	cellHeight := flag.Float64("cell-height", 8, "World units per terminal row.")
	flag.Parse()

	s, err := scene.New(cfg)
	if err != nil {
		log.Fatalf("Invalid scene config: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialise screen: %v", err)
	}

	view := term.NewView(s, screen)
	view.CellWidth = *cellWidth
	view.CellHeight = *cellHeight

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	view.Run(ctx, *interval)
	stop()
	screen.Fini()

	log.Printf("Scene %s stopped after %d ticks", s.ID(), s.Ticks())
}
