package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/plus3/panscene/input"
	"github.com/plus3/panscene/scene"
)

func main() {
	cfg := scene.DefaultConfig()
	cfg.RegisterFlags(flag.CommandLine)
	ticks := flag.Int("ticks", 600, "Number of ticks to run. Ignored when -duration is set.")
	duration := flag.Duration("duration", 0, "Run in real time for this long instead of a fixed tick count.")
	interval := flag.Duration("interval", time.Second/60, "Tick interval when running in real time.")
	keys := flag.String("keys", "", `Key script, one snapshot per tick, e.g. "right,right+up,,rotate-negative". Repeats until the run ends.`)
	flag.Parse()

	script, err := input.ParseScript(*keys)
	if err != nil {
		log.Fatalf("Invalid -keys: %v", err)
	}

	s, err := scene.New(cfg)
	if err != nil {
		log.Fatalf("Invalid scene config: %v", err)
	}

	log.Printf("Scene %s: %s camera", s.ID(), cfg.Mode)

	report := &Report{
		Scene:    s.ID().String(),
		Config:   cfg,
		Script:   len(script),
		Interval: *interval,
	}

	player := newScriptPlayer(script)
	startTime := time.Now()

	if *duration > 0 {
		log.Printf("Running for %s at %s per tick...", *duration, *interval)
		ctx, cancel := context.WithTimeout(context.Background(), *duration)
		defer cancel()
		s.Run(ctx, *interval, player.next)
	} else {
		log.Printf("Running %d ticks...", *ticks)
		for i := 0; i < *ticks; i++ {
			s.Tick(player.next())
		}
	}

	report.TotalTime = time.Since(startTime)
	report.Collect(s)

	log.Println("Run finished.")

	fmt.Println()
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
}

// scriptPlayer hands out the scripted snapshots in order, looping. An empty
// script yields no keys.
type scriptPlayer struct {
	script []input.Snapshot
	pos    int
}

func newScriptPlayer(script []input.Snapshot) *scriptPlayer {
	return &scriptPlayer{script: script}
}

func (p *scriptPlayer) next() input.Snapshot {
	if len(p.script) == 0 {
		return 0
	}
	s := p.script[p.pos]
	p.pos = (p.pos + 1) % len(p.script)
	return s
}
