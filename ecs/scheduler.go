package ecs

import (
	"context"
	"time"

	"github.com/plus3/panscene/input"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	Ticks   uint64
	Startup PhaseStats
	Update  PhaseStats
}

// PhaseStats provides execution statistics for one phase.
type PhaseStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type phase struct {
	system         System
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func newPhase(name string, system System) *phase {
	return &phase{
		system:      system,
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	}
}

func (p *phase) execute(frame *UpdateFrame) {
	start := time.Now()
	p.system.Execute(frame)
	duration := time.Since(start)

	p.executionCount++
	p.lastDuration = duration
	p.totalDuration += duration
	if duration < p.minDuration {
		p.minDuration = duration
	}
	if duration > p.maxDuration {
		p.maxDuration = duration
	}
}

func (p *phase) stats() PhaseStats {
	s := PhaseStats{
		Name:           p.name,
		ExecutionCount: p.executionCount,
		MaxDuration:    p.maxDuration,
		LastDuration:   p.lastDuration,
		TotalDuration:  p.totalDuration,
	}
	if p.executionCount > 0 {
		s.MinDuration = p.minDuration
		s.AvgDuration = p.totalDuration / time.Duration(p.executionCount)
	}
	return s
}

// Scheduler runs a startup system exactly once, then an update system once
// per tick. The first tick runs both: startup, a flush of its commands, then
// update. Commands queued by update are flushed at the end of the tick.
type Scheduler struct {
	storage *Storage
	startup *phase
	update  *phase
	started bool
	ticks   uint64
}

// NewScheduler creates a scheduler for the given storage and phases.
func NewScheduler(storage *Storage, startup, update System) *Scheduler {
	return &Scheduler{
		storage: storage,
		startup: newPhase("startup", startup),
		update:  newPhase("update", update),
	}
}

// Started reports whether the startup phase has run.
func (s *Scheduler) Started() bool {
	return s.started
}

// Ticks returns the number of completed ticks.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// Once runs a single tick with the given input snapshot.
func (s *Scheduler) Once(in input.Snapshot) {
	tick := s.ticks + 1

	if !s.started {
		frame := newUpdateFrame(tick, in, s.storage)
		s.startup.execute(frame)
		frame.Commands.Flush(s.storage)
		s.started = true
	}

	frame := newUpdateFrame(tick, in, s.storage)
	s.update.execute(frame)
	frame.Commands.Flush(s.storage)

	s.ticks = tick
}

// Run ticks at the given interval until the context is cancelled. poll is
// asked for a fresh snapshot before every tick; a nil poll means no keys.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration, poll func() input.Snapshot) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			var in input.Snapshot
			if poll != nil {
				in = poll()
			}
			s.Once(in)
		}
	}
}

// GetStats returns statistics about phase execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	return &SchedulerStats{
		Ticks:   s.ticks,
		Startup: s.startup.stats(),
		Update:  s.update.stats(),
	}
}
