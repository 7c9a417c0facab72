package ecs

import "github.com/plus3/panscene/input"

// UpdateFrame is handed to every system run. Input is the key snapshot for
// this tick; systems must not read device state any other way.
type UpdateFrame struct {
	Tick     uint64
	Input    input.Snapshot
	Commands *Commands
	Storage  *Storage
}

func newUpdateFrame(tick uint64, in input.Snapshot, storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		Tick:     tick,
		Input:    in,
		Commands: newCommands(),
		Storage:  storage,
	}
}
