package ecs

// Commands buffers structural changes made while systems run. They are applied
// by Flush once the phase that queued them has finished, so systems never see
// entities appear or vanish mid-phase.
type Commands struct {
	spawns  []spawnCommand
	deletes []EntityId
}

func newCommands() *Commands {
	return &Commands{}
}

type spawnCommand struct {
	components []any
}

// Spawn queues an entity spawn operation with the given components.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, spawnCommand{components: components})
}

// Delete queues an entity deletion operation.
func (c *Commands) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

// Pending returns the number of queued operations.
func (c *Commands) Pending() int {
	return len(c.spawns) + len(c.deletes)
}

// Flush applies deletes and then spawns, in the order they were queued, and
// resets the buffer. It returns the ids of the spawned entities.
func (c *Commands) Flush(storage *Storage) []EntityId {
	for _, id := range c.deletes {
		storage.Delete(id)
	}

	var spawned []EntityId
	for _, cmd := range c.spawns {
		spawned = append(spawned, storage.Spawn(cmd.components...))
	}

	c.spawns = c.spawns[:0]
	c.deletes = c.deletes[:0]
	return spawned
}
