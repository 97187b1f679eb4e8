package rooms

import (
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"github.com/jakecoffman/cp"
)

// Instance is one live realization of a Descriptor.
type Instance struct {
	// ID changes on every spawn, so a refreshed room is distinguishable from
	// the one it replaced.
	ID      uuid.UUID
	Room    *Descriptor
	Anchor  cp.Vector
	Content Content
}

// Cache holds at most one live Instance per room id.
type Cache struct {
	spawner    Spawner
	logger     *slog.Logger
	instances  map[string]*Instance
	violations int
}

func NewCache(spawner Spawner, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{
		spawner:   spawner,
		logger:    logger,
		instances: make(map[string]*Instance),
	}
}

// Spawn instantiates room at pos. A second spawn for a loaded id means the
// preload bookkeeping is broken: it is logged, counted, and the old instance
// is torn down before being replaced so nothing leaks.
func (c *Cache) Spawn(room *Descriptor, pos cp.Vector) (*Instance, bool) {
	if room == nil {
		return nil, false
	}

	if old, ok := c.instances[room.ID]; ok {
		c.violations++
		c.logger.Error("room already loaded, replacing instance",
			"room", room.ID, "instance", old.ID, "violations", c.violations)
		c.teardown(old)
		delete(c.instances, room.ID)
	}

	if c.spawner == nil {
		c.logger.Error("no spawner configured", "room", room.ID)
		return nil, false
	}

	content, err := c.spawner.SpawnRoom(room, pos)
	if err != nil {
		c.logger.Error("spawning room", "room", room.ID, "template", room.Template, "error", err)
		return nil, false
	}

	inst := &Instance{
		ID:      uuid.New(),
		Room:    room,
		Anchor:  pos,
		Content: content,
	}
	c.instances[room.ID] = inst
	c.logger.Debug("room spawned", "room", room.ID, "instance", inst.ID, "x", pos.X, "y", pos.Y)
	return inst, true
}

// Destroy tears down the instance for id. Unknown ids are ignored.
func (c *Cache) Destroy(id string) {
	inst, ok := c.instances[id]
	if !ok {
		return
	}
	c.teardown(inst)
	delete(c.instances, id)
	c.logger.Debug("room destroyed", "room", id, "instance", inst.ID)
}

// Refresh replaces whatever instance exists for room with a pristine one at
// pos.
func (c *Cache) Refresh(room *Descriptor, pos cp.Vector) (*Instance, bool) {
	if room == nil {
		return nil, false
	}
	c.Destroy(room.ID)
	return c.Spawn(room, pos)
}

func (c *Cache) IsLoaded(id string) bool {
	_, ok := c.instances[id]
	return ok
}

func (c *Cache) Instance(id string) (*Instance, bool) {
	inst, ok := c.instances[id]
	return inst, ok
}

// Loaded returns the loaded room ids in sorted order.
func (c *Cache) Loaded() []string {
	ids := make([]string, 0, len(c.instances))
	for id := range c.instances {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (c *Cache) Len() int {
	return len(c.instances)
}

// Clear destroys every instance.
func (c *Cache) Clear() {
	for _, id := range c.Loaded() {
		c.Destroy(id)
	}
}

// Violations counts duplicate spawns seen so far.
func (c *Cache) Violations() int {
	return c.violations
}

func (c *Cache) teardown(inst *Instance) {
	if inst.Content != nil {
		inst.Content.Destroy()
	}
}
