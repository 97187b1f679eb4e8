package entity

import (
	"fmt"
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/roomstream/ecs"
	"github.com/milk9111/roomstream/ecs/component"
	"github.com/milk9111/roomstream/prefabs"
	"github.com/milk9111/roomstream/rooms"
)

// RoomFactory builds room templates into the ECS world.
type RoomFactory struct {
	world     *ecs.World
	templates *prefabs.Templates
	logger    *slog.Logger
}

func NewRoomFactory(w *ecs.World, templates *prefabs.Templates, logger *slog.Logger) *RoomFactory {
	if templates == nil {
		templates = prefabs.NewTemplates()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RoomFactory{world: w, templates: templates, logger: logger}
}

// SpawnRoom builds every entity of room's template offset by anchor and tags
// them with the room id. A template error leaves nothing behind.
func (f *RoomFactory) SpawnRoom(room *rooms.Descriptor, anchor cp.Vector) (rooms.Content, error) {
	tpl, err := f.templates.Get(room.Template)
	if err != nil {
		return nil, fmt.Errorf("room %q: %w: %w", room.ID, rooms.ErrTemplateNotFound, err)
	}

	content := &roomContent{world: f.world}
	ctx := &buildContext{PrefabPath: room.Template, Origin: anchor}

	for i, spec := range tpl.Entities {
		e, err := BuildEntityFromSpec(f.world, spec, ctx)
		if err != nil {
			content.Destroy()
			return nil, fmt.Errorf("room %q: %w", room.ID, err)
		}
		if err := ecs.Add(f.world, e, component.RoomMemberComponent.Kind(), &component.RoomMember{RoomID: room.ID}); err != nil {
			ecs.DestroyEntity(f.world, e)
			content.Destroy()
			return nil, fmt.Errorf("room %q: %w", room.ID, err)
		}
		content.entities = append(content.entities, e)

		if pickup, ok := ecs.Get(f.world, e, component.PickupComponent.Kind()); ok {
			name := spec.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			pickup.ID = room.ID + "/" + name
		}

		if ecs.Has(f.world, e, component.EndingComponent.Kind()) && content.ending == nil {
			content.ending = &endingTrigger{world: f.world, entity: e, room: room.ID, logger: f.logger}
		}
	}

	return content, nil
}

// CountPickups totals the pickups authored across every room, for the
// trophy tracker. Rooms whose template fails to load count as zero.
func (f *RoomFactory) CountPickups(reg *rooms.Registry) int {
	total := 0
	for _, d := range reg.All() {
		tpl, err := f.templates.Get(d.Template)
		if err != nil {
			f.logger.Warn("counting pickups", "room", d.ID, "error", err)
			continue
		}
		for _, e := range tpl.Entities {
			if _, ok := e.Components["pickup"]; ok {
				total++
			}
		}
	}
	return total
}

type roomContent struct {
	world    *ecs.World
	entities []ecs.Entity
	ending   *endingTrigger
}

// Destroy removes whatever is left of the room. Entities the game already
// removed, like collected pickups, are skipped.
func (c *roomContent) Destroy() {
	for _, e := range c.entities {
		ecs.DestroyEntity(c.world, e)
	}
	c.entities = nil
}

func (c *roomContent) Ending() rooms.EndingTrigger {
	if c.ending == nil {
		return nil
	}
	return c.ending
}
