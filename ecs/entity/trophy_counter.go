package entity

import (
	"fmt"

	"github.com/milk9111/roomstream/ecs"
	"github.com/milk9111/roomstream/ecs/component"
	"github.com/zyedidia/generic/mapset"
)

const trophyCounterID = "trophy_counter"

// NewTrophyCounter creates the collected-pickups tracker. It survives death
// reloads but not a reset to the first room.
func NewTrophyCounter(w *ecs.World, total int) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TrophyCounterComponent.Kind(), &component.TrophyCounter{
		Seen:  mapset.New[string](),
		Total: total,
	}); err != nil {
		return 0, fmt.Errorf("trophy counter: add counter component: %w", err)
	}
	if err := ecs.Add(w, e, component.PersistentComponent.Kind(), &component.Persistent{
		ID:           trophyCounterID,
		KeepOnReload: true,
	}); err != nil {
		return 0, fmt.Errorf("trophy counter: add persistent component: %w", err)
	}
	return e, nil
}
