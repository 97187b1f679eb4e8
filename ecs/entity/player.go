package entity

import (
	"fmt"

	"github.com/milk9111/roomstream/ecs"
	"github.com/milk9111/roomstream/ecs/component"
)

func NewPlayer(w *ecs.World) (ecs.Entity, error) {
	e, err := BuildEntity(w, "player.yaml")
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if !ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("player: prefab has no player_tag")
	}
	return e, nil
}
