package system

import (
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/roomstream/ecs"
	"github.com/milk9111/roomstream/ecs/component"
)

// PickupCollectSystem removes pickups the player touches and records them
// on the trophy counter.
type PickupCollectSystem struct{}

func NewPickupCollectSystem() *PickupCollectSystem { return &PickupCollectSystem{} }

func (s *PickupCollectSystem) Update(w *ecs.World) {
	playerBB, ok := livePlayerBounds(w)
	if !ok {
		return
	}

	var counter *component.TrophyCounter
	if e, ok := ecs.First(w, component.TrophyCounterComponent.Kind()); ok {
		counter, _ = ecs.Get(w, e, component.TrophyCounterComponent.Kind())
	}

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Pickup, t *component.Transform) {
		bb := cp.NewBBForExtents(t.Vector(), p.Width/2, p.Height/2)
		if !bb.Intersects(playerBB) {
			return
		}
		ecs.DestroyEntity(w, e)

		if counter == nil {
			return
		}
		if counter.Collect(p.ID) {
			slog.Info("pickup collected", "id", p.ID, "collected", counter.Collected(), "total", counter.Total)
		}
	})
}

// livePlayerBounds returns the player's collider box unless the player is
// missing or dead.
func livePlayerBounds(w *ecs.World) (cp.BB, bool) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok || ecs.Has(w, player, component.DeadComponent.Kind()) {
		return cp.BB{}, false
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return cp.BB{}, false
	}
	c, ok := ecs.Get(w, player, component.ColliderComponent.Kind())
	if !ok {
		return cp.BB{}, false
	}
	return c.Bounds(t), true
}
