package system

import (
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/roomstream/ecs"
	"github.com/milk9111/roomstream/ecs/component"
	"github.com/milk9111/roomstream/rooms"
)

// HazardSystem kills the player on hazard contact and arms the streamer's
// restart point. Hazards are ignored while a move is animating or settling.
type HazardSystem struct {
	streamer *rooms.WorldStreamer
}

func NewHazardSystem(streamer *rooms.WorldStreamer) *HazardSystem {
	return &HazardSystem{streamer: streamer}
}

func (s *HazardSystem) Update(w *ecs.World) {
	if s.streamer.IsTransitioning() || s.streamer.IsCoolingDown() {
		return
	}
	playerBB, ok := livePlayerBounds(w)
	if !ok {
		return
	}

	hit := false
	ecs.ForEach2(w, component.HazardComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, h *component.Hazard, t *component.Transform) {
		if hit {
			return
		}
		hit = cp.NewBBForExtents(t.Vector(), h.Width/2, h.Height/2).Intersects(playerBB)
	})
	if !hit {
		return
	}

	player, _ := ecs.First(w, component.PlayerTagComponent.Kind())
	_ = ecs.Add(w, player, component.DeadComponent.Kind(), &component.Dead{})
	NewPlayerAgent(w).SetInputEnabled(false)
	NewPlayerAgent(w).ZeroVelocity()
	s.streamer.MarkSafeEntryAsRestartPoint()

	room := ""
	if cur := s.streamer.Current(); cur != nil {
		room = cur.ID
	}
	slog.Info("player died", "room", room)
}
