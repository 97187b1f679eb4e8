package system

import (
	"log/slog"

	"github.com/milk9111/roomstream/ecs"
	"github.com/milk9111/roomstream/ecs/component"
	"github.com/milk9111/roomstream/rooms"
)

// EncounterSystem starts an encounter once the player has settled into its
// room and clears it after its duration. While active the encounter gate
// turns every door of the room into a wall.
type EncounterSystem struct {
	streamer *rooms.WorldStreamer
}

func NewEncounterSystem(streamer *rooms.WorldStreamer) *EncounterSystem {
	return &EncounterSystem{streamer: streamer}
}

func (s *EncounterSystem) Update(w *ecs.World) {
	current := s.streamer.Current()

	ecs.ForEach2(w, component.EncounterComponent.Kind(), component.RoomMemberComponent.Kind(), func(_ ecs.Entity, enc *component.Encounter, member *component.RoomMember) {
		if enc.Cleared {
			return
		}

		if !enc.Active {
			if current == nil || current.ID != member.RoomID || s.streamer.IsTransitioning() {
				return
			}
			enc.Active = true
			enc.Remaining = enc.Duration
			slog.Info("encounter started", "name", enc.Name, "room", member.RoomID)
			return
		}

		enc.Remaining -= Tick
		if enc.Remaining <= 0 {
			enc.Active = false
			enc.Cleared = true
			enc.Remaining = 0
			slog.Info("encounter cleared", "name", enc.Name, "room", member.RoomID)
		}
	})
}
