package system

import (
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/leonelquinteros/gotext"
	"github.com/milk9111/roomstream/ecs"
	"github.com/milk9111/roomstream/ecs/component"
	"github.com/milk9111/roomstream/rooms"
)

// pushThreshold is how far the stick must lean toward a door to go through.
const pushThreshold = 0.5

// DoorSystem decides each tick whether a door is passable or a wall and
// asks the streamer to move when the player pushes into an open one.
type DoorSystem struct {
	streamer *rooms.WorldStreamer
}

func NewDoorSystem(streamer *rooms.WorldStreamer) *DoorSystem {
	return &DoorSystem{streamer: streamer}
}

func (s *DoorSystem) Update(w *ecs.World) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok || ecs.Has(w, player, component.DeadComponent.Kind()) {
		return
	}
	pt, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	pc, ok := ecs.Get(w, player, component.ColliderComponent.Kind())
	if !ok {
		return
	}
	input, _ := ecs.Get(w, player, component.InputComponent.Kind())
	playerBB := pc.Bounds(pt)
	blocking := s.streamer.Blocking()

	ecs.ForEach3(w, component.DoorComponent.Kind(), component.DoorStateComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, door *component.Door, state *component.DoorState, t *component.Transform) {
		dest := s.destination(w, e, door)
		state.Passable = dest != nil && !blocking

		bb := cp.NewBBForExtents(t.Vector(), door.Width/2, door.Height/2)
		touching := bb.Intersects(playerBB)
		began := touching && !state.Touching
		state.Touching = touching
		if !touching {
			return
		}

		if !state.Passable {
			if began {
				ShowToast(w, wallMessage(dest, blocking))
			}
			return
		}

		if pushing(input, door.Direction) {
			if s.streamer.RequestMove(door.Direction.Vector(), dest, door.Distance) {
				slog.Debug("door used", "to", dest.ID, "direction", door.Direction.String())
			}
		}
	})
}

func (s *DoorSystem) destination(w *ecs.World, e ecs.Entity, door *component.Door) *rooms.Descriptor {
	member, ok := ecs.Get(w, e, component.RoomMemberComponent.Kind())
	if !ok {
		return nil
	}
	room, ok := s.streamer.Registry().ByID(member.RoomID)
	if !ok {
		return nil
	}
	return room.Neighbor(door.Direction)
}

func wallMessage(dest *rooms.Descriptor, blocking bool) string {
	if dest != nil && blocking {
		return gotext.Get("You cannot flee!")
	}
	return gotext.Get("The path is blocked.")
}

func pushing(input *component.Input, dir rooms.Direction) bool {
	if input == nil || input.Disabled {
		return false
	}
	switch dir {
	case rooms.North:
		return input.MoveY > pushThreshold
	case rooms.South:
		return input.MoveY < -pushThreshold
	case rooms.East:
		return input.MoveX > pushThreshold
	case rooms.West:
		return input.MoveX < -pushThreshold
	default:
		return false
	}
}
