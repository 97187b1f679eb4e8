package component

import "github.com/milk9111/roomstream/rooms"

// Door is an exit on one side of a room. Distance, when positive, replaces
// the grid spacing for the camera move.
type Door struct {
	Direction rooms.Direction
	Distance  float64
	Width     float64
	Height    float64
}

var DoorComponent = NewComponent[Door]()

// DoorState is recomputed every tick by the door system.
type DoorState struct {
	Passable bool
	// Touching is true while the player overlaps the door. Wall messages are
	// only raised on the tick contact begins.
	Touching bool
}

var DoorStateComponent = NewComponent[DoorState]()
