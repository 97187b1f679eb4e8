package rooms

import "github.com/jakecoffman/cp"

// ActivityGate reports whether something (a boss encounter) currently forbids
// leaving the room.
type ActivityGate interface {
	IsBlocking() bool
}

// ActivityGateFunc adapts a function to ActivityGate.
type ActivityGateFunc func() bool

func (f ActivityGateFunc) IsBlocking() bool { return f() }

// Agent is the controlled player as seen by the streamer.
type Agent interface {
	Position() cp.Vector
	SetPosition(p cp.Vector)
	ZeroVelocity()
	SetInputEnabled(enabled bool)
}

// Viewport is the camera. Its position is the world point at the center of
// the screen.
type Viewport interface {
	Position() cp.Vector
	SetPosition(p cp.Vector)
}

// Spawner instantiates a room template at a world anchor.
type Spawner interface {
	SpawnRoom(room *Descriptor, anchor cp.Vector) (Content, error)
}

// Content is the live, mutable content of one spawned room.
type Content interface {
	Destroy()
	// Ending returns the room's ending trigger, or nil.
	Ending() EndingTrigger
}

// EndingTrigger is an optional terminal event inside a room.
type EndingTrigger interface {
	Play()
}
