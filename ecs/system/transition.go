package system

import (
	"time"

	"github.com/milk9111/roomstream/ecs"
	"github.com/milk9111/roomstream/rooms"
)

// Tick is the fixed simulation step. The game runs at ebiten's default 60
// ticks per second.
const Tick = time.Second / 60

// TransitionSystem advances the streamer's room transition once per tick.
type TransitionSystem struct {
	streamer *rooms.WorldStreamer
}

func NewTransitionSystem(streamer *rooms.WorldStreamer) *TransitionSystem {
	return &TransitionSystem{streamer: streamer}
}

func (ts *TransitionSystem) Update(_ *ecs.World) {
	if ts.streamer == nil {
		return
	}
	ts.streamer.Advance(Tick)
}
