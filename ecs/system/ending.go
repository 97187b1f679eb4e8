package system

import (
	"log/slog"

	"github.com/milk9111/roomstream/ecs"
	"github.com/milk9111/roomstream/ecs/component"
)

// EndingSystem holds the ending message on screen and then asks for a reset
// to the first room.
type EndingSystem struct{}

func NewEndingSystem() *EndingSystem { return &EndingSystem{} }

func (s *EndingSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.EndingRuntimeComponent.Kind(), func(e ecs.Entity, rt *component.EndingRuntime) {
		rt.Remaining -= Tick
		if rt.Remaining > 0 {
			return
		}
		ecs.DestroyEntity(w, e)
		RequestReset(w)
		slog.Info("ending finished, resetting world")
	})
}
