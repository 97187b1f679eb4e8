package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/roomstream/ecs"
	"github.com/milk9111/roomstream/ecs/component"
	"github.com/milk9111/roomstream/rooms"
)

var (
	_ rooms.Agent        = (*PlayerAgent)(nil)
	_ rooms.Viewport     = (*CameraViewport)(nil)
	_ rooms.ActivityGate = (*EncounterGate)(nil)
)

// PlayerAgent exposes the tagged player entity to the streamer. The entity
// is looked up on each call since reloads replace it.
type PlayerAgent struct {
	world *ecs.World
}

func NewPlayerAgent(w *ecs.World) *PlayerAgent {
	return &PlayerAgent{world: w}
}

func (a *PlayerAgent) transform() (*component.Transform, bool) {
	e, ok := ecs.First(a.world, component.PlayerTagComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(a.world, e, component.TransformComponent.Kind())
}

func (a *PlayerAgent) Position() cp.Vector {
	if t, ok := a.transform(); ok {
		return t.Vector()
	}
	return cp.Vector{}
}

func (a *PlayerAgent) SetPosition(p cp.Vector) {
	if t, ok := a.transform(); ok {
		t.SetVector(p)
	}
}

func (a *PlayerAgent) ZeroVelocity() {
	e, ok := ecs.First(a.world, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	if v, ok := ecs.Get(a.world, e, component.VelocityComponent.Kind()); ok {
		v.X, v.Y = 0, 0
	}
}

func (a *PlayerAgent) SetInputEnabled(enabled bool) {
	e, ok := ecs.First(a.world, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	input, ok := ecs.Get(a.world, e, component.InputComponent.Kind())
	if !ok {
		return
	}
	input.Disabled = !enabled
	if !enabled {
		input.MoveX, input.MoveY = 0, 0
	}
}

// CameraViewport exposes the camera entity's transform as the viewport.
type CameraViewport struct {
	world *ecs.World
}

func NewCameraViewport(w *ecs.World) *CameraViewport {
	return &CameraViewport{world: w}
}

func (v *CameraViewport) transform() (*component.Transform, bool) {
	e, ok := ecs.First(v.world, component.CameraTagComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(v.world, e, component.TransformComponent.Kind())
}

func (v *CameraViewport) Position() cp.Vector {
	if t, ok := v.transform(); ok {
		return t.Vector()
	}
	return cp.Vector{}
}

func (v *CameraViewport) SetPosition(p cp.Vector) {
	if t, ok := v.transform(); ok {
		t.SetVector(p)
	}
}

// EncounterGate blocks room exits while any encounter is active.
type EncounterGate struct {
	world *ecs.World
}

func NewEncounterGate(w *ecs.World) *EncounterGate {
	return &EncounterGate{world: w}
}

func (g *EncounterGate) IsBlocking() bool {
	blocking := false
	ecs.ForEach(g.world, component.EncounterComponent.Kind(), func(_ ecs.Entity, enc *component.Encounter) {
		if enc.Active {
			blocking = true
		}
	})
	return blocking
}
