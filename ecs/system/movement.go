package system

import (
	"math"

	"github.com/milk9111/roomstream/ecs"
	"github.com/milk9111/roomstream/ecs/component"
	"github.com/milk9111/roomstream/rooms"
)

// MovementSystem moves the player by its input and keeps it inside the
// playable area of the room the camera is centered on.
type MovementSystem struct {
	settings rooms.Settings
}

func NewMovementSystem(settings rooms.Settings) *MovementSystem {
	return &MovementSystem{settings: settings}
}

func (m *MovementSystem) Update(w *ecs.World) {
	camera, ok := ecs.First(w, component.CameraTagComponent.Kind())
	if !ok {
		return
	}
	view, ok := ecs.Get(w, camera, component.TransformComponent.Kind())
	if !ok {
		return
	}
	dt := Tick.Seconds()

	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Player, input *component.Input, t *component.Transform) {
		vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
		if !ok {
			vel = &component.Velocity{}
			_ = ecs.Add(w, e, component.VelocityComponent.Kind(), vel)
		}
		if input.Disabled {
			vel.X, vel.Y = 0, 0
			return
		}

		vel.X = input.MoveX * p.MoveSpeed
		vel.Y = input.MoveY * p.MoveSpeed

		halfW, halfH := 0.0, 0.0
		if c, ok := ecs.Get(w, e, component.ColliderComponent.Kind()); ok {
			halfW, halfH = c.Width/2, c.Height/2
		}
		minX := view.X - m.settings.PlayableWidth/2 + halfW
		maxX := view.X + m.settings.PlayableWidth/2 - halfW
		minY := view.Y - m.settings.PlayableHeight/2 + halfH
		maxY := view.Y + m.settings.PlayableHeight/2 - halfH

		t.X = clamp(t.X+vel.X*dt, minX, maxX)
		t.Y = clamp(t.Y+vel.Y*dt, minY, maxY)
	})
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
