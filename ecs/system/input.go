package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/roomstream/ecs"
	"github.com/milk9111/roomstream/ecs/component"
)

// InputSource reads the device state once per tick. Move returns axis
// values in [-1, 1], +Y up.
type InputSource interface {
	Move() cp.Vector
}

type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.source == nil {
		return
	}

	move := i.source.Move()
	move.X = clampAxis(move.X)
	move.Y = clampAxis(move.Y)

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		if input.Disabled {
			input.MoveX, input.MoveY = 0, 0
			return
		}
		input.MoveX = move.X
		input.MoveY = move.Y
	})
}

func clampAxis(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
