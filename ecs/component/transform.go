package component

import "github.com/jakecoffman/cp"

// Transform is a world-space position in grid units, +Y up.
type Transform struct {
	X float64
	Y float64
}

func (t *Transform) Vector() cp.Vector {
	return cp.Vector{X: t.X, Y: t.Y}
}

func (t *Transform) SetVector(v cp.Vector) {
	t.X = v.X
	t.Y = v.Y
}

var TransformComponent = NewComponent[Transform]()
