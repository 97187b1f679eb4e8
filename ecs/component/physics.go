package component

import "github.com/jakecoffman/cp"

type Velocity struct {
	X float64
	Y float64
}

var VelocityComponent = NewComponent[Velocity]()

// Collider is an axis-aligned box centered on the entity's Transform.
type Collider struct {
	Width  float64
	Height float64
}

// Bounds returns the collider's box in world space.
func (c *Collider) Bounds(t *Transform) cp.BB {
	return cp.NewBBForExtents(t.Vector(), c.Width/2, c.Height/2)
}

var ColliderComponent = NewComponent[Collider]()
