package rooms

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

// Coord is an integer grid coordinate. Room (x, y) is anchored at
// (x*GridWidth, y*GridHeight) in world space.
type Coord struct {
	X int
	Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Grid converts between world positions and room coordinates.
type Grid struct {
	Width  float64
	Height float64
}

// Anchor returns the world-space center of the cell at c.
func (g Grid) Anchor(c Coord) cp.Vector {
	return cp.Vector{X: float64(c.X) * g.Width, Y: float64(c.Y) * g.Height}
}

// CoordOf returns the cell containing p. Halfway points round to even so a
// position exactly on a shared edge resolves the same way every time.
func (g Grid) CoordOf(p cp.Vector) Coord {
	return Coord{
		X: int(math.RoundToEven(p.X / g.Width)),
		Y: int(math.RoundToEven(p.Y / g.Height)),
	}
}

// Snap returns the anchor of the cell containing p.
func (g Grid) Snap(p cp.Vector) cp.Vector {
	return g.Anchor(g.CoordOf(p))
}

// Spacing returns the travel distance for one step in d.
func (g Grid) Spacing(d Direction) float64 {
	if d.Horizontal() {
		return g.Width
	}
	return g.Height
}
