package rooms

import "github.com/jakecoffman/cp"

// Direction is one of the four cardinal directions. North is +Y in world
// space.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns the cardinal directions in neighbor order.
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Vector returns the unit vector for d.
func (d Direction) Vector() cp.Vector {
	switch d {
	case North:
		return cp.Vector{X: 0, Y: 1}
	case East:
		return cp.Vector{X: 1, Y: 0}
	case South:
		return cp.Vector{X: 0, Y: -1}
	case West:
		return cp.Vector{X: -1, Y: 0}
	default:
		return cp.Vector{}
	}
}

// Horizontal reports whether d moves along the X axis.
func (d Direction) Horizontal() bool {
	return d == East || d == West
}

// DirectionOf maps a cardinal unit vector back to its Direction. Anything
// else (zero, diagonal, non-unit) is rejected.
func DirectionOf(v cp.Vector) (Direction, bool) {
	for _, d := range AllDirections() {
		if d.Vector() == v {
			return d, true
		}
	}
	return 0, false
}

// ParseDirection accepts the authored spellings used by room templates.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "north", "up", "n":
		return North, true
	case "east", "right", "e":
		return East, true
	case "south", "down", "s":
		return South, true
	case "west", "left", "w":
		return West, true
	default:
		return 0, false
	}
}
