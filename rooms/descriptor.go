package rooms

// Descriptor is the authored, immutable description of one room. Neighbor
// pointers are owned by the Registry; everything else holds them by
// reference only.
type Descriptor struct {
	ID       string
	Coord    Coord
	Template string

	North *Descriptor
	South *Descriptor
	East  *Descriptor
	West  *Descriptor
}

// Neighbor returns the room reached by leaving through d, or nil for a wall.
func (d *Descriptor) Neighbor(dir Direction) *Descriptor {
	if d == nil {
		return nil
	}
	switch dir {
	case North:
		return d.North
	case East:
		return d.East
	case South:
		return d.South
	case West:
		return d.West
	default:
		return nil
	}
}

// Neighbors returns the defined cardinal neighbors in North, East, South,
// West order.
func (d *Descriptor) Neighbors() []*Descriptor {
	if d == nil {
		return nil
	}
	out := make([]*Descriptor, 0, 4)
	for _, dir := range AllDirections() {
		if n := d.Neighbor(dir); n != nil {
			out = append(out, n)
		}
	}
	return out
}

func (d *Descriptor) String() string {
	if d == nil {
		return "<nil room>"
	}
	return d.ID
}
