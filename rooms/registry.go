package rooms

import (
	stderrors "errors"
	"fmt"
	"sort"

	"github.com/pixil98/go-errors"
)

var (
	ErrUnknownRoom      = stderrors.New("unknown room")
	ErrTemplateNotFound = stderrors.New("room template not found")
)

// RoomSpec is the authored form of a Descriptor. Neighbors are referenced by
// room id and resolved when the Registry is built.
type RoomSpec struct {
	ID       string
	X        int
	Y        int
	Template string
	North    string
	South    string
	East     string
	West     string
}

func (s RoomSpec) neighbor(dir Direction) string {
	switch dir {
	case North:
		return s.North
	case East:
		return s.East
	case South:
		return s.South
	case West:
		return s.West
	default:
		return ""
	}
}

// Registry is the read-only catalog of every room in the world.
type Registry struct {
	byID    map[string]*Descriptor
	byCoord map[Coord]*Descriptor
	order   []*Descriptor
}

// NewRegistry validates specs and links neighbors. All problems are reported
// together.
func NewRegistry(specs []RoomSpec) (*Registry, error) {
	el := errors.NewErrorList()

	r := &Registry{
		byID:    make(map[string]*Descriptor, len(specs)),
		byCoord: make(map[Coord]*Descriptor, len(specs)),
	}

	if len(specs) == 0 {
		el.Add(fmt.Errorf("world has no rooms"))
	}

	for i, s := range specs {
		if s.ID == "" {
			el.Add(fmt.Errorf("room %d: id is required", i))
			continue
		}
		if s.Template == "" {
			el.Add(fmt.Errorf("room %q: template is required", s.ID))
		}
		if _, dup := r.byID[s.ID]; dup {
			el.Add(fmt.Errorf("room %q: duplicate id", s.ID))
			continue
		}
		c := Coord{X: s.X, Y: s.Y}
		if other, dup := r.byCoord[c]; dup {
			el.Add(fmt.Errorf("room %q: coordinate %s already used by %q", s.ID, c, other.ID))
			continue
		}
		d := &Descriptor{ID: s.ID, Coord: c, Template: s.Template}
		r.byID[s.ID] = d
		r.byCoord[c] = d
		r.order = append(r.order, d)
	}

	for _, s := range specs {
		d, ok := r.byID[s.ID]
		if !ok {
			continue
		}
		for _, dir := range AllDirections() {
			ref := s.neighbor(dir)
			if ref == "" {
				continue
			}
			n, ok := r.byID[ref]
			if !ok {
				el.Add(fmt.Errorf("room %q: %s neighbor %q: %w", s.ID, dir, ref, ErrUnknownRoom))
				continue
			}
			switch dir {
			case North:
				d.North = n
			case East:
				d.East = n
			case South:
				d.South = n
			case West:
				d.West = n
			}
		}
	}

	if err := el.Err(); err != nil {
		return nil, err
	}
	return r, nil
}

// ByID returns the descriptor for id.
func (r *Registry) ByID(id string) (*Descriptor, bool) {
	if r == nil {
		return nil, false
	}
	d, ok := r.byID[id]
	return d, ok
}

// ByCoord returns the descriptor at c. A miss means there is no room there.
func (r *Registry) ByCoord(c Coord) (*Descriptor, bool) {
	if r == nil {
		return nil, false
	}
	d, ok := r.byCoord[c]
	return d, ok
}

// Start returns the first authored room.
func (r *Registry) Start() *Descriptor {
	if r == nil || len(r.order) == 0 {
		return nil
	}
	return r.order[0]
}

// All returns every descriptor sorted by id.
func (r *Registry) All() []*Descriptor {
	if r == nil {
		return nil
	}
	out := append([]*Descriptor(nil), r.order...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}
