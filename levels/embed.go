package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"

	"github.com/milk9111/roomstream/rooms"
)

//go:embed *.json
var LevelsFS embed.FS

// World is the authored room map.
type World struct {
	Start string `json:"start"`
	Rooms []Room `json:"rooms"`
}

type Room struct {
	ID       string `json:"id"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Template string `json:"template"`
	North    string `json:"north,omitempty"`
	South    string `json:"south,omitempty"`
	East     string `json:"east,omitempty"`
	West     string `json:"west,omitempty"`
}

func LoadWorldFromFS(fsys fs.FS, name string) (*World, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read world: %w", err)
	}
	var w World
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("unmarshal world: %w", err)
	}
	return &w, nil
}

// LoadWorld reads an embedded world file.
func LoadWorld(name string) (*World, error) {
	return LoadWorldFromFS(LevelsFS, name)
}

// Specs converts the authored rooms for rooms.NewRegistry.
func (w *World) Specs() []rooms.RoomSpec {
	specs := make([]rooms.RoomSpec, 0, len(w.Rooms))
	for _, r := range w.Rooms {
		specs = append(specs, rooms.RoomSpec{
			ID:       r.ID,
			X:        r.X,
			Y:        r.Y,
			Template: r.Template,
			North:    r.North,
			South:    r.South,
			East:     r.East,
			West:     r.West,
		})
	}
	return specs
}

// Registry validates the world and builds the room registry.
func (w *World) Registry() (*rooms.Registry, error) {
	reg, err := rooms.NewRegistry(w.Specs())
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	if w.Start != "" {
		if _, ok := reg.ByID(w.Start); !ok {
			return nil, fmt.Errorf("world: start room %q: %w", w.Start, rooms.ErrUnknownRoom)
		}
	}
	return reg, nil
}
