package prefabs

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// RoomTemplate is the authored content of one room. Entity transforms are
// relative to the room's anchor.
type RoomTemplate struct {
	Name     string            `yaml:"name"`
	Entities []EntityBuildSpec `yaml:"entities"`
}

func LoadRoomTemplate(filename string) (*RoomTemplate, error) {
	spec, err := LoadSpec[RoomTemplate](filename)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return &spec, nil
}

// Validate checks the parts of a template that do not need the entity
// builder: names and that each entity has components.
func (t *RoomTemplate) Validate() error {
	el := errors.NewErrorList()

	if t.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	for i, e := range t.Entities {
		if len(e.Components) == 0 {
			el.Add(fmt.Errorf("entity %d (%q): no components", i, e.Name))
		}
	}

	return el.Err()
}
