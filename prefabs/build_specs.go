package prefabs

import (
	"time"

	"gopkg.in/yaml.v3"
)

// EntityBuildSpec is one entity: a name plus a map of component name to
// component spec, decoded lazily by the entity builder.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

// DecodeComponentSpec re-decodes a generic YAML value into T.
func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ColliderComponentSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PlayerComponentSpec struct {
	MoveSpeed float64 `yaml:"move_speed"`
}

type CameraComponentSpec struct {
	Zoom float64 `yaml:"zoom"`
}

type DoorComponentSpec struct {
	Direction string  `yaml:"direction"`
	Distance  float64 `yaml:"distance"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
}

type PickupComponentSpec struct {
	Kind   string  `yaml:"kind"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type HazardComponentSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type EndingComponentSpec struct {
	Message   string        `yaml:"message"`
	Condition string        `yaml:"condition"`
	Script    string        `yaml:"script"`
	Duration  time.Duration `yaml:"duration"`
}

type EncounterComponentSpec struct {
	Name     string        `yaml:"name"`
	Duration time.Duration `yaml:"duration"`
}

type PersistentComponentSpec struct {
	ID           string `yaml:"id"`
	KeepOnReload bool   `yaml:"keep_on_reload"`
}
