package entity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/roomstream/ecs"
	"github.com/milk9111/roomstream/ecs/component"
	"github.com/milk9111/roomstream/prefabs"
	"github.com/milk9111/roomstream/rooms"
)

type buildContext struct {
	PrefabPath string
	// Origin offsets authored transforms, so room content is placed
	// relative to the room anchor.
	Origin cp.Vector
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag": addPlayerTag,
	"camera_tag": addCameraTag,
	"player":     addPlayer,
	"input":      addInput,
	"transform":  addTransform,
	"velocity":   addVelocity,
	"collider":   addCollider,
	"camera":     addCamera,
	"door":       addDoor,
	"pickup":     addPickup,
	"hazard":     addHazard,
	"ending":     addEnding,
	"encounter":  addEncounter,
	"persistent": addPersistent,
}

var componentBuildOrder = []string{
	"player_tag",
	"camera_tag",
	"player",
	"input",
	"transform",
	"velocity",
	"collider",
	"camera",
	"door",
	"pickup",
	"hazard",
	"ending",
	"encounter",
	"persistent",
}

// BuildEntity creates an entity from a prefab file.
func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return BuildEntityFromSpec(w, spec, &buildContext{PrefabPath: prefabPath})
}

// BuildEntityFromSpec creates an entity from an already decoded spec. On
// error nothing is left in the world.
func BuildEntityFromSpec(w *ecs.World, spec prefabs.EntityBuildSpec, ctx *buildContext) (ecs.Entity, error) {
	if ctx == nil {
		ctx = &buildContext{}
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: %q: %q does not define components", ctx.PrefabPath, spec.Name)
	}

	names := make([]string, 0, len(spec.Components))
	for _, name := range componentBuildOrder {
		if _, ok := spec.Components[name]; ok {
			names = append(names, name)
		}
	}
	var unknown []string
	for name := range spec.Components {
		if _, ok := componentRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", ctx.PrefabPath, unknown[0])
	}

	e := ecs.CreateEntity(w)
	for _, name := range names {
		if err := componentRegistry[name](w, e, spec.Components[name], ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", ctx.PrefabPath, name, err)
		}
	}

	return e, nil
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PlayerComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	if spec.MoveSpeed <= 0 {
		return fmt.Errorf("player move_speed must be positive")
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{MoveSpeed: spec.MoveSpeed})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

func addTransform(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TransformComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X: ctx.Origin.X + spec.X,
		Y: ctx.Origin.Y + spec.Y,
	})
}

func addVelocity(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{})
}

func addCollider(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.ColliderComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collider spec: %w", err)
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("collider size must be positive, got %gx%g", spec.Width, spec.Height)
	}
	return ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Width: spec.Width, Height: spec.Height})
}

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CameraComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	if spec.Zoom <= 0 {
		spec.Zoom = 1
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{Zoom: spec.Zoom})
}

func addDoor(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.DoorComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode door spec: %w", err)
	}
	dir, ok := rooms.ParseDirection(strings.ToLower(spec.Direction))
	if !ok {
		return fmt.Errorf("unknown door direction %q", spec.Direction)
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("door size must be positive, got %gx%g", spec.Width, spec.Height)
	}
	if err := ecs.Add(w, e, component.DoorComponent.Kind(), &component.Door{
		Direction: dir,
		Distance:  spec.Distance,
		Width:     spec.Width,
		Height:    spec.Height,
	}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.DoorStateComponent.Kind(), &component.DoorState{})
}

func addPickup(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PickupComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode pickup spec: %w", err)
	}
	if spec.Width <= 0 {
		spec.Width = 1
	}
	if spec.Height <= 0 {
		spec.Height = 1
	}
	return ecs.Add(w, e, component.PickupComponent.Kind(), &component.Pickup{
		Kind:   spec.Kind,
		Width:  spec.Width,
		Height: spec.Height,
	})
}

func addHazard(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.HazardComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode hazard spec: %w", err)
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("hazard size must be positive, got %gx%g", spec.Width, spec.Height)
	}
	return ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{Width: spec.Width, Height: spec.Height})
}

func addEnding(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.EndingComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode ending spec: %w", err)
	}
	if spec.Duration <= 0 {
		spec.Duration = defaultEndingDuration
	}
	return ecs.Add(w, e, component.EndingComponent.Kind(), &component.Ending{
		Message:   spec.Message,
		Condition: spec.Condition,
		Script:    spec.Script,
		Duration:  spec.Duration,
	})
}

func addEncounter(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.EncounterComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode encounter spec: %w", err)
	}
	if spec.Duration <= 0 {
		return fmt.Errorf("encounter duration must be positive")
	}
	return ecs.Add(w, e, component.EncounterComponent.Kind(), &component.Encounter{
		Name:      spec.Name,
		Duration:  spec.Duration,
		Remaining: spec.Duration,
	})
}

func addPersistent(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PersistentComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode persistent spec: %w", err)
	}
	return ecs.Add(w, e, component.PersistentComponent.Kind(), &component.Persistent{
		ID:           spec.ID,
		KeepOnReload: spec.KeepOnReload,
	})
}
