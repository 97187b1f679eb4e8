package entity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/roomstream/ecs"
	"github.com/milk9111/roomstream/ecs/component"
	"github.com/milk9111/roomstream/prefabs"
)

const defaultEndingDuration = 5 * time.Second

type endingTrigger struct {
	world  *ecs.World
	entity ecs.Entity
	room   string
	logger *slog.Logger
}

// Play starts the ending if its condition holds: the player is frozen and
// the message is shown until the ending system requests a reset.
func (t *endingTrigger) Play() {
	ending, ok := ecs.Get(t.world, t.entity, component.EndingComponent.Kind())
	if !ok {
		return
	}
	if _, running := ecs.First(t.world, component.EndingRuntimeComponent.Kind()); running {
		return
	}

	ready, err := EvalEndingCondition(ending, endingVars(t.world))
	if err != nil {
		t.logger.Error("ending condition", "room", t.room, "error", err)
		return
	}
	if !ready {
		t.logger.Info("ending condition not met", "room", t.room)
		return
	}

	if player, ok := ecs.First(t.world, component.PlayerTagComponent.Kind()); ok {
		if input, ok := ecs.Get(t.world, player, component.InputComponent.Kind()); ok {
			input.Disabled = true
			input.MoveX, input.MoveY = 0, 0
		}
	}

	rt := ecs.CreateEntity(t.world)
	_ = ecs.Add(t.world, rt, component.EndingRuntimeComponent.Kind(), &component.EndingRuntime{
		Message:   ending.Message,
		Remaining: ending.Duration,
	})
	t.logger.Info("ending started", "room", t.room)
}

func endingVars(w *ecs.World) map[string]any {
	vars := map[string]any{"collected": 0, "total": 0}
	if e, ok := ecs.First(w, component.TrophyCounterComponent.Kind()); ok {
		if c, ok := ecs.Get(w, e, component.TrophyCounterComponent.Kind()); ok {
			vars["collected"] = c.Collected()
			vars["total"] = c.Total
		}
	}
	return vars
}

// EvalEndingCondition runs the ending's inline condition or script with
// vars in scope. An ending with neither always plays.
func EvalEndingCondition(ending *component.Ending, vars map[string]any) (bool, error) {
	switch {
	case ending.Script != "":
		return evalEndingScript(ending.Script, vars)
	case ending.Condition != "":
		res, err := tengo.Eval(context.Background(), ending.Condition, vars)
		if err != nil {
			return false, fmt.Errorf("eval %q: %w", ending.Condition, err)
		}
		ready, ok := res.(bool)
		if !ok {
			return false, fmt.Errorf("eval %q: result %v is not a bool", ending.Condition, res)
		}
		return ready, nil
	default:
		return true, nil
	}
}

func evalEndingScript(path string, vars map[string]any) (bool, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return false, fmt.Errorf("load script %q: %w", path, err)
	}

	script := tengo.NewScript(src)
	for name, v := range vars {
		if err := script.Add(name, v); err != nil {
			return false, fmt.Errorf("script %q: add %s: %w", path, name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Run()
	if err != nil {
		return false, fmt.Errorf("run script %q: %w", path, err)
	}
	if !compiled.IsDefined("ready") {
		return false, fmt.Errorf("script %q does not set ready", path)
	}
	return compiled.Get("ready").Bool(), nil
}
