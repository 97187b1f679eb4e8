package entity

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/roomstream/ecs"
	"github.com/milk9111/roomstream/ecs/component"
	"github.com/milk9111/roomstream/rooms"
	"github.com/pixil98/go-testutil"
)

func TestEvalEndingCondition(t *testing.T) {
	vars := map[string]any{"collected": 2, "total": 3}

	tests := map[string]struct {
		ending   component.Ending
		expReady bool
		expErr   string
	}{
		"always": {
			expReady: true,
		},
		"inline true": {
			ending:   component.Ending{Condition: "collected >= 2"},
			expReady: true,
		},
		"inline false": {
			ending: component.Ending{Condition: "collected >= total"},
		},
		"inline not bool": {
			ending: component.Ending{Condition: "collected + 1"},
			expErr: "is not a bool",
		},
		"inline syntax error": {
			ending: component.Ending{Condition: "collected >="},
			expErr: "eval",
		},
		"script": {
			ending: component.Ending{Script: "ending.tengo"},
		},
		"missing script": {
			ending: component.Ending{Script: "nope.tengo"},
			expErr: "load script",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ready, err := EvalEndingCondition(&tt.ending, vars)
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "ready", ready, tt.expReady)
		})
	}
}

func TestEndingPlay(t *testing.T) {
	tests := map[string]struct {
		collect    []string
		expRunning bool
	}{
		"not enough trophies": {
			collect: []string{"a/coin"},
		},
		"all trophies": {
			collect:    []string{"a/coin", "b/coin"},
			expRunning: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := ecs.NewWorld()
			player, err := NewPlayer(w)
			if err != nil {
				t.Fatal(err)
			}
			counterEnt, err := NewTrophyCounter(w, 2)
			if err != nil {
				t.Fatal(err)
			}
			counter, _ := ecs.Get(w, counterEnt, component.TrophyCounterComponent.Kind())
			for _, id := range tt.collect {
				counter.Collect(id)
			}

			content, err := newFactory(w).SpawnRoom(&rooms.Descriptor{ID: "vault", Template: "rooms/vault.yaml"}, cp.Vector{})
			if err != nil {
				t.Fatal(err)
			}
			ending := content.Ending()
			if ending == nil {
				t.Fatalf("vault should have an ending")
			}
			ending.Play()
			ending.Play()

			testutil.AssertEqual(t, "running", ecs.Count(w, component.EndingRuntimeComponent.Kind()) == 1, tt.expRunning)
			input, _ := ecs.Get(w, player, component.InputComponent.Kind())
			testutil.AssertEqual(t, "input disabled", input.Disabled, tt.expRunning)
		})
	}
}

func TestTrophyCounterCollect(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewTrophyCounter(w, 3)
	if err != nil {
		t.Fatal(err)
	}
	c, _ := ecs.Get(w, e, component.TrophyCounterComponent.Kind())

	testutil.AssertEqual(t, "first", c.Collect("a/coin"), true)
	testutil.AssertEqual(t, "again", c.Collect("a/coin"), false)
	testutil.AssertEqual(t, "collected", c.Collected(), 1)

	p, _ := ecs.Get(w, e, component.PersistentComponent.Kind())
	testutil.AssertEqual(t, "keep on reload", p.KeepOnReload, true)
}
