package main

import (
	"strings"
	"testing"

	"github.com/milk9111/roomstream/levels"
	"github.com/milk9111/roomstream/prefabs"
	"github.com/milk9111/roomstream/rooms"
	"github.com/pixil98/go-testutil"
)

func mustRegistry(t *testing.T, specs []rooms.RoomSpec) *rooms.Registry {
	t.Helper()
	reg, err := rooms.NewRegistry(specs)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	return reg
}

func TestRenderMap(t *testing.T) {
	tests := map[string]struct {
		specs []rooms.RoomSpec
		exp   string
	}{
		"horizontal link": {
			specs: []rooms.RoomSpec{
				{ID: "A", Template: "a.yaml", East: "B"},
				{ID: "B", X: 1, Template: "b.yaml", West: "A"},
			},
			exp: "   [*A]   --   [B]\n",
		},
		"vertical link": {
			specs: []rooms.RoomSpec{
				{ID: "A", Template: "a.yaml", North: "C"},
				{ID: "C", Y: 1, Template: "c.yaml", South: "A"},
			},
			exp: "   [C]\n    |\n   [*A]\n",
		},
		"gap in grid": {
			specs: []rooms.RoomSpec{
				{ID: "A", Template: "a.yaml"},
				{ID: "B", X: 2, Template: "b.yaml"},
			},
			exp: "   [*A]                    [B]\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "map", renderMap(mustRegistry(t, tt.specs)), tt.exp)
		})
	}
}

func TestCheckRoomsEmbeddedWorld(t *testing.T) {
	world, err := levels.LoadWorld("world.json")
	if err != nil {
		t.Fatalf("load world: %v", err)
	}
	reg, err := world.Registry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	if err := checkRooms(reg, prefabs.NewTemplates(), nil); err != nil {
		t.Fatalf("unexpected problems: %v", err)
	}
}

func TestCheckRoomsReportsMissingTemplate(t *testing.T) {
	reg := mustRegistry(t, []rooms.RoomSpec{
		{ID: "start", Template: "rooms/start.yaml", East: "ghost"},
		{ID: "ghost", X: 1, Template: "rooms/ghost.yaml", West: "start"},
	})

	err := checkRooms(reg, prefabs.NewTemplates(), nil)
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !strings.Contains(err.Error(), `room "ghost"`) {
		t.Fatalf("error %q does not name the broken room", err)
	}
}
