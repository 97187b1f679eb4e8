package rooms

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/pixil98/go-testutil"
)

func TestKeepSet(t *testing.T) {
	reg, err := NewRegistry(testSpecs())
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	tests := map[string][]string{
		"A": {"A", "B"},
		"B": {"A", "B", "C", "D"},
		"D": {"B", "D"},
		"F": {"F"},
	}
	for id, exp := range tests {
		t.Run(id, func(t *testing.T) {
			d, _ := reg.ByID(id)
			keep := KeepSet(d)
			testutil.AssertEqual(t, "size", keep.Size(), len(exp))
			for _, e := range exp {
				if !keep.Has(e) {
					t.Fatalf("keep set for %s missing %s", id, e)
				}
			}
		})
	}

	testutil.AssertEqual(t, "nil", KeepSet(nil).Size(), 0)
}

func TestReconcile(t *testing.T) {
	c, sp, reg := newTestCache(t)
	grid := DefaultSettings().Grid()
	b, _ := reg.ByID("B")
	f, _ := reg.ByID("F")

	// A stale room that must be evicted.
	c.Spawn(f, grid.Anchor(f.Coord))

	spawned, destroyed := Reconcile(c, grid, b)
	testutil.AssertEqual(t, "spawned", spawned, 4)
	testutil.AssertEqual(t, "destroyed", destroyed, 1)
	if !sameIDs(c.Loaded(), []string{"A", "B", "C", "D"}) {
		t.Fatalf("unexpected loaded set %v", c.Loaded())
	}

	inst, _ := c.Instance("C")
	testutil.AssertEqual(t, "C anchor", inst.Anchor, cp.Vector{X: 64, Y: 0})

	spawns := len(sp.spawns)
	spawned, destroyed = Reconcile(c, grid, b)
	testutil.AssertEqual(t, "idempotent spawned", spawned, 0)
	testutil.AssertEqual(t, "idempotent destroyed", destroyed, 0)
	testutil.AssertEqual(t, "no new spawner calls", len(sp.spawns), spawns)
}
