package rooms

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/pixil98/go-testutil"
)

func TestGridCoordOf(t *testing.T) {
	g := Grid{Width: 32, Height: 18}

	tests := []struct {
		name string
		pos  cp.Vector
		exp  Coord
	}{
		{"origin", cp.Vector{}, Coord{0, 0}},
		{"inside east", cp.Vector{X: 19.5, Y: -2}, Coord{1, 0}},
		{"just west of edge", cp.Vector{X: 15.9, Y: 0}, Coord{0, 0}},
		{"negative", cp.Vector{X: -40, Y: -20}, Coord{-1, -1}},
		{"halfway rounds to even low", cp.Vector{X: 16, Y: 9}, Coord{0, 0}},
		{"halfway rounds to even high", cp.Vector{X: 48, Y: 27}, Coord{2, 2}},
		{"unmapped cell", cp.Vector{X: 64, Y: -18}, Coord{2, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, "coord", g.CoordOf(tt.pos), tt.exp)
		})
	}
}

func TestGridAnchorRoundTrip(t *testing.T) {
	g := Grid{Width: 32, Height: 18}
	for x := -4; x <= 4; x++ {
		for y := -4; y <= 4; y++ {
			c := Coord{X: x, Y: y}
			if got := g.CoordOf(g.Anchor(c)); got != c {
				t.Fatalf("round trip %s: got %s", c, got)
			}
		}
	}
}

func TestGridSnap(t *testing.T) {
	g := Grid{Width: 32, Height: 18}
	got := g.Snap(cp.Vector{X: 19.5, Y: 7})
	testutil.AssertEqual(t, "snap", got, cp.Vector{X: 32, Y: 0})
	testutil.AssertEqual(t, "spacing east", g.Spacing(East), 32.0)
	testutil.AssertEqual(t, "spacing north", g.Spacing(North), 18.0)
}

func TestDirectionOf(t *testing.T) {
	for _, d := range AllDirections() {
		got, ok := DirectionOf(d.Vector())
		if !ok || got != d {
			t.Fatalf("DirectionOf(%s) = %s ok=%v", d, got, ok)
		}
		if d.Opposite().Opposite() != d {
			t.Fatalf("opposite of opposite of %s", d)
		}
	}

	for _, v := range []cp.Vector{{}, {X: 1, Y: 1}, {X: 2, Y: 0}, {X: 0.5, Y: 0}} {
		if _, ok := DirectionOf(v); ok {
			t.Fatalf("expected %v to be rejected", v)
		}
	}
}
