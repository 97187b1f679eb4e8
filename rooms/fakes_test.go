package rooms

import (
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
)

type fakeContent struct {
	room      string
	anchor    cp.Vector
	dirty     bool
	destroyed bool
	ending    *fakeEnding
}

func (c *fakeContent) Destroy() { c.destroyed = true }

func (c *fakeContent) Ending() EndingTrigger {
	if c.ending == nil {
		return nil
	}
	return c.ending
}

type fakeEnding struct{ plays int }

func (e *fakeEnding) Play() { e.plays++ }

type fakeSpawner struct {
	spawns   []string
	live     map[string]*fakeContent
	fail     map[string]bool
	endings  map[string]*fakeEnding
	contents []*fakeContent
}

func newFakeSpawner() *fakeSpawner {
	return &fakeSpawner{
		live:    map[string]*fakeContent{},
		fail:    map[string]bool{},
		endings: map[string]*fakeEnding{},
	}
}

func (f *fakeSpawner) SpawnRoom(room *Descriptor, anchor cp.Vector) (Content, error) {
	if f.fail[room.ID] {
		return nil, fmt.Errorf("room %q: %w", room.ID, ErrTemplateNotFound)
	}
	f.spawns = append(f.spawns, room.ID)
	c := &fakeContent{room: room.ID, anchor: anchor, ending: f.endings[room.ID]}
	f.live[room.ID] = c
	f.contents = append(f.contents, c)
	return c, nil
}

// liveCount counts spawned contents that have not been destroyed for id.
func (f *fakeSpawner) liveCount(id string) int {
	n := 0
	for _, c := range f.contents {
		if c.room == id && !c.destroyed {
			n++
		}
	}
	return n
}

type fakeAgent struct {
	pos          cp.Vector
	vel          cp.Vector
	inputEnabled bool
	toggles      []bool
}

func (a *fakeAgent) Position() cp.Vector     { return a.pos }
func (a *fakeAgent) SetPosition(p cp.Vector) { a.pos = p }
func (a *fakeAgent) ZeroVelocity()           { a.vel = cp.Vector{} }
func (a *fakeAgent) SetInputEnabled(enabled bool) {
	a.inputEnabled = enabled
	a.toggles = append(a.toggles, enabled)
}

type fakeViewport struct{ pos cp.Vector }

func (v *fakeViewport) Position() cp.Vector     { return v.pos }
func (v *fakeViewport) SetPosition(p cp.Vector) { v.pos = p }

type fakeGate struct{ blocking bool }

func (g *fakeGate) IsBlocking() bool { return g.blocking }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testWorld is:
//
//	      D(1,1)
//	        |
//	A(0,0)-B(1,0)-C(2,0)
//
// plus an isolated room F(5,5).
func testSpecs() []RoomSpec {
	return []RoomSpec{
		{ID: "A", X: 0, Y: 0, Template: "a.yaml", East: "B"},
		{ID: "B", X: 1, Y: 0, Template: "b.yaml", West: "A", East: "C", North: "D"},
		{ID: "C", X: 2, Y: 0, Template: "c.yaml", West: "B"},
		{ID: "D", X: 1, Y: 1, Template: "d.yaml", South: "B"},
		{ID: "F", X: 5, Y: 5, Template: "f.yaml"},
	}
}

type harness struct {
	streamer *WorldStreamer
	spawner  *fakeSpawner
	agent    *fakeAgent
	viewport *fakeViewport
	gate     *fakeGate
	session  *Session
}

func newHarness(t *testing.T, opts ...func(*Settings)) *harness {
	t.Helper()
	reg, err := NewRegistry(testSpecs())
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	settings := DefaultSettings()
	for _, o := range opts {
		o(&settings)
	}
	h := &harness{
		spawner:  newFakeSpawner(),
		agent:    &fakeAgent{inputEnabled: true},
		viewport: &fakeViewport{},
		gate:     &fakeGate{},
		session:  NewSession(),
	}
	h.streamer = NewWorldStreamer(reg, settings, h.spawner, h.agent, h.viewport,
		WithLogger(discardLogger()),
		WithActivityGate(h.gate),
		WithSession(h.session),
	)
	return h
}

func (h *harness) room(t *testing.T, id string) *Descriptor {
	t.Helper()
	d, ok := h.streamer.Registry().ByID(id)
	if !ok {
		t.Fatalf("room %q not in registry", id)
	}
	return d
}

const tick = time.Second / 60

// settle advances until the controller is idle again.
func (h *harness) settle(t *testing.T) {
	t.Helper()
	for i := 0; i < 10_000; i++ {
		if h.streamer.Advance(tick) {
			return
		}
	}
	t.Fatalf("controller never settled, state=%s", h.streamer.State())
}

// boot performs a first-boot restore and waits out spawn protection.
func (h *harness) boot(t *testing.T) {
	t.Helper()
	h.streamer.RestoreOrInit()
	h.settle(t)
}

func (h *harness) move(t *testing.T, dir Direction, to string) {
	t.Helper()
	if !h.streamer.RequestMove(dir.Vector(), h.room(t, to), 0) {
		t.Fatalf("move %s into %s rejected in state %s", dir, to, h.streamer.State())
	}
	h.settle(t)
}

func sameIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
