package system

import (
	"fmt"
	"log/slog"

	"github.com/milk9111/roomstream/ecs"
	"github.com/milk9111/roomstream/ecs/component"
	"github.com/milk9111/roomstream/ecs/entity"
	"github.com/milk9111/roomstream/rooms"
)

type PersistenceMode int

const (
	// PersistenceOnReload keeps entities marked KeepOnReload.
	PersistenceOnReload PersistenceMode = iota
	// PersistenceOnReset keeps nothing and forgets the session.
	PersistenceOnReset
)

// PersistenceSystem owns scene (re)loads. The first Update loads the scene,
// later ones react to ReloadRequest and ResetToInitialLevelRequest markers.
type PersistenceSystem struct {
	streamer     *rooms.WorldStreamer
	pickupTotal  int
	initialized  bool
	loadSequence uint64
	err          error
}

func NewPersistenceSystem(streamer *rooms.WorldStreamer, pickupTotal int) *PersistenceSystem {
	return &PersistenceSystem{streamer: streamer, pickupTotal: pickupTotal}
}

// Err returns the error of the last failed load. A failed system stops
// doing anything.
func (p *PersistenceSystem) Err() error {
	return p.err
}

// RequestReload asks for the scene to be torn down and restored. Death
// reloads resume at the restart point armed by the hazard system.
func RequestReload(w *ecs.World, death bool) {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.ReloadRequestComponent.Kind(), &component.ReloadRequest{Death: death})
}

// RequestReset asks for a reload from the start room with an empty session.
func RequestReset(w *ecs.World) {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.ResetToInitialLevelRequestComponent.Kind(), &component.ResetToInitialLevelRequest{})
}

func (p *PersistenceSystem) Update(w *ecs.World) {
	if p == nil || w == nil || p.err != nil {
		return
	}

	if !p.initialized {
		p.initialized = true
		p.fail(p.reloadWorld(w, PersistenceOnReload), "initial load")
		return
	}

	if _, ok := ecs.First(w, component.ResetToInitialLevelRequestComponent.Kind()); ok {
		ecs.ForEach(w, component.ResetToInitialLevelRequestComponent.Kind(), func(e ecs.Entity, _ *component.ResetToInitialLevelRequest) {
			ecs.DestroyEntity(w, e)
		})
		p.streamer.Session().Clear()
		p.fail(p.reloadWorld(w, PersistenceOnReset), "reset to start")
		return
	}

	if _, ok := ecs.First(w, component.ReloadRequestComponent.Kind()); ok {
		death := false
		ecs.ForEach(w, component.ReloadRequestComponent.Kind(), func(e ecs.Entity, req *component.ReloadRequest) {
			death = death || req.Death
			ecs.DestroyEntity(w, e)
		})
		if !death {
			p.streamer.SaveAgentPosition()
		}
		p.fail(p.reloadWorld(w, PersistenceOnReload), "reload")
	}
}

func (p *PersistenceSystem) fail(err error, what string) {
	if err == nil {
		return
	}
	p.err = fmt.Errorf("persistence: %s: %w", what, err)
	slog.Error("scene load failed", "stage", what, "error", err)
}

func (p *PersistenceSystem) snapshotPersistentSingletons(w *ecs.World, mode PersistenceMode) map[string]ecs.Entity {
	preferred := map[string]ecs.Entity{}
	ecs.ForEach(w, component.PersistentComponent.Kind(), func(e ecs.Entity, persistent *component.Persistent) {
		if persistent.ID == "" || !shouldKeep(persistent, mode) {
			return
		}
		if _, exists := preferred[persistent.ID]; !exists {
			preferred[persistent.ID] = e
		}
	})
	return preferred
}

func (p *PersistenceSystem) pruneForReload(w *ecs.World, mode PersistenceMode) {
	toDestroy := make([]ecs.Entity, 0)
	for _, e := range ecs.Entities(w) {
		persistent, ok := ecs.Get(w, e, component.PersistentComponent.Kind())
		if !ok || !shouldKeep(persistent, mode) {
			toDestroy = append(toDestroy, e)
		}
	}
	for _, e := range toDestroy {
		ecs.DestroyEntity(w, e)
	}
}

// resolvePersistentSingletons keeps one entity per persistent ID, preferring
// the one that survived the prune.
func (p *PersistenceSystem) resolvePersistentSingletons(w *ecs.World, preferred map[string]ecs.Entity) {
	seen := make(map[string]ecs.Entity)
	toDestroy := make([]ecs.Entity, 0)
	ecs.ForEach(w, component.PersistentComponent.Kind(), func(e ecs.Entity, persistent *component.Persistent) {
		if persistent.ID == "" {
			return
		}
		if keep, ok := preferred[persistent.ID]; ok {
			if e != keep {
				toDestroy = append(toDestroy, e)
			}
			return
		}
		if existing, ok := seen[persistent.ID]; ok && existing != e {
			toDestroy = append(toDestroy, e)
			return
		}
		seen[persistent.ID] = e
	})
	for _, e := range toDestroy {
		ecs.DestroyEntity(w, e)
	}
}

func (p *PersistenceSystem) reloadWorld(w *ecs.World, mode PersistenceMode) error {
	p.streamer.Unload()

	preferred := p.snapshotPersistentSingletons(w, mode)
	p.pruneForReload(w, mode)

	if _, err := entity.NewCamera(w); err != nil {
		return err
	}
	if _, err := entity.NewPlayer(w); err != nil {
		return err
	}
	if _, ok := ecs.First(w, component.TrophyCounterComponent.Kind()); !ok {
		if _, err := entity.NewTrophyCounter(w, p.pickupTotal); err != nil {
			return err
		}
	}
	p.resolvePersistentSingletons(w, preferred)

	p.streamer.RestoreOrInit()

	p.loadSequence++
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.LevelLoadedComponent.Kind(), &component.LevelLoaded{Sequence: p.loadSequence})

	room := ""
	if cur := p.streamer.Current(); cur != nil {
		room = cur.ID
	}
	slog.Info("scene loaded", "sequence", p.loadSequence, "room", room, "loaded", p.streamer.Loaded())
	return nil
}

func shouldKeep(persistent *component.Persistent, mode PersistenceMode) bool {
	if persistent == nil || mode == PersistenceOnReset {
		return false
	}
	return persistent.KeepOnReload
}
