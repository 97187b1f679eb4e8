package main

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/roomstream/ecs"
	"github.com/milk9111/roomstream/ecs/component"
	"github.com/milk9111/roomstream/ecs/entity"
	"github.com/milk9111/roomstream/ecs/system"
	"github.com/milk9111/roomstream/levels"
	"github.com/milk9111/roomstream/prefabs"
	"github.com/milk9111/roomstream/rooms"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type GameConfig struct {
	World    string
	Settings rooms.Settings
	Debug    bool
	Watch    bool
	Logger   *slog.Logger
}

type Game struct {
	world       *ecs.World
	streamer    *rooms.WorldStreamer
	scheduler   *ecs.Scheduler
	persistence *system.PersistenceSystem
	templates   *prefabs.Templates
	watcher     *prefabs.Watcher
	renderer    *renderer
	deathUI     *ebitenui.UI
	logger      *slog.Logger

	// reloadPending is set by the watcher goroutine and consumed by Update.
	reloadPending atomic.Bool
	debug         bool
	quit          bool
}

func NewGame(cfg GameConfig) (*Game, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	worldFile, err := levels.LoadWorld(cfg.World)
	if err != nil {
		return nil, fmt.Errorf("load world %q: %w", cfg.World, err)
	}
	reg, err := worldFile.Registry()
	if err != nil {
		return nil, err
	}
	if cfg.Settings.StartRoom == "" {
		cfg.Settings.StartRoom = worldFile.Start
	}

	w := ecs.NewWorld()
	templates := prefabs.NewTemplates()
	factory := entity.NewRoomFactory(w, templates, logger)
	streamer := rooms.NewWorldStreamer(reg, cfg.Settings, factory,
		system.NewPlayerAgent(w),
		system.NewCameraViewport(w),
		rooms.WithLogger(logger),
		rooms.WithActivityGate(system.NewEncounterGate(w)),
	)

	g := &Game{
		world:     w,
		streamer:  streamer,
		templates: templates,
		renderer:  newRenderer(cfg.Settings),
		logger:    logger,
		debug:     cfg.Debug,
	}
	g.persistence = system.NewPersistenceSystem(streamer, factory.CountPickups(reg))
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(newDeviceInput()),
		system.NewMovementSystem(cfg.Settings),
		system.NewDoorSystem(streamer),
		system.NewTransitionSystem(streamer),
		system.NewPickupCollectSystem(),
		system.NewHazardSystem(streamer),
		system.NewEncounterSystem(streamer),
		system.NewEndingSystem(),
		system.NewToastSystem(),
		g.persistence,
	)
	g.deathUI = newDeathUI(g)

	if cfg.Watch {
		if err := g.startWatcher(); err != nil {
			logger.Warn("prefab watcher disabled", "error", err)
		}
	}

	logger.Info("world loaded", "rooms", reg.Len(), "start", cfg.Settings.StartRoom)
	return g, nil
}

func (g *Game) startWatcher() error {
	watcher, err := prefabs.NewWatcher("prefabs", "prefabs/rooms", "prefabs/scripts")
	if err != nil {
		return err
	}
	g.watcher = watcher

	go func() {
		for {
			select {
			case name, ok := <-watcher.Events:
				if !ok {
					return
				}
				g.templates.Invalidate(name)
				g.reloadPending.Store(true)
				g.logger.Info("prefab changed", "name", name)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				g.logger.Warn("prefab watcher", "error", err)
			}
		}
	}()
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}

	if g.reloadPending.Swap(false) {
		system.RequestReload(g.world, false)
	}

	if g.playerDead() {
		g.deathUI.Update()
		if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.restart()
		}
	}

	g.scheduler.Update(g.world)
	return g.persistence.Err()
}

func (g *Game) restart() {
	if _, pending := ecs.First(g.world, component.ReloadRequestComponent.Kind()); pending {
		return
	}
	system.RequestReload(g.world, true)
}

func (g *Game) playerDead() bool {
	player, ok := ecs.First(g.world, component.PlayerTagComponent.Kind())
	return ok && ecs.Has(g.world, player, component.DeadComponent.Kind())
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.world, g.streamer)
	if g.debug {
		g.renderer.DrawDebug(screen, g.streamer)
	}
	if g.playerDead() {
		g.deathUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
