package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/roomstream/rooms"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and logging")
	watch := flag.Bool("watch", false, "reload room templates from prefabs/ when they change on disk")
	startRoom := flag.String("start", "", "room id to boot into (overrides ROOMSTREAM_START_ROOM)")
	worldName := flag.String("world", "world.json", "world file in levels/")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	settings, err := rooms.LoadSettingsFromEnv()
	if err != nil {
		logger.Warn("falling back to default settings", "error", err)
	}
	if *startRoom != "" {
		settings.StartRoom = *startRoom
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("roomstream")

	game, err := NewGame(GameConfig{
		World:    *worldName,
		Settings: settings,
		Debug:    *debug,
		Watch:    *watch,
		Logger:   logger,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
