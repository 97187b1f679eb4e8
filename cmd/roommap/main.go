// Command roommap validates a world file against its room templates and
// prints the room grid.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/roomstream/ecs"
	"github.com/milk9111/roomstream/ecs/component"
	"github.com/milk9111/roomstream/ecs/entity"
	"github.com/milk9111/roomstream/levels"
	"github.com/milk9111/roomstream/prefabs"
	"github.com/milk9111/roomstream/rooms"
	"github.com/pixil98/go-errors"
)

func main() {
	worldName := flag.String("world", "world.json", "world file in levels/")
	quiet := flag.Bool("q", false, "only report problems")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	world, err := levels.LoadWorld(*worldName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	reg, err := world.Registry()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if !*quiet {
		fmt.Print(renderMap(reg))
	}

	if err := checkRooms(reg, prefabs.NewTemplates(), logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if !*quiet {
		fmt.Printf("%d rooms ok\n", reg.Len())
	}
}

// checkRooms spawns every room into a scratch world and reports templates
// that fail to build, neighbor links without a matching door and ending
// conditions that do not evaluate.
func checkRooms(reg *rooms.Registry, templates *prefabs.Templates, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	el := errors.NewErrorList()

	for _, room := range reg.All() {
		w := ecs.NewWorld()
		factory := entity.NewRoomFactory(w, templates, logger)
		content, err := factory.SpawnRoom(room, cp.Vector{})
		if err != nil {
			el.Add(err)
			continue
		}

		doors := map[rooms.Direction]bool{}
		ecs.ForEach(w, component.DoorComponent.Kind(), func(_ ecs.Entity, d *component.Door) {
			doors[d.Direction] = true
		})
		for _, dir := range rooms.AllDirections() {
			if room.Neighbor(dir) != nil && !doors[dir] {
				el.Add(fmt.Errorf("room %q: %s neighbor %q has no door", room.ID, dir, room.Neighbor(dir).ID))
			}
		}

		vars := map[string]any{"collected": 0, "total": 0}
		ecs.ForEach(w, component.EndingComponent.Kind(), func(_ ecs.Entity, ending *component.Ending) {
			if _, err := entity.EvalEndingCondition(ending, vars); err != nil {
				el.Add(fmt.Errorf("room %q: ending: %w", room.ID, err))
			}
		})

		content.Destroy()
	}

	return el.Err()
}

const cellWidth = 10

// renderMap draws the registry as a text grid, north up. Horizontal links
// are drawn as "--" and vertical links as "|".
func renderMap(reg *rooms.Registry) string {
	all := reg.All()
	if len(all) == 0 {
		return ""
	}

	minX, maxX := all[0].Coord.X, all[0].Coord.X
	minY, maxY := all[0].Coord.Y, all[0].Coord.Y
	for _, d := range all[1:] {
		minX, maxX = min(minX, d.Coord.X), max(maxX, d.Coord.X)
		minY, maxY = min(minY, d.Coord.Y), max(maxY, d.Coord.Y)
	}

	var sb strings.Builder
	for y := maxY; y >= minY; y-- {
		var row, link strings.Builder
		for x := minX; x <= maxX; x++ {
			d, ok := reg.ByCoord(rooms.Coord{X: x, Y: y})
			if !ok {
				row.WriteString(strings.Repeat(" ", cellWidth+2))
				link.WriteString(strings.Repeat(" ", cellWidth+2))
				continue
			}

			row.WriteString(pad(label(d, reg)))
			if d.East != nil {
				row.WriteString("--")
			} else {
				row.WriteString("  ")
			}

			if d.South != nil {
				link.WriteString(pad("|"))
			} else {
				link.WriteString(pad(""))
			}
			link.WriteString("  ")
		}
		sb.WriteString(strings.TrimRight(row.String(), " "))
		sb.WriteByte('\n')
		if y > minY {
			sb.WriteString(strings.TrimRight(link.String(), " "))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func label(d *rooms.Descriptor, reg *rooms.Registry) string {
	name := d.ID
	if start := reg.Start(); start != nil && start.ID == d.ID {
		name = "*" + name
	}
	if len(name) > cellWidth-2 {
		name = name[:cellWidth-2]
	}
	return "[" + name + "]"
}

func pad(s string) string {
	if len(s) >= cellWidth {
		return s
	}
	left := (cellWidth - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", cellWidth-len(s)-left)
}
