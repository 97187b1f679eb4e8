package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/leonelquinteros/gotext"
	"github.com/milk9111/roomstream/ecs"
	"github.com/milk9111/roomstream/ecs/component"
	"github.com/milk9111/roomstream/rooms"
	"golang.org/x/image/font/basicfont"
)

// pixelsPerUnit maps the 32x18 grid cell onto the 1280x720 screen.
const pixelsPerUnit = baseWidth / 32.0

var (
	colorBackground = color.RGBA{R: 0x14, G: 0x14, B: 0x1c, A: 0xff}
	colorPlayable   = color.RGBA{R: 0x22, G: 0x22, B: 0x30, A: 0xff}
	colorRoomEdge   = color.RGBA{R: 0x55, G: 0x55, B: 0x70, A: 0xff}
	colorDoorOpen   = color.RGBA{R: 0x40, G: 0xc0, B: 0x60, A: 0xff}
	colorDoorWall   = color.RGBA{R: 0x80, G: 0x40, B: 0x40, A: 0xff}
	colorPickup     = color.RGBA{R: 0xf0, G: 0xd0, B: 0x30, A: 0xff}
	colorHazard     = color.RGBA{R: 0xe0, G: 0x30, B: 0x30, A: 0xff}
	colorEncounter  = color.RGBA{R: 0xa0, G: 0x50, B: 0xe0, A: 0xff}
	colorEnding     = color.RGBA{R: 0x60, G: 0xd0, B: 0xf0, A: 0xff}
	colorPlayer     = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	colorDead       = color.RGBA{R: 0x70, G: 0x70, B: 0x70, A: 0xff}
	colorText       = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

type renderer struct {
	settings rooms.Settings
	face     ebtext.Face
	camera   cp.Vector
}

func newRenderer(settings rooms.Settings) *renderer {
	return &renderer{
		settings: settings,
		face:     ebtext.NewGoXFace(basicfont.Face7x13),
	}
}

// toScreen converts a world point (+Y up) to screen pixels (+Y down).
func (r *renderer) toScreen(p cp.Vector) (float32, float32) {
	x := baseWidth/2 + (p.X-r.camera.X)*pixelsPerUnit
	y := baseHeight/2 - (p.Y-r.camera.Y)*pixelsPerUnit
	return float32(x), float32(y)
}

func (r *renderer) fillBox(screen *ebiten.Image, center cp.Vector, w, h float64, c color.Color) {
	x, y := r.toScreen(cp.Vector{X: center.X - w/2, Y: center.Y + h/2})
	vector.FillRect(screen, x, y, float32(w*pixelsPerUnit), float32(h*pixelsPerUnit), c, false)
}

func (r *renderer) strokeBox(screen *ebiten.Image, center cp.Vector, w, h float64, c color.Color) {
	x, y := r.toScreen(cp.Vector{X: center.X - w/2, Y: center.Y + h/2})
	vector.StrokeRect(screen, x, y, float32(w*pixelsPerUnit), float32(h*pixelsPerUnit), 2, c, false)
}

func (r *renderer) Draw(screen *ebiten.Image, w *ecs.World, streamer *rooms.WorldStreamer) {
	screen.Fill(colorBackground)

	if cam, ok := ecs.First(w, component.CameraTagComponent.Kind()); ok {
		if t, ok := ecs.Get(w, cam, component.TransformComponent.Kind()); ok {
			r.camera = t.Vector()
		}
	}

	grid := streamer.Grid()
	for _, id := range streamer.Loaded() {
		inst, ok := streamer.Cache().Instance(id)
		if !ok {
			continue
		}
		r.fillBox(screen, inst.Anchor, r.settings.PlayableWidth, r.settings.PlayableHeight, colorPlayable)
		r.strokeBox(screen, inst.Anchor, grid.Width, grid.Height, colorRoomEdge)
	}

	ecs.ForEach3(w, component.DoorComponent.Kind(), component.DoorStateComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, d *component.Door, s *component.DoorState, t *component.Transform) {
		c := colorDoorWall
		if s.Passable {
			c = colorDoorOpen
		}
		r.fillBox(screen, t.Vector(), d.Width, d.Height, c)
	})

	ecs.ForEach2(w, component.HazardComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, h *component.Hazard, t *component.Transform) {
		r.fillBox(screen, t.Vector(), h.Width, h.Height, colorHazard)
	})

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Pickup, t *component.Transform) {
		r.fillBox(screen, t.Vector(), p.Width, p.Height, colorPickup)
	})

	ecs.ForEach2(w, component.EncounterComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, enc *component.Encounter, t *component.Transform) {
		if enc.Cleared {
			return
		}
		size := 1.5
		if enc.Active {
			size = 2.5
		}
		r.fillBox(screen, t.Vector(), size, size, colorEncounter)
	})

	ecs.ForEach2(w, component.EndingComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Ending, t *component.Transform) {
		r.strokeBox(screen, t.Vector(), 2, 2, colorEnding)
	})

	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		t, tok := ecs.Get(w, player, component.TransformComponent.Kind())
		c, cok := ecs.Get(w, player, component.ColliderComponent.Kind())
		if tok && cok {
			col := colorPlayer
			if ecs.Has(w, player, component.DeadComponent.Kind()) {
				col = colorDead
			}
			r.fillBox(screen, t.Vector(), c.Width, c.Height, col)
		}
	}

	r.drawHUD(screen, w)
}

func (r *renderer) drawHUD(screen *ebiten.Image, w *ecs.World) {
	if e, ok := ecs.First(w, component.TrophyCounterComponent.Kind()); ok {
		if c, ok := ecs.Get(w, e, component.TrophyCounterComponent.Kind()); ok {
			r.drawText(screen, gotext.Get("Trophies %d/%d", c.Collected(), c.Total), baseWidth-20, 20, ebtext.AlignEnd)
		}
	}

	if e, ok := ecs.First(w, component.ToastComponent.Kind()); ok {
		if toast, ok := ecs.Get(w, e, component.ToastComponent.Kind()); ok {
			r.drawText(screen, toast.Text, baseWidth/2, baseHeight-60, ebtext.AlignCenter)
		}
	}

	if e, ok := ecs.First(w, component.EndingRuntimeComponent.Kind()); ok {
		if rt, ok := ecs.Get(w, e, component.EndingRuntimeComponent.Kind()); ok {
			vector.FillRect(screen, 0, baseHeight/2-40, baseWidth, 80, color.RGBA{A: 180}, false)
			r.drawText(screen, rt.Message, baseWidth/2, baseHeight/2-6, ebtext.AlignCenter)
		}
	}
}

func (r *renderer) drawText(screen *ebiten.Image, s string, x, y float64, align ebtext.Align) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Scale(2, 2)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(colorText)
	op.PrimaryAlign = align
	ebtext.Draw(screen, s, r.face, op)
}

func (r *renderer) DrawDebug(screen *ebiten.Image, streamer *rooms.WorldStreamer) {
	current := "<none>"
	if cur := streamer.Current(); cur != nil {
		current = fmt.Sprintf("%s %s", cur.ID, cur.Coord.String())
	}
	safe := "<none>"
	if p, ok := streamer.SafeEntry(); ok {
		safe = fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
	}

	lines := []string{
		fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		"room: " + current,
		"state: " + streamer.State().String(),
		fmt.Sprintf("blocking: %t", streamer.Blocking()),
		"loaded: " + strings.Join(streamer.Loaded(), ", "),
		"safe entry: " + safe,
		fmt.Sprintf("cache violations: %d", streamer.Cache().Violations()),
	}
	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), 10, 10)
}
