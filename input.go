package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

const stickDeadzone = 0.2

// deviceInput reads keyboard and the first standard-layout gamepad.
type deviceInput struct {
	gamepads []ebiten.GamepadID
}

func newDeviceInput() *deviceInput {
	return &deviceInput{}
}

func (d *deviceInput) Move() cp.Vector {
	var move cp.Vector
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		move.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		move.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		move.Y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		move.Y--
	}
	if move != (cp.Vector{}) {
		return move
	}

	d.gamepads = ebiten.AppendGamepadIDs(d.gamepads[:0])
	for _, id := range d.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := -ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(x) < stickDeadzone {
			x = 0
		}
		if math.Abs(y) < stickDeadzone {
			y = 0
		}
		return cp.Vector{X: x, Y: y}
	}
	return move
}
