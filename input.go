package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/thicket/ecs/system"
)

// Input polls the keyboard and mouse for the simulation.
type Input struct {
	width  float64
	height float64
}

func NewInput(width, height float64) *Input {
	return &Input{width: width, height: height}
}

func (i *Input) Poll() system.RawInput {
	raw := system.RawInput{
		Shoot:        ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Gather:       ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		PlaceTurret:  ebiten.IsKeyPressed(ebiten.KeyT),
		ScreenWidth:  i.width,
		ScreenHeight: i.height,
	}

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		raw.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		raw.MoveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		raw.MoveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		raw.MoveY += 1
	}

	cx, cy := ebiten.CursorPosition()
	raw.CursorX, raw.CursorY = float64(cx), float64(cy)
	raw.CursorInside = cx >= 0 && cy >= 0 && raw.CursorX < i.width && raw.CursorY < i.height
	return raw
}
