package system

import (
	"github.com/milk9111/thicket/common"
	"github.com/milk9111/thicket/ecs"
	"github.com/milk9111/thicket/ecs/component"
)

// InputSystem copies the polled input into every Input component, converting
// the cursor to world space through the camera.
type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || i.source == nil || w == nil {
		return
	}

	raw := i.source.Poll()
	moveX, moveY := common.NormalizeOrZero(raw.MoveX, raw.MoveY)
	cursorX, cursorY := screenToWorld(w, raw)

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.MoveX = moveX
		input.MoveY = moveY
		input.Shoot = raw.Shoot
		input.Gather = raw.Gather
		input.PlaceTurret = raw.PlaceTurret
		input.CursorX = cursorX
		input.CursorY = cursorY
		input.CursorValid = raw.CursorInside
	})
}

// screenToWorld maps a cursor position through the camera. The camera
// transform is the world point at the centre of the screen.
func screenToWorld(w *ecs.World, raw RawInput) (float64, float64) {
	cam, ok := w.First(component.CameraTagComponent.Kind())
	if !ok {
		return raw.CursorX, raw.CursorY
	}
	t, ok := ecs.Get(w, cam, component.TransformComponent.Kind())
	if !ok {
		return raw.CursorX, raw.CursorY
	}
	zoom := 1.0
	if c, ok := ecs.Get(w, cam, component.CameraComponent.Kind()); ok && c.Zoom > 0 {
		zoom = c.Zoom
	}
	return t.X + (raw.CursorX-raw.ScreenWidth/2)/zoom, t.Y + (raw.CursorY-raw.ScreenHeight/2)/zoom
}
