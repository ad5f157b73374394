package system

import (
	"math"
	"testing"

	"github.com/milk9111/thicket/ecs/component"
	"github.com/milk9111/thicket/ecs/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInput struct {
	raw   RawInput
	polls int
}

func (f *fakeInput) Poll() RawInput {
	f.polls++
	return f.raw
}

func TestInputNormalizesMovement(t *testing.T) {
	f := newFixture(t)
	p := f.player(t, 0, 0)
	src := &fakeInput{raw: RawInput{MoveX: 1, MoveY: 1, Shoot: true}}

	f.run(1, NewInputSystem(src))

	in := get(t, f.w, p, component.InputComponent.Kind())
	assert.InDelta(t, 1, math.Hypot(in.MoveX, in.MoveY), 1e-9)
	assert.True(t, in.Shoot)
	assert.False(t, in.Gather)
	assert.Equal(t, 1, src.polls)
}

func TestInputCursorThroughCamera(t *testing.T) {
	tests := []struct {
		name         string
		camera       bool
		camX, camY   float64
		cursorX      float64
		cursorY      float64
		wantX, wantY float64
	}{
		{name: "no_camera", cursorX: 10, cursorY: 20, wantX: 10, wantY: 20},
		{name: "centre_is_camera", camera: true, camX: 100, camY: -50, cursorX: 400, cursorY: 300, wantX: 100, wantY: -50},
		{name: "zoomed_offset", camera: true, camX: 0, camY: 0, cursorX: 650, cursorY: 300, wantX: 100, wantY: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.tuning.World.CameraZoom = 2.5
			p := f.player(t, 0, 0)
			if tc.camera {
				_, err := entity.NewCamera(f.w, f.tuning.World, tc.camX, tc.camY)
				require.NoError(t, err)
			}
			src := &fakeInput{raw: RawInput{
				CursorX: tc.cursorX, CursorY: tc.cursorY, CursorInside: true,
				ScreenWidth: 800, ScreenHeight: 600,
			}}

			f.run(1, NewInputSystem(src))

			in := get(t, f.w, p, component.InputComponent.Kind())
			assert.InDelta(t, tc.wantX, in.CursorX, 1e-9)
			assert.InDelta(t, tc.wantY, in.CursorY, 1e-9)
			assert.True(t, in.CursorValid)
		})
	}
}

func TestMovementKeysDrivePlayer(t *testing.T) {
	f := newFixture(t)
	p := f.player(t, 0, 0)
	src := &fakeInput{raw: RawInput{MoveX: 1}}

	f.run(1, NewInputSystem(src), NewPlayerMovementSystem())

	vel := get(t, f.w, p, component.VelocityComponent.Kind())
	assert.Equal(t, f.tuning.Player.MoveSpeed, vel.X)
	assert.Zero(t, vel.Y)
	assert.True(t, get(t, f.w, p, component.SpriteComponent.Kind()).FlipX)
}

func TestCameraEasesTowardPlayer(t *testing.T) {
	f := newFixture(t)
	f.player(t, 100, 0)
	cam, err := entity.NewCamera(f.w, f.tuning.World, 0, 0)
	require.NoError(t, err)

	f.run(1, NewCameraSystem(f.tuning))
	assert.InDelta(t, 100*f.tuning.World.CameraSmoothing, get(t, f.w, cam, component.TransformComponent.Kind()).X, 1e-9)

	f.run(200, NewCameraSystem(f.tuning))
	assert.InDelta(t, 100, get(t, f.w, cam, component.TransformComponent.Kind()).X, 1e-6)
}
