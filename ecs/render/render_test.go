package render

import (
	"image/color"
	"testing"

	"github.com/milk9111/thicket/ecs"
	"github.com/milk9111/thicket/ecs/component"
	"github.com/milk9111/thicket/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholder(t *testing.T) {
	red := &prefabs.YAMLColor{Color: color.RGBA{R: 255, A: 255}}

	tests := []struct {
		name       string
		spec       prefabs.VisualSpec
		w, h       int
		cornerSet  bool
		centreWant color.Color
	}{
		{name: "rect", spec: prefabs.VisualSpec{Color: red, Width: 4, Height: 2}, w: 4, h: 2, cornerSet: true, centreWant: red.Color},
		{name: "round", spec: prefabs.VisualSpec{Color: red, Width: 10, Height: 10, Round: true}, w: 10, h: 10, centreWant: red.Color},
		{name: "no_color", spec: prefabs.VisualSpec{Width: 3, Height: 3}, w: 3, h: 3, cornerSet: true, centreWant: fallbackColor},
		{name: "no_size", spec: prefabs.VisualSpec{Color: red}, w: 1, h: 1, cornerSet: true, centreWant: red.Color},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			img := Placeholder(tc.spec)
			assert.Equal(t, tc.w, img.Bounds().Dx())
			assert.Equal(t, tc.h, img.Bounds().Dy())
			assert.Equal(t, tc.centreWant, img.RGBAAt(tc.w/2, tc.h/2))
			_, _, _, a := img.At(0, 0).RGBA()
			assert.Equal(t, tc.cornerSet, a > 0)
		})
	}
}

func TestCameraWorldToScreen(t *testing.T) {
	cam := Camera{X: 100, Y: 50, Zoom: 2}
	x, y := cam.WorldToScreen(100, 50, 800, 600)
	assert.Equal(t, 400.0, x)
	assert.Equal(t, 300.0, y)

	x, y = cam.WorldToScreen(110, 40, 800, 600)
	assert.Equal(t, 420.0, x)
	assert.Equal(t, 280.0, y)
}

func TestDrawOrder(t *testing.T) {
	w := ecs.NewWorld()
	add := func(layer int, withLayer bool) ecs.Entity {
		e := ecs.CreateEntity(w)
		require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{}))
		require.NoError(t, ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Visual: "x"}))
		if withLayer {
			require.NoError(t, ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layer}))
		}
		return e
	}
	top := add(5, true)
	bottom := add(-1, true)
	plain := add(0, false)
	hiddenFromQuery := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, hiddenFromQuery, component.TransformComponent.Kind(), &component.Transform{}))

	assert.Equal(t, []ecs.Entity{bottom, plain, top}, DrawOrder(w))
}

func TestSpriteGeoM(t *testing.T) {
	cam := Camera{Zoom: 2}
	tr := &component.Transform{X: 10, Y: 0, ScaleX: 1, ScaleY: 1}

	m := spriteGeoM(tr, &component.Sprite{Width: 20, Height: 20}, 10, 10, cam, 800, 600)
	x, y := m.Apply(0, 0)
	assert.InDelta(t, 400+20-20, x, 1e-9, "top-left corner sits half a scaled sprite left of centre")
	assert.InDelta(t, 300-20, y, 1e-9)

	flipped := spriteGeoM(tr, &component.Sprite{Width: 20, Height: 20, FlipX: true}, 10, 10, cam, 800, 600)
	x, _ = flipped.Apply(0, 0)
	assert.InDelta(t, 400+20+20, x, 1e-9)
}
