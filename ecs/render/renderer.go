package render

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/thicket/ecs"
	"github.com/milk9111/thicket/ecs/component"
)

var (
	background = color.RGBA{R: 0x4d, G: 0x7c, B: 0x0f, A: 0xff}
	selection  = color.RGBA{R: 0xfa, G: 0xcc, B: 0x15, A: 0xff}
)

// Camera is the view used for one frame. The camera position is drawn at
// the centre of the screen.
type Camera struct {
	X, Y float64
	Zoom float64
}

// WorldToScreen maps a world point to screen pixels.
func (c Camera) WorldToScreen(x, y, screenW, screenH float64) (float64, float64) {
	return (x-c.X)*c.Zoom + screenW/2, (y-c.Y)*c.Zoom + screenH/2
}

// Renderer draws every entity with a Transform and a Sprite.
type Renderer struct {
	registry  *Registry
	camEntity ecs.Entity
}

func NewRenderer(registry *Registry) *Renderer {
	return &Renderer{registry: registry}
}

// SetRegistry swaps the visual registry, e.g. after a prefab reload.
func (r *Renderer) SetRegistry(registry *Registry) {
	r.registry = registry
}

// CameraFor returns the first camera in w, or an identity camera at the
// origin.
func (r *Renderer) CameraFor(w *ecs.World) Camera {
	cam := Camera{Zoom: 1}
	if !r.camEntity.Valid() || !w.IsAlive(r.camEntity) {
		if e, ok := w.First(component.CameraTagComponent.Kind()); ok {
			r.camEntity = e
		}
	}
	if t, ok := ecs.Get(w, r.camEntity, component.TransformComponent.Kind()); ok {
		cam.X, cam.Y = t.X, t.Y
	}
	if c, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind()); ok && c.Zoom > 0 {
		cam.Zoom = c.Zoom
	}
	return cam
}

func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(background)

	cam := r.CameraFor(w)
	bounds := screen.Bounds()
	sw, sh := float64(bounds.Dx()), float64(bounds.Dy())

	for _, e := range DrawOrder(w) {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		if s.Hidden {
			continue
		}
		img := r.registry.Image(s.Visual)
		if img == nil {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM = spriteGeoM(t, s, img.Bounds().Dx(), img.Bounds().Dy(), cam, sw, sh)
		if inv, ok := ecs.Get(w, e, component.InvulnerableComponent.Kind()); ok && inv.Active() {
			op.ColorScale.Scale(1, 0.35, 0.35, 1)
		}
		screen.DrawImage(img, op)
	}

	r.drawSelection(w, screen, cam, sw, sh)
}

// drawSelection outlines the tree the player would cut next.
func (r *Renderer) drawSelection(w *ecs.World, screen *ebiten.Image, cam Camera, sw, sh float64) {
	ecs.ForEach(w, component.SelectionComponent.Kind(), func(_ ecs.Entity, sel *component.Selection) {
		target := ecs.Entity(sel.Target)
		if !sel.Target.Valid() || !w.IsAlive(target) {
			return
		}
		t, ok := ecs.Get(w, target, component.TransformComponent.Kind())
		if !ok {
			return
		}
		x, y := cam.WorldToScreen(t.X, t.Y, sw, sh)
		radius := 24 * cam.Zoom
		if s, ok := ecs.Get(w, target, component.SpriteComponent.Kind()); ok {
			radius = s.Width / 2 * cam.Zoom
		}
		vector.StrokeCircle(screen, float32(x), float32(y), float32(radius), 2, selection, true)
	})
}

// DrawOrder returns the drawable entities sorted by render layer, then id.
func DrawOrder(w *ecs.World) []ecs.Entity {
	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	layer := func(e ecs.Entity) int {
		if l, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			return l.Index
		}
		return 0
	}
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := layer(entities[i]), layer(entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})
	return entities
}

func spriteGeoM(t *component.Transform, s *component.Sprite, imgW, imgH int, cam Camera, sw, sh float64) ebiten.GeoM {
	var m ebiten.GeoM
	iw, ih := float64(imgW), float64(imgH)
	m.Translate(-iw/2, -ih/2)

	sx, sy := 1.0, 1.0
	if s.Width > 0 && iw > 0 {
		sx = s.Width / iw
	}
	if s.Height > 0 && ih > 0 {
		sy = s.Height / ih
	}
	if t.ScaleX != 0 {
		sx *= t.ScaleX
	}
	if t.ScaleY != 0 {
		sy *= t.ScaleY
	}
	if s.FlipX {
		sx = -sx
	}
	m.Scale(sx, sy)
	m.Rotate(t.Rotation)
	m.Scale(cam.Zoom, cam.Zoom)
	x, y := cam.WorldToScreen(t.X, t.Y, sw, sh)
	m.Translate(x, y)
	return m
}
