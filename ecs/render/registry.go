package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/thicket/prefabs"
)

var fallbackColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// Registry maps visual keys to images.
type Registry struct {
	images map[string]*ebiten.Image
}

// NewRegistry builds a placeholder image for every visual in spec.
func NewRegistry(spec prefabs.WorldSpec) *Registry {
	r := &Registry{images: make(map[string]*ebiten.Image, len(spec.Visuals))}
	for _, v := range spec.Visuals {
		r.Register(v.Name, ebiten.NewImageFromImage(Placeholder(v)))
	}
	return r
}

// Register stores an image by key.
func (r *Registry) Register(key string, img *ebiten.Image) {
	if r == nil || key == "" || img == nil {
		return
	}
	r.images[key] = img
}

// Image returns the image for key, or nil.
func (r *Registry) Image(key string) *ebiten.Image {
	if r == nil || key == "" {
		return nil
	}
	return r.images[key]
}

// Placeholder rasterizes a flat rectangle or ellipse in the visual's color.
func Placeholder(v prefabs.VisualSpec) *image.RGBA {
	w, h := v.Width, v.Height
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	var c color.Color = fallbackColor
	if v.Color != nil && v.Color.Color != nil {
		c = v.Color.Color
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	rx, ry := float64(w)/2, float64(h)/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if v.Round {
				dx := (float64(x) + 0.5 - rx) / rx
				dy := (float64(y) + 0.5 - ry) / ry
				if dx*dx+dy*dy > 1 {
					continue
				}
			}
			img.Set(x, y, c)
		}
	}
	return img
}
