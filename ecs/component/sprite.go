package component

// Sprite names the visual to draw for an entity. The render package maps
// Visual to an image; the simulation never looks at pixels.
type Sprite struct {
	Visual string
	Width  float64
	Height float64
	FlipX  bool
	Hidden bool
}

var SpriteComponent = NewComponent[Sprite]()

// RenderLayer is used to sort draw order deterministically.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
