package component

import "github.com/hajimehoshi/ebiten/v2"

// Sprite is an optional image drawn over the entity bounds. Image is nil when
// the asset failed to load; renderers fall back to shapes.
type Sprite struct {
	Image    *ebiten.Image
	DrawSize float64
}

var SpriteComponent = NewComponent[Sprite]()
