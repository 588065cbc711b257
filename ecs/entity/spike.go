package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/chrono/ecs"
	"github.com/milk9111/chrono/ecs/component"
	"github.com/milk9111/chrono/prefabs"
)

// NewSpike places a spike. Its hitbox is trimmed on the sides and top; the
// base stays flush with the support tile.
func NewSpike(w *ecs.World, bounds cp.BB, spec prefabs.SpikeSpec, img *ebiten.Image) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{
		Kind:   component.HazardSpike,
		Bounds: bounds,
		Inset: component.HazardInset{
			Left:  spec.InsetX,
			Top:   spec.InsetY,
			Right: spec.InsetX,
		},
	}); err != nil {
		return 0, fmt.Errorf("spike: add hazard: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Image: img}); err != nil {
		return 0, fmt.Errorf("spike: add sprite: %w", err)
	}
	return e, nil
}

// NewLaser places a beam; bounds is already the lethal strip.
func NewLaser(w *ecs.World, bounds cp.BB) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{
		Kind:   component.HazardLaser,
		Bounds: bounds,
	}); err != nil {
		return 0, fmt.Errorf("laser: add hazard: %w", err)
	}
	return e, nil
}
