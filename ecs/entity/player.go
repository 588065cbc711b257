package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/chrono/ecs"
	"github.com/milk9111/chrono/ecs/component"
	"github.com/milk9111/chrono/prefabs"
)

// NewPlayerAt creates the ball with its top-left corner at (x, y).
func NewPlayerAt(w *ecs.World, x, y float64, spec prefabs.PlayerSpec, img *ebiten.Image) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}

	width, height := spec.Width, spec.Height
	if width <= 0 {
		width = 36
	}
	if height <= 0 {
		height = 36
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: width, Height: height}); err != nil {
		return 0, fmt.Errorf("player: add body: %w", err)
	}

	m := spec.Motion
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		Status: component.PlayerAlive,
		Motion: component.Motion{
			Gravity:         m.Gravity,
			Accel:           m.Accel,
			Friction:        m.Friction,
			MaxSpeed:        m.MaxSpeed,
			JumpForce:       m.JumpForce,
			StopThreshold:   m.StopThreshold,
			SpinFactor:      m.SpinFactor,
			VictoryFriction: m.VictoryFriction,
			VictorySpin:     m.VictorySpin,
			BounceSpeed:     m.BounceSpeed,
			BounceThreshold: m.BounceThreshold,
		},
		Hitboxes: component.Hitboxes{
			Skin:        spec.Hitboxes.Skin,
			HazardInset: spec.Hitboxes.HazardInset,
			LaserInset:  spec.Hitboxes.LaserInset,
		},
	}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}

	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Image: img, DrawSize: spec.Sprite.DrawSize}); err != nil {
		return 0, fmt.Errorf("player: add sprite: %w", err)
	}
	return e, nil
}
