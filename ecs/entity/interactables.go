package entity

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/chrono/ecs"
	"github.com/milk9111/chrono/ecs/component"
)

func NewLever(w *ecs.World, bounds cp.BB) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.LeverComponent.Kind(), &component.Lever{Bounds: bounds}); err != nil {
		return 0, fmt.Errorf("lever: add lever: %w", err)
	}
	return e, nil
}

func NewTimeButton(w *ecs.World, bounds cp.BB) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TimeButtonComponent.Kind(), &component.TimeButton{Bounds: bounds}); err != nil {
		return 0, fmt.Errorf("button: add button: %w", err)
	}
	return e, nil
}

func NewGoal(w *ecs.World, bounds cp.BB, img *ebiten.Image) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.GoalComponent.Kind(), &component.Goal{Bounds: bounds}); err != nil {
		return 0, fmt.Errorf("goal: add goal: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Image: img}); err != nil {
		return 0, fmt.Errorf("goal: add sprite: %w", err)
	}
	return e, nil
}

// NewRippleEvent queues effect to fire countdown ticks after tick.
func NewRippleEvent(w *ecs.World, tick uint64, countdown int, effect component.RippleEffect) (ecs.Entity, error) {
	if effect == nil {
		return 0, errors.New("ripple: nil effect")
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.RippleEventComponent.Kind(), &component.RippleEvent{
		Countdown: countdown,
		Tick:      tick,
		Effect:    effect,
	}); err != nil {
		return 0, fmt.Errorf("ripple: add event: %w", err)
	}
	return e, nil
}
