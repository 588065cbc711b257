package entity

import (
	"fmt"

	"github.com/milk9111/chrono/ecs"
	"github.com/milk9111/chrono/ecs/component"
)

func NewCamera(w *ecs.World, opts Options) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		ViewWidth:  opts.ViewWidth / 2,
		ViewHeight: opts.ViewHeight,
		RightPad:   opts.World.Camera.RightPad,
		ShakeDecay: opts.World.Outcome.ShakeDecay,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera: %w", err)
	}
	return e, nil
}
