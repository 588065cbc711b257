package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/chrono/ecs"
	"github.com/milk9111/chrono/ecs/component"
)

func NewPlatform(w *ecs.World, bounds cp.BB, timeline component.Timeline) (ecs.Entity, error) {
	if !timeline.Valid() {
		return 0, fmt.Errorf("platform: invalid timeline %d", timeline)
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PlatformComponent.Kind(), &component.Platform{Bounds: bounds, Timeline: timeline}); err != nil {
		return 0, fmt.Errorf("platform: add platform: %w", err)
	}
	return e, nil
}
