package entity

import (
	"fmt"

	"github.com/milk9111/chrono/ecs"
	"github.com/milk9111/chrono/ecs/component"
	"github.com/milk9111/chrono/levels"
)

func NewSession(w *ecs.World, layout *levels.Layout, opts Options) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.SessionComponent.Kind(), &component.Session{
		LevelIndex:   opts.LevelIndex,
		LevelCount:   opts.LevelCount,
		LevelWidth:   layout.Width,
		ViewHeight:   opts.ViewHeight,
		LasersActive: true,
	}); err != nil {
		return 0, fmt.Errorf("session: add session: %w", err)
	}

	spec := opts.World
	if err := ecs.Add(w, e, component.RulesComponent.Kind(), &component.Rules{
		InteractRadius:     spec.Lever.InteractRadius,
		RippleFrames:       spec.Lever.RippleFrames,
		BridgeOffsetX:      spec.Lever.BridgeOffsetX,
		BridgeTiles:        spec.Lever.BridgeTiles,
		TileSize:           spec.TileSize,
		LaserOffFrames:     spec.Button.OffFrames,
		ButtonTolerance:    spec.Button.Tolerance,
		FallMargin:         spec.FallMargin,
		DeathPanelFrames:   spec.Outcome.DeathPanelFrames,
		VictoryPanelFrames: spec.Outcome.VictoryPanelFrames,
		DeathShake:         spec.Outcome.DeathShake,
	}); err != nil {
		return 0, fmt.Errorf("session: add rules: %w", err)
	}

	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("session: add input: %w", err)
	}
	return e, nil
}
