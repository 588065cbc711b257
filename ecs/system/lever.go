package system

import (
	"log"

	"github.com/milk9111/chrono/ecs"
	"github.com/milk9111/chrono/ecs/component"
	"github.com/milk9111/chrono/ecs/entity"
)

// LeverSystem flips the lever on an interact edge when the player is close
// enough, and schedules the bridge ripple. A flipped lever stays flipped.
type LeverSystem struct{}

func NewLeverSystem() *LeverSystem {
	return &LeverSystem{}
}

func (ls *LeverSystem) Update(w *ecs.World) {
	if !input(w).InteractPressed {
		return
	}
	s, rules, ok := session(w)
	if !ok {
		return
	}

	_, p, pt, pb, ok := firstPlayer(w)
	if !ok || p.Status != component.PlayerAlive {
		return
	}
	center := playerBox(pt, pb).Center()

	ecs.ForEach(w, component.LeverComponent.Kind(), func(_ ecs.Entity, lever *component.Lever) {
		if lever.Active {
			return
		}
		if center.Distance(lever.Bounds.Center()) >= rules.InteractRadius {
			return
		}

		lever.Active = true
		effect := component.BuildBridge{
			OriginX:   lever.Bounds.L + rules.BridgeOffsetX,
			OriginY:   lever.Bounds.B + rules.TileSize,
			TileSize:  rules.TileSize,
			TileCount: rules.BridgeTiles,
		}
		if _, err := entity.NewRippleEvent(w, s.Tick, rules.RippleFrames, effect); err != nil {
			log.Printf("lever: queue ripple: %v", err)
		}
	})
}
