package system

import (
	"github.com/milk9111/chrono/common"
	"github.com/milk9111/chrono/ecs"
	"github.com/milk9111/chrono/ecs/component"
	"github.com/milk9111/chrono/ecs/entity"
)

// RippleSystem counts down queued ripple events and applies each effect
// exactly once. Events queued during the current tick start counting on the
// next one, so an event queued on tick T with countdown N fires on T+N.
type RippleSystem struct{}

func NewRippleSystem() *RippleSystem {
	return &RippleSystem{}
}

func (rs *RippleSystem) Update(w *ecs.World) {
	s, _, ok := session(w)
	if !ok {
		return
	}

	ecs.ForEach(w, component.RippleEventComponent.Kind(), func(e ecs.Entity, ev *component.RippleEvent) {
		if ev.Tick == s.Tick {
			return
		}
		ev.Countdown--
		if ev.Countdown > 0 {
			return
		}
		applyRipple(w, ev.Effect)
		ecs.DestroyEntity(w, e)
	})
}

// Pending reports how many ripple events are waiting to fire.
func Pending(w *ecs.World) int {
	return ecs.Count(w, component.RippleEventComponent.Kind())
}

func applyRipple(w *ecs.World, effect component.RippleEffect) {
	switch eff := effect.(type) {
	case component.BuildBridge:
		for i := 0; i < eff.TileCount; i++ {
			bb := common.Rect(eff.OriginX+float64(i)*eff.TileSize, eff.OriginY, eff.TileSize, eff.TileSize)
			_, _ = entity.NewPlatform(w, bb, component.TimelinePresent)
		}
	}
}
