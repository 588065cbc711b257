package system

import (
	"github.com/milk9111/chrono/ecs"
	"github.com/milk9111/chrono/ecs/component"
)

// TimerSystem advances the session tick and the shared laser-disable
// countdown. When the countdown runs out the lasers come back and every
// button pops up.
type TimerSystem struct{}

func NewTimerSystem() *TimerSystem {
	return &TimerSystem{}
}

func (ts *TimerSystem) Update(w *ecs.World) {
	s, _, ok := session(w)
	if !ok {
		return
	}

	s.Tick++

	if s.LaserTimer <= 0 {
		return
	}
	s.LaserTimer--
	if s.LaserTimer > 0 {
		return
	}

	s.LasersActive = true
	ecs.ForEach(w, component.TimeButtonComponent.Kind(), func(_ ecs.Entity, b *component.TimeButton) {
		b.Pressed = false
	})
}
