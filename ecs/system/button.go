package system

import (
	"math"

	"github.com/milk9111/chrono/ecs"
	"github.com/milk9111/chrono/ecs/component"
)

// pressButtons presses any released plate under the player's foot point and
// (re)starts the shared laser-disable countdown.
func pressButtons(w *ecs.World, s *component.Session, rules *component.Rules, t *component.Transform, b *component.PhysicsBody) {
	footX := t.X + b.Width/2
	footY := t.Y + b.Height

	ecs.ForEach(w, component.TimeButtonComponent.Kind(), func(_ ecs.Entity, btn *component.TimeButton) {
		if btn.Pressed {
			return
		}
		if footX <= btn.Bounds.L || footX >= btn.Bounds.R {
			return
		}
		// Inclusive: a ball resting on the support tile has its foot exactly
		// one plate height (the default tolerance) below the plate top.
		if math.Abs(footY-btn.Bounds.B) > rules.ButtonTolerance {
			return
		}

		btn.Pressed = true
		s.LasersActive = false
		s.LaserTimer = rules.LaserOffFrames
	})
}
