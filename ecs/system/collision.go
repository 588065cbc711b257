package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/chrono/common"
	"github.com/milk9111/chrono/ecs"
	"github.com/milk9111/chrono/ecs/component"
)

// Axis selects which velocity component a collision pass resolves.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// ResolveCollisions pushes the box at t out of every overlapping platform
// along axis. The hitbox is the box narrowed by skin on both sides. Direction
// is taken from the velocity on entry, so every overlap pushes the same way
// and the last one in iteration order decides the final position.
func ResolveCollisions(t *component.Transform, b *component.PhysicsBody, skin float64, platforms []cp.BB, axis Axis) {
	if t == nil || b == nil {
		return
	}

	vx, vy := b.Velocity.X, b.Velocity.Y
	hitbox := common.Rect(t.X+skin, t.Y, b.Width-2*skin, b.Height)

	for _, plat := range platforms {
		if !common.Overlaps(hitbox, plat) {
			continue
		}

		switch axis {
		case AxisX:
			if vx > 0 {
				t.X = plat.L - b.Width
			} else if vx < 0 {
				t.X = plat.R
			}
			b.Velocity.X = 0
		case AxisY:
			if vy > 0 {
				t.Y = plat.B - b.Height
				b.Grounded = true
				b.Velocity.Y = 0
			} else if vy < 0 {
				t.Y = plat.T
				b.Velocity.Y = 0
			}
		}
	}
}

// platformBoxes collects every platform of both timelines in entity order.
func platformBoxes(w *ecs.World) []cp.BB {
	boxes := make([]cp.BB, 0, ecs.Count(w, component.PlatformComponent.Kind()))
	ecs.ForEach(w, component.PlatformComponent.Kind(), func(_ ecs.Entity, p *component.Platform) {
		if p.Timeline.Valid() {
			boxes = append(boxes, p.Bounds)
		}
	})
	return boxes
}
