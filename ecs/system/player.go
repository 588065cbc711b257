package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/chrono/common"
	"github.com/milk9111/chrono/ecs"
	"github.com/milk9111/chrono/ecs/component"
)

// PlayerSystem moves the ball one tick and then runs the checks that can
// end the attempt: spikes, lasers, falling and the goal, in that order. The
// button check runs afterwards regardless of the outcome.
type PlayerSystem struct {
	hooks    Hooks
	progress ProgressStore
}

func NewPlayerSystem(hooks Hooks, progress ProgressStore) *PlayerSystem {
	return &PlayerSystem{hooks: hooksOrNop(hooks), progress: progress}
}

func (ps *PlayerSystem) Update(w *ecs.World) {
	s, rules, ok := session(w)
	if !ok {
		return
	}
	_, p, t, b, ok := firstPlayer(w)
	if !ok {
		return
	}

	switch p.Status {
	case component.PlayerDead:
		return
	case component.PlayerVictorious:
		victoryStep(p, t, b, platformBoxes(w))
		return
	}

	in := input(w)
	if in.JumpPressed && b.Grounded {
		b.Velocity.Y = p.Motion.JumpForce
		b.Grounded = false
		ps.hooks.PlaySound(component.SoundJump)
	}

	moveStep(p, t, b, in, s.LevelWidth, platformBoxes(w))

	ps.checkHazards(w, s, rules, p, t, b)
	pressButtons(w, s, rules, t, b)
}

// moveStep applies input, friction, gravity and platform collisions.
func moveStep(p *component.Player, t *component.Transform, b *component.PhysicsBody, in component.Input, levelWidth float64, platforms []cp.BB) {
	m := p.Motion

	if in.MoveRight {
		b.Velocity.X += m.Accel
	}
	if in.MoveLeft {
		b.Velocity.X -= m.Accel
	}
	b.Velocity.X *= m.Friction
	if math.Abs(b.Velocity.X) > m.MaxSpeed {
		b.Velocity.X = common.Sign(b.Velocity.X) * m.MaxSpeed
	}
	if math.Abs(b.Velocity.X) < m.StopThreshold {
		b.Velocity.X = 0
	}

	t.X += b.Velocity.X
	ResolveCollisions(t, b, p.Hitboxes.Skin, platforms, AxisX)
	t.Rotation += b.Velocity.X * m.SpinFactor

	if t.X < 0 {
		t.X = 0
		b.Velocity.X = 0
	}
	if maxX := levelWidth - b.Width; t.X > maxX {
		t.X = maxX
		b.Velocity.X = 0
	}

	b.Velocity.Y += m.Gravity
	t.Y += b.Velocity.Y
	b.Grounded = false
	ResolveCollisions(t, b, p.Hitboxes.Skin, platforms, AxisY)
}

// victoryStep is the celebratory bounce. x does not integrate.
func victoryStep(p *component.Player, t *component.Transform, b *component.PhysicsBody, platforms []cp.BB) {
	m := p.Motion

	b.Velocity.X *= m.VictoryFriction
	b.Velocity.Y += m.Gravity
	t.Y += b.Velocity.Y
	ResolveCollisions(t, b, p.Hitboxes.Skin, platforms, AxisY)
	t.Rotation += m.VictorySpin

	if b.Grounded && math.Abs(b.Velocity.Y) < m.BounceThreshold {
		b.Velocity.Y = m.BounceSpeed
		b.Grounded = false
	}
}

// firstPlayer returns the tagged ball. Entities with a Player but no tag,
// transform or body are not the ball.
func firstPlayer(w *ecs.World) (ecs.Entity, *component.Player, *component.Transform, *component.PhysicsBody, bool) {
	var (
		found ecs.Entity
		p     *component.Player
		t     *component.Transform
		b     *component.PhysicsBody
	)
	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), component.PhysicsBodyComponent.Kind(),
		func(e ecs.Entity, pp *component.Player, tt *component.Transform, bb *component.PhysicsBody) {
			if p != nil || !ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
				return
			}
			found, p, t, b = e, pp, tt, bb
		})
	return found, p, t, b, p != nil
}
