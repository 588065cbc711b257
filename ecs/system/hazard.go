package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/chrono/common"
	"github.com/milk9111/chrono/ecs"
	"github.com/milk9111/chrono/ecs/component"
)

// checkHazards runs the end-of-attempt checks for a living player. The first
// one to fire wins; the rest see a player that is no longer alive.
func (ps *PlayerSystem) checkHazards(w *ecs.World, s *component.Session, rules *component.Rules, p *component.Player, t *component.Transform, b *component.PhysicsBody) {
	box := playerBox(t, b)
	hb := p.Hitboxes

	if hazardHit(w, component.HazardSpike, common.Inset(box, hb.HazardInset, hb.HazardInset, hb.HazardInset, hb.HazardInset)) {
		ps.kill(w, s, rules, p, false)
	}
	if p.Status == component.PlayerAlive && s.LasersActive &&
		hazardHit(w, component.HazardLaser, common.Inset(box, hb.LaserInset, hb.LaserInset, hb.LaserInset, hb.LaserInset)) {
		ps.kill(w, s, rules, p, true)
	}
	if p.Status == component.PlayerAlive && t.Y > s.ViewHeight+rules.FallMargin {
		ps.kill(w, s, rules, p, false)
	}
	if p.Status == component.PlayerAlive && goalHit(w, box) {
		ps.win(s, rules, p)
	}
}

func hazardHit(w *ecs.World, kind component.HazardKind, hitbox cp.BB) bool {
	hit := false
	ecs.ForEach(w, component.HazardComponent.Kind(), func(_ ecs.Entity, h *component.Hazard) {
		if hit || h.Kind != kind {
			return
		}
		if common.Overlaps(hitbox, HazardHitbox(h)) {
			hit = true
		}
	})
	return hit
}

// HazardHitbox is the lethal part of a hazard.
func HazardHitbox(h *component.Hazard) cp.BB {
	return common.Inset(h.Bounds, h.Inset.Left, h.Inset.Top, h.Inset.Right, h.Inset.Bottom)
}

func goalHit(w *ecs.World, box cp.BB) bool {
	hit := false
	ecs.ForEach(w, component.GoalComponent.Kind(), func(_ ecs.Entity, g *component.Goal) {
		if common.Overlaps(box, g.Bounds) {
			hit = true
		}
	})
	return hit
}

func (ps *PlayerSystem) kill(w *ecs.World, s *component.Session, rules *component.Rules, p *component.Player, burned bool) {
	if p.Status != component.PlayerAlive {
		return
	}
	p.Status = component.PlayerDead
	p.Burned = burned
	s.Outcome = component.OutcomeLose
	s.EndTimer = rules.DeathPanelFrames

	if _, cam, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
		cam.Shake = rules.DeathShake
	}

	ps.hooks.PlaySound(component.SoundDeath)
	ps.hooks.OnDeath(burned)
}

// win marks the attempt won and unlocks the next level when this one was
// the furthest reached.
func (ps *PlayerSystem) win(s *component.Session, rules *component.Rules, p *component.Player) {
	if p.Status != component.PlayerAlive {
		return
	}
	p.Status = component.PlayerVictorious
	s.Outcome = component.OutcomeWin
	s.EndTimer = rules.VictoryPanelFrames

	ps.hooks.PlaySound(component.SoundWin)
	ps.hooks.OnVictory()

	if ps.progress == nil || !s.HasNextLevel() || s.LevelIndex != ps.progress.MaxUnlocked() {
		return
	}
	next := s.LevelIndex + 1
	if err := ps.progress.SetMaxUnlocked(next); err != nil {
		log.Printf("progress: unlock level %d: %v", next, err)
	}
	ps.hooks.OnLevelAdvance(next)
}
