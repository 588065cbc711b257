package system

import (
	"github.com/milk9111/chrono/ecs"
	"github.com/milk9111/chrono/ecs/component"
)

// OutcomeSystem counts down after a death or a win and asks the host to
// show the end panel once.
type OutcomeSystem struct {
	hooks Hooks
}

func NewOutcomeSystem(hooks Hooks) *OutcomeSystem {
	return &OutcomeSystem{hooks: hooksOrNop(hooks)}
}

func (o *OutcomeSystem) Update(w *ecs.World) {
	s, _, ok := session(w)
	if !ok || s.Outcome == component.OutcomeNone || s.EndShown {
		return
	}

	s.EndTimer--
	if s.EndTimer > 0 {
		return
	}

	s.EndShown = true
	win := s.Outcome == component.OutcomeWin
	o.hooks.ShowEndPanel(win, win && s.HasNextLevel())
}
