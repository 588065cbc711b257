package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/chrono/common"
	"github.com/milk9111/chrono/ecs"
	"github.com/milk9111/chrono/ecs/component"
)

// Hooks is how the simulation reports to whoever hosts it. All calls happen
// on the update goroutine.
type Hooks interface {
	OnDeath(burned bool)
	OnVictory()
	OnLevelAdvance(newIndex int)
	ShowEndPanel(win, hasNextLevel bool)
	PlaySound(kind component.Sound)
}

// ProgressStore persists the highest unlocked level index.
type ProgressStore interface {
	MaxUnlocked() int
	SetMaxUnlocked(index int) error
}

// NopHooks ignores every callback.
type NopHooks struct{}

func (NopHooks) OnDeath(bool)              {}
func (NopHooks) OnVictory()                {}
func (NopHooks) OnLevelAdvance(int)        {}
func (NopHooks) ShowEndPanel(bool, bool)   {}
func (NopHooks) PlaySound(component.Sound) {}

func hooksOrNop(h Hooks) Hooks {
	if h == nil {
		return NopHooks{}
	}
	return h
}

// session returns the session singleton and its rules.
func session(w *ecs.World) (*component.Session, *component.Rules, bool) {
	e, s, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return nil, nil, false
	}
	r, ok := ecs.Get(w, e, component.RulesComponent.Kind())
	if !ok {
		return nil, nil, false
	}
	return s, r, true
}

// input returns the current input sample, or a zero sample when none exists.
func input(w *ecs.World) component.Input {
	if _, in, ok := ecs.First(w, component.InputComponent.Kind()); ok {
		return *in
	}
	return component.Input{}
}

// playerBox returns the player's full box from its transform and body.
func playerBox(t *component.Transform, b *component.PhysicsBody) cp.BB {
	return common.Rect(t.X, t.Y, b.Width, b.Height)
}
