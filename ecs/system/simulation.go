package system

import "github.com/milk9111/chrono/ecs"

// NewSimulation returns the fixed per-tick update order. Input sampling is
// left to the caller so the simulation can run headless.
func NewSimulation(hooks Hooks, progress ProgressStore) *ecs.Scheduler {
	return ecs.NewScheduler(
		NewTimerSystem(),
		NewOutcomeSystem(hooks),
		NewLeverSystem(),
		NewPlayerSystem(hooks, progress),
		NewRippleSystem(),
		NewCameraSystem(),
	)
}
