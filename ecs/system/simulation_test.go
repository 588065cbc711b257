package system

import (
	"math"
	"testing"

	"github.com/milk9111/chrono/common"
	"github.com/milk9111/chrono/ecs"
	"github.com/milk9111/chrono/ecs/component"
	"github.com/milk9111/chrono/ecs/entity"
	"github.com/milk9111/chrono/progress"
)

type recorder struct {
	deaths    []bool
	victories int
	advances  []int
	panels    [][2]bool
	sounds    []component.Sound
}

func (r *recorder) OnDeath(burned bool)            { r.deaths = append(r.deaths, burned) }
func (r *recorder) OnVictory()                     { r.victories++ }
func (r *recorder) OnLevelAdvance(newIndex int)    { r.advances = append(r.advances, newIndex) }
func (r *recorder) ShowEndPanel(win, next bool)    { r.panels = append(r.panels, [2]bool{win, next}) }
func (r *recorder) PlaySound(kind component.Sound) { r.sounds = append(r.sounds, kind) }

type harness struct {
	t     *testing.T
	w     *ecs.World
	sched *ecs.Scheduler
	hooks *recorder
	store *progress.MemoryStore
}

// newHarness builds rows as level index of count on a 1280x720 screen. Row
// r has its top at 720 - len(rows)*40 - 40 + r*40.
func newHarness(t *testing.T, rows []string, index, count, unlocked int) *harness {
	t.Helper()
	w := ecs.NewWorld()
	if _, err := entity.BuildLevel(w, rows, entity.DefaultOptions(index, count, common.BaseWidth, common.BaseHeight)); err != nil {
		t.Fatalf("BuildLevel: %v", err)
	}
	h := &harness{t: t, w: w, hooks: &recorder{}, store: &progress.MemoryStore{Unlocked: unlocked}}
	h.sched = NewSimulation(h.hooks, h.store)
	return h
}

func (h *harness) step(in component.Input) {
	_, cur, ok := ecs.First(h.w, component.InputComponent.Kind())
	if !ok {
		h.t.Fatalf("no input component")
	}
	*cur = in
	h.sched.Update(h.w)
}

func (h *harness) run(n int, in component.Input) {
	for i := 0; i < n; i++ {
		h.step(in)
	}
}

func (h *harness) player() (*component.Player, *component.Transform, *component.PhysicsBody) {
	_, p, t, b, ok := firstPlayer(h.w)
	if !ok {
		h.t.Fatalf("no player")
	}
	return p, t, b
}

func (h *harness) session() *component.Session {
	s, _, ok := session(h.w)
	if !ok {
		h.t.Fatalf("no session")
	}
	return s
}

// place puts the player at (x, y) at rest.
func (h *harness) place(x, y float64) {
	_, t, b := h.player()
	t.X, t.Y = x, y
	b.Velocity.X, b.Velocity.Y = 0, 0
}

func (h *harness) presentPlatforms() int {
	n := 0
	ecs.ForEach(h.w, component.PlatformComponent.Kind(), func(_ ecs.Entity, p *component.Platform) {
		if p.Timeline.Has(component.TimelinePresent) {
			n++
		}
	})
	return n
}

var (
	idle       = component.Input{}
	holdRight  = component.Input{MoveRight: true}
	interact   = component.Input{InteractPressed: true}
	jumpPress  = component.Input{JumpPressed: true}
	groundRowY = 640.0 // top of the last row in a three-row level
)

func TestRunToGoalWins(t *testing.T) {
	h := newHarness(t, []string{
		"............................",
		"S......................G....",
		"3333333333333333333333333333",
	}, 0, 3, 0)

	for i := 0; i < 600; i++ {
		h.step(holdRight)
		p, _, b := h.player()
		if v := b.Velocity.X; v > 7 || v < -7 {
			t.Fatalf("tick %d: |vx| = %v exceeds max speed", i, v)
		}
		if p.Status == component.PlayerVictorious {
			break
		}
	}

	p, _, _ := h.player()
	if p.Status != component.PlayerVictorious {
		t.Fatalf("status = %v, want victorious", p.Status)
	}
	if h.hooks.victories != 1 || len(h.hooks.deaths) != 0 {
		t.Fatalf("hooks = %+v", h.hooks)
	}
	if h.store.MaxUnlocked() != 1 || len(h.hooks.advances) != 1 || h.hooks.advances[0] != 1 {
		t.Fatalf("progress = %d advances = %v", h.store.MaxUnlocked(), h.hooks.advances)
	}
	if s := h.session(); s.Outcome != component.OutcomeWin || s.EndTimer != 90 {
		t.Fatalf("session = %+v", s)
	}
}

func TestVictoryIsTerminal(t *testing.T) {
	h := newHarness(t, []string{
		"......",
		"S.G...",
		"333333",
	}, 2, 3, 2)
	h.place(100, groundRowY-36)
	h.step(idle)

	p, tr, _ := h.player()
	if p.Status != component.PlayerVictorious {
		t.Fatalf("status = %v, want victorious", p.Status)
	}
	x := tr.X

	bounced := false
	for i := 0; i < 120; i++ {
		h.step(holdRight)
		p, tr, b := h.player()
		if p.Status != component.PlayerVictorious {
			t.Fatalf("tick %d: left victorious state: %v", i, p.Status)
		}
		if tr.X != x {
			t.Fatalf("tick %d: x moved during victory", i)
		}
		if b.Velocity.Y < 0 {
			bounced = true
		}
	}
	if !bounced {
		t.Fatalf("victory never bounced")
	}
	if len(h.hooks.panels) != 1 || h.hooks.panels[0] != [2]bool{true, false} {
		t.Fatalf("panels = %v, want one win panel without next level", h.hooks.panels)
	}
	if h.store.MaxUnlocked() != 2 || len(h.hooks.advances) != 0 {
		t.Fatalf("last level must not advance progress")
	}
}

func TestProgressionOnlyFromFrontier(t *testing.T) {
	rows := []string{
		"......",
		"S.G...",
		"333333",
	}
	cases := []struct {
		name         string
		index        int
		unlocked     int
		wantUnlocked int
		wantAdvance  bool
	}{
		{"frontier", 0, 0, 1, true},
		{"replay_old_level", 0, 2, 2, false},
		{"middle_frontier", 1, 1, 2, true},
		{"last_level", 2, 2, 2, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := newHarness(t, rows, c.index, 3, c.unlocked)
			h.place(100, groundRowY-36)
			h.step(idle)

			if got := h.store.MaxUnlocked(); got != c.wantUnlocked {
				t.Fatalf("MaxUnlocked = %d, want %d", got, c.wantUnlocked)
			}
			if got := len(h.hooks.advances) == 1; got != c.wantAdvance {
				t.Fatalf("advances = %v", h.hooks.advances)
			}
		})
	}
}

func TestEndPanelTiming(t *testing.T) {
	t.Run("death", func(t *testing.T) {
		h := newHarness(t, []string{
			"..........",
			"S..^....G.",
			"3333333333",
		}, 0, 3, 0)
		h.place(172, groundRowY-36)
		h.step(idle)
		if len(h.hooks.deaths) != 1 {
			t.Fatalf("expected a death")
		}

		h.run(29, idle)
		if len(h.hooks.panels) != 0 {
			t.Fatalf("panel shown early")
		}
		h.step(idle)
		if len(h.hooks.panels) != 1 || h.hooks.panels[0] != [2]bool{false, false} {
			t.Fatalf("panels = %v", h.hooks.panels)
		}
		h.run(10, idle)
		if len(h.hooks.panels) != 1 {
			t.Fatalf("panel shown twice")
		}
	})

	t.Run("victory", func(t *testing.T) {
		h := newHarness(t, []string{
			"......",
			"S.G...",
			"333333",
		}, 0, 3, 0)
		h.place(100, groundRowY-36)
		h.step(idle)
		h.run(89, idle)
		if len(h.hooks.panels) != 0 {
			t.Fatalf("panel shown early")
		}
		h.step(idle)
		if len(h.hooks.panels) != 1 || h.hooks.panels[0] != [2]bool{true, true} {
			t.Fatalf("panels = %v", h.hooks.panels)
		}
	})
}

func TestHazards(t *testing.T) {
	cases := []struct {
		name       string
		row        string
		lasersOff  bool
		x, y       float64
		wantStatus component.PlayerStatus
		wantBurned bool
	}{
		{"spike", "S..^....G.", false, 172, groundRowY - 36, component.PlayerDead, false},
		{"spike_graze", "S..^....G.", false, 136, groundRowY - 36, component.PlayerAlive, false},
		{"laser", "S..|....G.", false, 172, groundRowY - 36, component.PlayerDead, true},
		{"laser_off", "S..|....G.", true, 172, groundRowY - 36, component.PlayerAlive, false},
		{"fall", "S.......G.", false, 300, common.BaseHeight + 601, component.PlayerDead, false},
		// Spike at x 170..210 and goal at 210..250 both touched in one tick.
		{"spike_beats_goal", "S..^G.....", false, 180, groundRowY - 36, component.PlayerDead, false},
		// Spike hitbox ends at 202, beam starts at 225; both hit at x 197.5.
		{"spike_beats_laser", "S..^|...G.", false, 197.5, groundRowY - 36, component.PlayerDead, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := newHarness(t, []string{"..........", c.row, "3333333333"}, 0, 3, 0)
			if c.lasersOff {
				s := h.session()
				s.LasersActive = false
				s.LaserTimer = 100
			}
			h.place(c.x, c.y)
			h.step(idle)

			p, _, _ := h.player()
			if p.Status != c.wantStatus || p.Burned != c.wantBurned {
				t.Fatalf("status=%v burned=%v, want %v %v", p.Status, p.Burned, c.wantStatus, c.wantBurned)
			}
			if c.wantStatus == component.PlayerDead {
				if h.hooks.victories != 0 || h.session().Outcome == component.OutcomeWin {
					t.Fatalf("dead player also won: victories=%d", h.hooks.victories)
				}
				if len(h.hooks.deaths) != 1 || h.hooks.deaths[0] != c.wantBurned {
					t.Fatalf("deaths = %v", h.hooks.deaths)
				}
				if h.session().Outcome != component.OutcomeLose {
					t.Fatalf("outcome = %v", h.session().Outcome)
				}
				_, cam, _ := ecs.First(h.w, component.CameraComponent.Kind())
				if cam.Shake <= 0 {
					t.Fatalf("death did not shake the camera")
				}
			}
		})
	}
}

func TestDeadPlayerDoesNotMove(t *testing.T) {
	h := newHarness(t, []string{"..........", "S..^....G.", "3333333333"}, 0, 3, 0)
	h.place(172, groundRowY-36)
	h.step(idle)
	_, tr, _ := h.player()
	x, y := tr.X, tr.Y

	h.run(20, holdRight)
	if tr.X != x || tr.Y != y {
		t.Fatalf("dead player moved from (%v,%v) to (%v,%v)", x, y, tr.X, tr.Y)
	}
	if len(h.hooks.deaths) != 1 {
		t.Fatalf("died %d times", len(h.hooks.deaths))
	}
}

func TestJumpIsEdgeTriggered(t *testing.T) {
	h := newHarness(t, []string{"..........", "S.......G.", "3333333333"}, 0, 3, 0)
	h.run(60, idle)
	_, _, b := h.player()
	if !b.Grounded {
		t.Fatalf("player did not land")
	}

	h.step(jumpPress)
	if b.Grounded || math.Abs(b.Velocity.Y-(-13.5+0.55)) > 1e-9 {
		t.Fatalf("after jump: grounded=%v vy=%v", b.Grounded, b.Velocity.Y)
	}
	if n := len(h.hooks.sounds); n != 1 || h.hooks.sounds[0] != component.SoundJump {
		t.Fatalf("sounds = %v", h.hooks.sounds)
	}

	h.step(jumpPress)
	if len(h.hooks.sounds) != 1 {
		t.Fatalf("jumped again in the air")
	}
}

func TestLeverRipple(t *testing.T) {
	h := newHarness(t, []string{
		"................",
		"SL.............G",
		"3333333333333333",
	}, 0, 3, 0)
	h.run(60, idle)

	before := h.presentPlatforms()
	h.step(interact)
	h.step(interact)

	if got := Pending(h.w); got != 1 {
		t.Fatalf("pending ripples = %d, want 1", got)
	}
	_, lever, _ := ecs.First(h.w, component.LeverComponent.Kind())
	if !lever.Active {
		t.Fatalf("lever not active")
	}

	// The first interact was one tick ago; the event fires 45 ticks after it.
	h.run(43, idle)
	if h.presentPlatforms() != before {
		t.Fatalf("bridge appeared early")
	}
	h.step(idle)
	if got := h.presentPlatforms() - before; got != 30 {
		t.Fatalf("bridge added %d present tiles, want 30", got)
	}
	if Pending(h.w) != 0 {
		t.Fatalf("ripple event not discarded")
	}

	want := make(map[[2]float64]bool, 30)
	for i := 0; i < 30; i++ {
		want[[2]float64{lever.Bounds.L + 150 + float64(i)*40, lever.Bounds.B + 40}] = true
	}
	found := 0
	ecs.ForEach(h.w, component.PlatformComponent.Kind(), func(_ ecs.Entity, p *component.Platform) {
		if p.Timeline == component.TimelinePresent && want[[2]float64{p.Bounds.L, p.Bounds.B}] {
			found++
		}
	})
	if found != 30 {
		t.Fatalf("found %d bridge tiles at the expected positions", found)
	}

	h.run(100, interact)
	if Pending(h.w) != 0 || h.presentPlatforms()-before != 30 {
		t.Fatalf("lever fired a second time")
	}
}

func TestLeverOutOfReach(t *testing.T) {
	h := newHarness(t, []string{
		"................",
		"S.........L....G",
		"3333333333333333",
	}, 0, 3, 0)
	h.run(60, idle)
	h.step(interact)
	if Pending(h.w) != 0 {
		t.Fatalf("lever triggered from too far away")
	}
}

func TestButtonDisablesLasers(t *testing.T) {
	h := newHarness(t, []string{
		"..............",
		"S.B.B........G",
		"33.3.333333333",
	}, 0, 3, 0)

	// Foot point over the first plate, standing on its support tile. The
	// foot sits exactly the tolerance below the plate top.
	h.place(132, groundRowY-36)
	h.step(idle)
	_, ptr, pb := h.player()
	var plateTop float64
	ecs.ForEach(h.w, component.TimeButtonComponent.Kind(), func(_ ecs.Entity, b *component.TimeButton) {
		if plateTop == 0 {
			plateTop = b.Bounds.B
		}
	})
	if gap := ptr.Y + pb.Height - plateTop; gap != 10 {
		t.Fatalf("foot to plate gap = %v, want 10", gap)
	}
	s := h.session()
	if s.LasersActive || s.LaserTimer != 300 {
		t.Fatalf("after press: active=%v timer=%d", s.LasersActive, s.LaserTimer)
	}

	h.place(300, groundRowY-36)
	h.run(299, idle)
	if s.LasersActive {
		t.Fatalf("lasers came back early")
	}
	h.step(idle)
	if !s.LasersActive || s.LaserTimer != 0 {
		t.Fatalf("lasers not restored: active=%v timer=%d", s.LasersActive, s.LaserTimer)
	}
	ecs.ForEach(h.w, component.TimeButtonComponent.Kind(), func(_ ecs.Entity, b *component.TimeButton) {
		if b.Pressed {
			t.Fatalf("button still pressed after timer ran out")
		}
	})
}

func TestSecondButtonRestartsTimer(t *testing.T) {
	h := newHarness(t, []string{
		"..............",
		"S.B.B........G",
		"33.3.333333333",
	}, 0, 3, 0)

	h.place(132, groundRowY-36)
	h.step(idle)
	h.place(300, groundRowY-36)
	h.run(100, idle)

	s := h.session()
	if s.LaserTimer != 200 {
		t.Fatalf("timer = %d, want 200", s.LaserTimer)
	}

	h.place(212, groundRowY-36)
	h.step(idle)
	if s.LaserTimer != 300 || s.LasersActive {
		t.Fatalf("second press: timer=%d active=%v", s.LaserTimer, s.LasersActive)
	}

	h.place(300, groundRowY-36)
	h.run(299, idle)
	if s.LasersActive {
		t.Fatalf("lasers came back before the restarted countdown")
	}
	h.step(idle)
	if !s.LasersActive {
		t.Fatalf("lasers not restored after restarted countdown")
	}
}

func TestFirstPlayerNeedsTag(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{})
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{})
	_ = ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: 36, Height: 36})
	if _, _, _, _, ok := firstPlayer(w); ok {
		t.Fatalf("untagged entity treated as the player")
	}

	_ = ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	if got, _, _, _, ok := firstPlayer(w); !ok || got != e {
		t.Fatalf("firstPlayer = %v %v, want %v", got, ok, e)
	}
}
