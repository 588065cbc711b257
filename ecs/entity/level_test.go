package entity

import (
	"errors"
	"testing"

	"github.com/milk9111/chrono/common"
	"github.com/milk9111/chrono/ecs"
	"github.com/milk9111/chrono/ecs/component"
	"github.com/milk9111/chrono/levels"
	"github.com/milk9111/chrono/prefabs"
)

func TestGeometryForAnchorsToBottom(t *testing.T) {
	geo := GeometryFor(prefabs.DefaultWorldSpec(), 12, 720)
	if geo.OriginY != 720-12*40-40 {
		t.Fatalf("OriginY = %v, want %v", geo.OriginY, 720-12*40-40)
	}
	if geo.OriginX != 50 || geo.TileSize != 40 || geo.LaserSpan != 3 {
		t.Fatalf("unexpected geometry %+v", geo)
	}
}

func TestBuildLevelPopulatesWorld(t *testing.T) {
	w := ecs.NewWorld()
	rows := []string{
		"S.L.^|B.G",
		"333333333",
	}
	layout, err := BuildLevel(w, rows, DefaultOptions(1, 3, 1280, 720))
	if err != nil {
		t.Fatalf("BuildLevel: %v", err)
	}

	if got, want := ecs.Count(w, component.PlatformComponent.Kind()), len(layout.Tiles); got != want {
		t.Fatalf("platforms = %d, want %d", got, want)
	}
	if got := ecs.Count(w, component.HazardComponent.Kind()); got != 2 {
		t.Fatalf("hazards = %d, want 2", got)
	}
	if got := ecs.Count(w, component.TimeButtonComponent.Kind()); got != 1 {
		t.Fatalf("buttons = %d, want 1", got)
	}
	if got := ecs.Count(w, component.LeverComponent.Kind()); got != 1 {
		t.Fatalf("levers = %d, want 1", got)
	}

	_, session, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		t.Fatalf("no session")
	}
	if session.LevelIndex != 1 || session.LevelCount != 3 || !session.LasersActive || session.Outcome != component.OutcomeNone {
		t.Fatalf("unexpected session %+v", session)
	}
	if session.LevelWidth != 9*40 {
		t.Fatalf("LevelWidth = %v", session.LevelWidth)
	}

	pe, _, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		t.Fatalf("no player")
	}
	tr, _ := ecs.Get(w, pe, component.TransformComponent.Kind())
	if tr.X != layout.Spawn.X || tr.Y != layout.Spawn.Y {
		t.Fatalf("player at (%v,%v), want spawn %+v", tr.X, tr.Y, layout.Spawn)
	}
	body, _ := ecs.Get(w, pe, component.PhysicsBodyComponent.Kind())
	if body.Width != 36 || body.Height != 36 || body.Velocity.X != 0 || body.Velocity.Y != 0 {
		t.Fatalf("unexpected body %+v", body)
	}

	var spike *component.Hazard
	ecs.ForEach(w, component.HazardComponent.Kind(), func(_ ecs.Entity, h *component.Hazard) {
		if h.Kind == component.HazardSpike {
			spike = h
		}
	})
	if spike == nil || spike.Inset.Left != 8 || spike.Inset.Top != 8 || spike.Inset.Bottom != 0 {
		t.Fatalf("unexpected spike %+v", spike)
	}
}

func TestBuildLevelRejectsBadGrid(t *testing.T) {
	w := ecs.NewWorld()
	_, err := BuildLevel(w, []string{"S...", "3333"}, DefaultOptions(0, 1, 1280, 720))
	if !errors.Is(err, levels.ErrMissingGoal) {
		t.Fatalf("err = %v, want ErrMissingGoal", err)
	}
	if n := len(ecs.Entities(w)); n != 0 {
		t.Fatalf("world has %d entities after failed build", n)
	}
}

func TestBuildEmbeddedLevels(t *testing.T) {
	for i := 0; i < levels.Count(); i++ {
		src, err := levels.Load(i)
		if err != nil {
			t.Fatalf("Load(%d): %v", i, err)
		}
		w := ecs.NewWorld()
		if _, err := BuildLevel(w, src.Rows, DefaultOptions(i, levels.Count(), common.BaseWidth, common.BaseHeight)); err != nil {
			t.Fatalf("BuildLevel(%d): %v", i, err)
		}
	}
}

func TestNewPlatformRejectsEmptyTimeline(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := NewPlatform(w, common.Rect(0, 0, 40, 40), 0); err == nil {
		t.Fatalf("expected error for empty timeline")
	}
}

func TestNewAudioWithoutLoaderIsSilent(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewAudio(w, prefabs.DefaultPlayerSpec().Audio, nil)
	if err != nil {
		t.Fatalf("NewAudio: %v", err)
	}
	a, ok := ecs.Get(w, e, component.AudioComponent.Kind())
	if !ok || len(a.Names) != 3 || a.Players[0] != nil {
		t.Fatalf("unexpected audio %+v", a)
	}
	if !a.Request(component.SoundJump) || !a.Play[0] {
		t.Fatalf("jump request not recorded")
	}
	if a.Request("missing") {
		t.Fatalf("unknown sound accepted")
	}
}

func TestNewRippleEventRejectsNilEffect(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := NewRippleEvent(w, 0, 45, nil); err == nil {
		t.Fatalf("expected an error for a nil effect")
	}
	if n := ecs.Count(w, component.RippleEventComponent.Kind()); n != 0 {
		t.Fatalf("rejected event left %d ripple components", n)
	}
	if _, err := NewRippleEvent(w, 3, 45, component.BuildBridge{TileSize: 40, TileCount: 2}); err != nil {
		t.Fatalf("NewRippleEvent: %v", err)
	}
}
