package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/chrono/ecs"
	"github.com/milk9111/chrono/ecs/component"
	"github.com/milk9111/chrono/levels"
	"github.com/milk9111/chrono/prefabs"
)

// ImageFunc resolves an asset name to an image, or nil when unavailable.
type ImageFunc func(name string) *ebiten.Image

// Options carries everything a level build needs besides the grid.
type Options struct {
	Player     prefabs.PlayerSpec
	World      prefabs.WorldSpec
	LevelIndex int
	LevelCount int
	ViewWidth  float64
	ViewHeight float64
	Images     ImageFunc
}

// DefaultOptions uses the built-in specs and the base resolution.
func DefaultOptions(levelIndex, levelCount int, viewWidth, viewHeight float64) Options {
	return Options{
		Player:     prefabs.DefaultPlayerSpec(),
		World:      prefabs.DefaultWorldSpec(),
		LevelIndex: levelIndex,
		LevelCount: levelCount,
		ViewWidth:  viewWidth,
		ViewHeight: viewHeight,
	}
}

func (o Options) image(name string) *ebiten.Image {
	if o.Images == nil || name == "" {
		return nil
	}
	return o.Images(name)
}

// GeometryFor anchors a grid of the given row count to the bottom of the view.
func GeometryFor(spec prefabs.WorldSpec, rows int, viewHeight float64) levels.Geometry {
	return levels.Geometry{
		TileSize:       spec.TileSize,
		OriginX:        spec.OriginX,
		OriginY:        viewHeight - float64(rows)*spec.TileSize - spec.BottomMargin,
		SpawnClearance: spec.SpawnClearance,
		PlateHeight:    spec.Button.PlateHeight,
		LaserWidth:     spec.Laser.Width,
		LaserSpan:      spec.Laser.SpanTiles,
		LaserLift:      spec.Laser.LiftTiles,
	}
}

// BuildLevel parses rows and populates w. A malformed grid leaves w untouched.
func BuildLevel(w *ecs.World, rows []string, opts Options) (*levels.Layout, error) {
	layout, err := levels.Parse(rows, GeometryFor(opts.World, len(rows), opts.ViewHeight))
	if err != nil {
		return nil, fmt.Errorf("parse level %d: %w", opts.LevelIndex, err)
	}
	if err := LoadLevelToWorld(w, layout, opts); err != nil {
		return nil, err
	}
	return layout, nil
}

// LoadLevelToWorld creates one entity per object in layout, plus the session,
// rules, camera and player singletons.
func LoadLevelToWorld(w *ecs.World, layout *levels.Layout, opts Options) error {
	if _, err := NewSession(w, layout, opts); err != nil {
		return err
	}
	if _, err := NewCamera(w, opts); err != nil {
		return err
	}

	for _, tile := range layout.Tiles {
		if _, err := NewPlatform(w, tile.Bounds, component.Timeline(tile.Timeline)); err != nil {
			return err
		}
	}

	spikeImg := opts.image(opts.World.Spike.Sprite.Image)
	for _, bb := range layout.Spikes {
		if _, err := NewSpike(w, bb, opts.World.Spike, spikeImg); err != nil {
			return err
		}
	}
	for _, bb := range layout.Lasers {
		if _, err := NewLaser(w, bb); err != nil {
			return err
		}
	}
	for _, bb := range layout.Buttons {
		if _, err := NewTimeButton(w, bb); err != nil {
			return err
		}
	}
	if layout.Lever != nil {
		if _, err := NewLever(w, *layout.Lever); err != nil {
			return err
		}
	}
	if _, err := NewGoal(w, layout.Goal, opts.image(opts.World.Goal.Sprite.Image)); err != nil {
		return err
	}

	if _, err := NewPlayerAt(w, layout.Spawn.X, layout.Spawn.Y, opts.Player, opts.image(opts.Player.Sprite.Image)); err != nil {
		return err
	}
	return nil
}
