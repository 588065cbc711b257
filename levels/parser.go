package levels

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/chrono/common"
)

var (
	ErrEmptyGrid       = errors.New("level grid is empty")
	ErrRaggedRow       = errors.New("level rows differ in length")
	ErrMissingSpawn    = errors.New("level has no spawn (S)")
	ErrMissingGoal     = errors.New("level has no goal (G)")
	ErrDuplicateMarker = errors.New("level marker appears more than once")
)

// Timeline membership of a parsed tile. Mirrors component.Timeline bits.
type Timeline uint8

const (
	Past Timeline = 1 << iota
	Present

	Both = Past | Present
)

type Tile struct {
	Bounds   cp.BB
	Timeline Timeline
}

// Geometry fixes how grid cells map to world rectangles.
type Geometry struct {
	TileSize       float64
	OriginX        float64
	OriginY        float64
	SpawnClearance float64
	PlateHeight    float64
	LaserWidth     float64
	LaserSpan      int
	LaserLift      int
}

// Layout is everything a level grid describes, in world coordinates.
type Layout struct {
	Rows, Cols int
	Width      float64

	Tiles   []Tile
	Spikes  []cp.BB
	Lasers  []cp.BB
	Buttons []cp.BB
	Lever   *cp.BB
	Goal    cp.BB
	Spawn   cp.Vector
}

// Platforms returns the tiles solid in timeline t.
func (l *Layout) Platforms(t Timeline) []cp.BB {
	var out []cp.BB
	for _, tile := range l.Tiles {
		if tile.Timeline&t != 0 {
			out = append(out, tile.Bounds)
		}
	}
	return out
}

// Parse converts character rows into a Layout. It is a pure function of its
// inputs, so parsing the same grid twice yields equal layouts.
//
//	1 past tile        2 present tile     3 tile in both
//	S spawn            G goal             L lever (one cell down, past support)
//	^ spike            | laser            B time button
//
// Spikes and lasers get a present support tile one cell down; buttons a past
// one. Any other character is empty.
func Parse(rows []string, geo Geometry) (*Layout, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	grid := make([][]rune, len(rows))
	for r, row := range rows {
		grid[r] = []rune(row)
		if len(grid[r]) != len(grid[0]) {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", r, len(grid[r]), len(grid[0]), ErrRaggedRow)
		}
	}

	ts := geo.TileSize
	layout := &Layout{
		Rows:  len(grid),
		Cols:  len(grid[0]),
		Width: float64(len(grid[0])) * ts,
	}

	var haveSpawn, haveGoal bool
	for r, row := range grid {
		for c, ch := range row {
			px := geo.OriginX + float64(c)*ts
			py := geo.OriginY + float64(r)*ts
			cell := common.Rect(px, py, ts, ts)
			below := common.Rect(px, py+ts, ts, ts)

			switch ch {
			case '1':
				layout.Tiles = append(layout.Tiles, Tile{Bounds: cell, Timeline: Past})
			case '2':
				layout.Tiles = append(layout.Tiles, Tile{Bounds: cell, Timeline: Present})
			case '3':
				layout.Tiles = append(layout.Tiles, Tile{Bounds: cell, Timeline: Both})
			case 'S':
				if haveSpawn {
					return nil, fmt.Errorf("spawn at row %d col %d: %w", r, c, ErrDuplicateMarker)
				}
				haveSpawn = true
				layout.Spawn = cp.Vector{X: px, Y: py - ts - geo.SpawnClearance}
			case 'G':
				if haveGoal {
					return nil, fmt.Errorf("goal at row %d col %d: %w", r, c, ErrDuplicateMarker)
				}
				haveGoal = true
				layout.Goal = cell
			case 'L':
				if layout.Lever != nil {
					return nil, fmt.Errorf("lever at row %d col %d: %w", r, c, ErrDuplicateMarker)
				}
				lever := below
				layout.Lever = &lever
				layout.Tiles = append(layout.Tiles, Tile{Bounds: below, Timeline: Past})
			case '^':
				layout.Spikes = append(layout.Spikes, cell)
				layout.Tiles = append(layout.Tiles, Tile{Bounds: below, Timeline: Present})
			case '|':
				beamX := px + ts/2 - geo.LaserWidth/2
				beamY := py - float64(geo.LaserLift)*ts
				layout.Lasers = append(layout.Lasers, common.Rect(beamX, beamY, geo.LaserWidth, float64(geo.LaserSpan)*ts))
				layout.Tiles = append(layout.Tiles, Tile{Bounds: below, Timeline: Present})
			case 'B':
				layout.Buttons = append(layout.Buttons, common.Rect(px, py+ts-geo.PlateHeight, ts, geo.PlateHeight))
				layout.Tiles = append(layout.Tiles, Tile{Bounds: below, Timeline: Past})
			}
		}
	}

	if !haveSpawn {
		return nil, ErrMissingSpawn
	}
	if !haveGoal {
		return nil, ErrMissingGoal
	}
	return layout, nil
}
