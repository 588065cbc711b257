package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadSpec decodes a spec file over a copy of defaults, so fields missing
// from the file keep their default values.
func LoadSpec[T any](filename string, defaults T) (T, error) {
	data, err := Load(filename)
	if err != nil {
		return defaults, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	spec := defaults
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return defaults, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name     string       `yaml:"name"`
	Width    float64      `yaml:"width"`
	Height   float64      `yaml:"height"`
	Motion   MotionSpec   `yaml:"motion"`
	Hitboxes HitboxesSpec `yaml:"hitboxes"`
	Sprite   SpriteSpec   `yaml:"sprite"`
	Audio    []AudioSpec  `yaml:"audio"`
}

type MotionSpec struct {
	Gravity         float64 `yaml:"gravity"`
	Accel           float64 `yaml:"accel"`
	Friction        float64 `yaml:"friction"`
	MaxSpeed        float64 `yaml:"max_speed"`
	JumpForce       float64 `yaml:"jump_force"`
	StopThreshold   float64 `yaml:"stop_threshold"`
	SpinFactor      float64 `yaml:"spin_factor"`
	VictoryFriction float64 `yaml:"victory_friction"`
	VictorySpin     float64 `yaml:"victory_spin"`
	BounceSpeed     float64 `yaml:"bounce_speed"`
	BounceThreshold float64 `yaml:"bounce_threshold"`
}

type HitboxesSpec struct {
	Skin        float64 `yaml:"skin"`
	HazardInset float64 `yaml:"hazard_inset"`
	LaserInset  float64 `yaml:"laser_inset"`
}

func DefaultPlayerSpec() PlayerSpec {
	return PlayerSpec{
		Name:   "ball",
		Width:  36,
		Height: 36,
		Motion: MotionSpec{
			Gravity:         0.55,
			Accel:           2,
			Friction:        0.82,
			MaxSpeed:        7,
			JumpForce:       -13.5,
			StopThreshold:   0.1,
			SpinFactor:      0.15,
			VictoryFriction: 0.9,
			VictorySpin:     0.2,
			BounceSpeed:     -8,
			BounceThreshold: 1,
		},
		Hitboxes: HitboxesSpec{Skin: 2, HazardInset: 4, LaserInset: 8},
		Sprite:   SpriteSpec{Image: "ball.png", DrawSize: 44},
		Audio: []AudioSpec{
			{Name: "jump", File: "jump.wav", Volume: 0.3},
			{Name: "death", File: "lost_in_time.wav", Volume: 0.5},
			{Name: "win", File: "win.wav", Volume: 0.5},
		},
	}
}

func LoadPlayerSpec() (PlayerSpec, error) {
	return LoadSpec("player.yaml", DefaultPlayerSpec())
}

type WorldSpec struct {
	TileSize       float64     `yaml:"tile_size"`
	OriginX        float64     `yaml:"origin_x"`
	BottomMargin   float64     `yaml:"bottom_margin"`
	SpawnClearance float64     `yaml:"spawn_clearance"`
	FallMargin     float64     `yaml:"fall_margin"`
	Lever          LeverSpec   `yaml:"lever"`
	Button         ButtonSpec  `yaml:"button"`
	Laser          LaserSpec   `yaml:"laser"`
	Spike          SpikeSpec   `yaml:"spike"`
	Goal           GoalSpec    `yaml:"goal"`
	Outcome        OutcomeSpec `yaml:"outcome"`
	Camera         CameraSpec  `yaml:"camera"`
	Palette        PaletteSpec `yaml:"palette"`
}

type LeverSpec struct {
	InteractRadius float64 `yaml:"interact_radius"`
	RippleFrames   int     `yaml:"ripple_frames"`
	BridgeOffsetX  float64 `yaml:"bridge_offset_x"`
	BridgeTiles    int     `yaml:"bridge_tiles"`
}

type ButtonSpec struct {
	PlateHeight float64 `yaml:"plate_height"`
	Tolerance   float64 `yaml:"tolerance"`
	OffFrames   int     `yaml:"off_frames"`
}

type LaserSpec struct {
	Width     float64 `yaml:"width"`
	SpanTiles int     `yaml:"span_tiles"`
	LiftTiles int     `yaml:"lift_tiles"`
}

type SpikeSpec struct {
	Sprite SpriteSpec `yaml:"sprite"`
	InsetX float64    `yaml:"inset_x"`
	InsetY float64    `yaml:"inset_y"`
}

type GoalSpec struct {
	Sprite SpriteSpec `yaml:"sprite"`
}

type OutcomeSpec struct {
	DeathPanelFrames   int     `yaml:"death_panel_frames"`
	VictoryPanelFrames int     `yaml:"victory_panel_frames"`
	DeathShake         float64 `yaml:"death_shake"`
	ShakeDecay         float64 `yaml:"shake_decay"`
}

type CameraSpec struct {
	RightPad float64 `yaml:"right_pad"`
	CullPad  float64 `yaml:"cull_pad"`
}

type PaletteSpec struct {
	PastBg        *YAMLColor `yaml:"past_bg"`
	PastPlat      *YAMLColor `yaml:"past_plat"`
	PastBorder    *YAMLColor `yaml:"past_border"`
	PresentBg     *YAMLColor `yaml:"present_bg"`
	PresentPlat   *YAMLColor `yaml:"present_plat"`
	PresentBorder *YAMLColor `yaml:"present_border"`
	Player        *YAMLColor `yaml:"player"`
	Lever         *YAMLColor `yaml:"lever"`
	LeverActive   *YAMLColor `yaml:"lever_active"`
	Spike         *YAMLColor `yaml:"spike"`
	Goal          *YAMLColor `yaml:"goal"`
	Laser         *YAMLColor `yaml:"laser"`
	LaserCore     *YAMLColor `yaml:"laser_core"`
	LaserOff      *YAMLColor `yaml:"laser_off"`
	Button        *YAMLColor `yaml:"button"`
	ButtonActive  *YAMLColor `yaml:"button_active"`
}

func DefaultWorldSpec() WorldSpec {
	return WorldSpec{
		TileSize:       40,
		OriginX:        50,
		BottomMargin:   40,
		SpawnClearance: 10,
		FallMargin:     600,
		Lever:          LeverSpec{InteractRadius: 80, RippleFrames: 45, BridgeOffsetX: 150, BridgeTiles: 30},
		Button:         ButtonSpec{PlateHeight: 10, Tolerance: 10, OffFrames: 300},
		Laser:          LaserSpec{Width: 10, SpanTiles: 3, LiftTiles: 2},
		Spike:          SpikeSpec{Sprite: SpriteSpec{Image: "dont_touch.png"}, InsetX: 8, InsetY: 8},
		Goal:           GoalSpec{Sprite: SpriteSpec{Image: "goal.png"}},
		Outcome:        OutcomeSpec{DeathPanelFrames: 30, VictoryPanelFrames: 90, DeathShake: 20, ShakeDecay: 0.9},
		Camera:         CameraSpec{RightPad: 100, CullPad: 50},
		Palette: PaletteSpec{
			PastBg:        hex(0x1e, 0x29, 0x3b),
			PastPlat:      hex(0x3b, 0x82, 0xf6),
			PastBorder:    hex(0x60, 0xa5, 0xfa),
			PresentBg:     hex(0x3a, 0x1a, 0x20),
			PresentPlat:   hex(0xf2, 0x53, 0x49),
			PresentBorder: hex(0xff, 0x8a, 0x80),
			Player:        hex(0xff, 0xff, 0xff),
			Lever:         hex(0xfb, 0xbf, 0x24),
			LeverActive:   hex(0x4a, 0xde, 0x80),
			Spike:         hex(0xff, 0x00, 0x00),
			Goal:          hex(0x10, 0xb9, 0x81),
			Laser:         hex(0xff, 0x00, 0x00),
			LaserCore:     hex(0x55, 0x00, 0x00),
			LaserOff:      hex(0x22, 0x00, 0x00),
			Button:        hex(0x00, 0xff, 0xff),
			ButtonActive:  hex(0x00, 0x88, 0x88),
		},
	}
}

func LoadWorldSpec() (WorldSpec, error) {
	return LoadSpec("world.yaml", DefaultWorldSpec())
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

type SpriteSpec struct {
	Image    string  `yaml:"image"`
	DrawSize float64 `yaml:"draw_size"`
}

type YAMLColor struct {
	color.Color
}

func hex(r, g, b uint8) *YAMLColor {
	return &YAMLColor{Color: color.NRGBA{R: r, G: g, B: b, A: 0xff}}
}

// Or returns c, or fallback when c is unset.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	var rgba [4]uint8
	rgba[3] = 0xff
	for i := 0; i < len(s)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return fmt.Errorf("invalid color %s: %w", value.Value, err)
		}
		rgba[i] = v
	}

	c.Color = color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}
