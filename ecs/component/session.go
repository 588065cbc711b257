package component

// Outcome is how the current attempt ended, if it has.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeLose
	OutcomeWin
)

// Session is the world-state singleton for one level attempt.
type Session struct {
	Tick       uint64
	LevelIndex int
	LevelCount int
	LevelWidth float64
	// ViewHeight is the screen height falls are measured against.
	ViewHeight float64

	LasersActive bool
	LaserTimer   int

	Outcome Outcome
	// EndTimer counts down to the end panel once Outcome is set.
	EndTimer int
	EndShown bool
}

// HasNextLevel reports whether a level exists after the current one.
func (s *Session) HasNextLevel() bool {
	return s.LevelIndex < s.LevelCount-1
}

// Rules are the world tuning values systems read each tick.
type Rules struct {
	InteractRadius     float64
	RippleFrames       int
	BridgeOffsetX      float64
	BridgeTiles        int
	TileSize           float64
	LaserOffFrames     int
	ButtonTolerance    float64
	FallMargin         float64
	DeathPanelFrames   int
	VictoryPanelFrames int
	DeathShake         float64
}

var SessionComponent = NewComponent[Session]()
var RulesComponent = NewComponent[Rules]()
