package component

type PlayerStatus int

const (
	PlayerAlive PlayerStatus = iota
	PlayerDead
	PlayerVictorious
)

func (s PlayerStatus) String() string {
	switch s {
	case PlayerAlive:
		return "alive"
	case PlayerDead:
		return "dead"
	case PlayerVictorious:
		return "victorious"
	}
	return "unknown"
}

// Player holds the attempt state and the movement tuning of the ball.
type Player struct {
	Status PlayerStatus
	// Burned records a laser death; spikes and falls leave it false.
	Burned   bool
	Motion   Motion
	Hitboxes Hitboxes
}

// Motion is per-tick movement tuning. Velocities are pixels per tick.
type Motion struct {
	Gravity         float64
	Accel           float64
	Friction        float64
	MaxSpeed        float64
	JumpForce       float64
	StopThreshold   float64
	SpinFactor      float64
	VictoryFriction float64
	VictorySpin     float64
	BounceSpeed     float64
	BounceThreshold float64
}

// Hitboxes are margins shaved off the player box for each kind of check.
type Hitboxes struct {
	// Skin narrows the platform box horizontally so the ball does not snag
	// on seams between adjacent tiles.
	Skin        float64
	HazardInset float64
	LaserInset  float64
}

var PlayerComponent = NewComponent[Player]()

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()
