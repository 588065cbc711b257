package component

// RippleEvent is a deferred world mutation. It fires once when Countdown
// reaches zero and is destroyed afterwards.
type RippleEvent struct {
	Countdown int
	// Tick is the session tick the event was queued on; it does not count
	// down during that tick.
	Tick   uint64
	Effect RippleEffect
}

// RippleEffect is a closed set of effects; see BuildBridge.
type RippleEffect interface {
	rippleEffect()
}

// BuildBridge appends TileCount present-timeline tiles in a row starting at
// (OriginX, OriginY).
type BuildBridge struct {
	OriginX   float64
	OriginY   float64
	TileSize  float64
	TileCount int
}

func (BuildBridge) rippleEffect() {}

var RippleEventComponent = NewComponent[RippleEvent]()
