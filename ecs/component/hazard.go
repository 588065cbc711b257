package component

import "github.com/jakecoffman/cp"

type HazardKind int

const (
	HazardSpike HazardKind = iota
	HazardLaser
)

// Hazard kills the player on overlap. Bounds is the drawn rectangle; the
// hitbox is derived from it with Inset margins.
type Hazard struct {
	Kind   HazardKind
	Bounds cp.BB
	Inset  HazardInset
}

type HazardInset struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

var HazardComponent = NewComponent[Hazard]()
