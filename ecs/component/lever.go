package component

import "github.com/jakecoffman/cp"

// Lever flips once per attempt and schedules a ripple.
type Lever struct {
	Bounds cp.BB
	Active bool
}

var LeverComponent = NewComponent[Lever]()
