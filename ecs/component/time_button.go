package component

import "github.com/jakecoffman/cp"

// TimeButton is a pressure plate. Bounds.B is the plate top.
type TimeButton struct {
	Bounds  cp.BB
	Pressed bool
}

var TimeButtonComponent = NewComponent[TimeButton]()
