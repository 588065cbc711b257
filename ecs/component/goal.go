package component

import "github.com/jakecoffman/cp"

type Goal struct {
	Bounds cp.BB
}

var GoalComponent = NewComponent[Goal]()
