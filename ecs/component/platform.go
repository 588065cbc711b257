package component

import "github.com/jakecoffman/cp"

// Timeline is a set of the two parallel layouts a platform can belong to.
type Timeline uint8

const (
	TimelinePast Timeline = 1 << iota
	TimelinePresent

	TimelineBoth = TimelinePast | TimelinePresent
)

func (t Timeline) Has(other Timeline) bool {
	return t&other != 0
}

// Valid reports whether t names at least one timeline and nothing else.
func (t Timeline) Valid() bool {
	return t != 0 && t&^TimelineBoth == 0
}

func (t Timeline) String() string {
	switch t {
	case TimelinePast:
		return "past"
	case TimelinePresent:
		return "present"
	case TimelineBoth:
		return "both"
	}
	return "none"
}

type Platform struct {
	Bounds   cp.BB
	Timeline Timeline
}

var PlatformComponent = NewComponent[Platform]()
