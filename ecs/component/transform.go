package component

// Transform is the top-left world position of an entity. Rotation is cosmetic.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
