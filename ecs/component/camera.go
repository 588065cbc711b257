package component

// Camera is the horizontal scroll shared by both viewports.
type Camera struct {
	X          float64
	ViewWidth  float64
	ViewHeight float64
	// RightPad lets the camera scroll past the last column.
	RightPad float64

	Shake       float64
	ShakeDecay  float64
	ShakeOffset [2]float64
}

var CameraComponent = NewComponent[Camera]()
