package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TPS is the fixed simulation rate; frame counts in specs assume it.
	TPS = 60
)
