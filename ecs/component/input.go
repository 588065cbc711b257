package component

// Input stores the per-tick input sample. Pressed fields are edges.
type Input struct {
	MoveLeft        bool
	MoveRight       bool
	JumpPressed     bool
	InteractPressed bool
}

var InputComponent = NewComponent[Input]()
