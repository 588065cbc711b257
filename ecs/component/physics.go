package component

import "github.com/jakecoffman/cp"

// PhysicsBody is the moving box of an entity. Only the player has one.
type PhysicsBody struct {
	Velocity cp.Vector
	Width    float64
	Height   float64
	Grounded bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
