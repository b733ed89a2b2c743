package components

import "github.com/yohamta/donburi"

// PhysicsData stores an entity's per-tick velocity.
type PhysicsData struct {
	SpeedX float64
	SpeedY float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
