package tags

import "github.com/yohamta/donburi"

var (
	Paddle  = donburi.NewTag().SetName("Paddle")
	Ball    = donburi.NewTag().SetName("Ball")
	PowerUp = donburi.NewTag().SetName("PowerUp")
)

// Resolv tags for collision objects
const (
	ResolvPaddle  = "paddle"
	ResolvBall    = "ball"
	ResolvPowerUp = "powerup"
)
