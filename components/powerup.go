package components

import "github.com/yohamta/donburi"

// PowerUpType enumerates the power-up kinds.
type PowerUpType int

const (
	PowerUpSpeedBoost PowerUpType = iota
	PowerUpSlowAI
	PowerUpBigPaddle
	PowerUpFastBall
	PowerUpTypeCount // Must be last - used for array sizing
)

func (t PowerUpType) String() string {
	switch t {
	case PowerUpSpeedBoost:
		return "speed"
	case PowerUpSlowAI:
		return "slow_ai"
	case PowerUpBigPaddle:
		return "big_paddle"
	case PowerUpFastBall:
		return "fast_ball"
	}
	return "unknown"
}

// PowerUpData stores a falling power-up's state. Position and size live on
// the entity's collision object.
type PowerUpData struct {
	Type      PowerUpType
	Collected bool
}

var PowerUp = donburi.NewComponentType[PowerUpData]()
