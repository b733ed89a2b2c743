package components

import "github.com/yohamta/donburi"

// Side identifies a paddle/player slot.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideCount // Must be last - used for array sizing
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// PaddleData stores per-paddle state beyond its collision object.
// Height lives on the resolv object; BaseHeight is what power-up
// reversion restores.
type PaddleData struct {
	Side       Side
	BaseHeight float64
}

var Paddle = donburi.NewComponentType[PaddleData]()
