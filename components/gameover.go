package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GameOverOption represents the game over screen selections
type GameOverOption int

const (
	GameOverRematch GameOverOption = iota
	GameOverMenu
)

// GameOverData stores the game over screen selection and prompt animation
type GameOverData struct {
	SelectedOption GameOverOption
	Pulse          *gween.Sequence
	PulseValue     float32
}

var GameOver = donburi.NewComponentType[GameOverData]()
