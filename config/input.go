package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionLeftPaddleUp
	ActionLeftPaddleDown
	ActionRightPaddleUp
	ActionRightPaddleDown
	ActionStartPause
	ActionToggleMode
	ActionDifficulty1
	ActionDifficulty2
	ActionDifficulty3
	ActionWinTargetUp
	ActionWinTargetDown
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the key bindings for an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionLeftPaddleUp: {
				Keys: []ebiten.Key{ebiten.KeyW},
			},
			ActionLeftPaddleDown: {
				Keys: []ebiten.Key{ebiten.KeyS},
			},
			ActionRightPaddleUp: {
				Keys: []ebiten.Key{ebiten.KeyUp},
			},
			ActionRightPaddleDown: {
				Keys: []ebiten.Key{ebiten.KeyDown},
			},
			ActionStartPause: {
				Keys: []ebiten.Key{ebiten.KeySpace},
			},
			ActionToggleMode: {
				Keys: []ebiten.Key{ebiten.KeyM},
			},
			ActionDifficulty1: {
				Keys: []ebiten.Key{ebiten.KeyDigit1},
			},
			ActionDifficulty2: {
				Keys: []ebiten.Key{ebiten.KeyDigit2},
			},
			ActionDifficulty3: {
				Keys: []ebiten.Key{ebiten.KeyDigit3},
			},
			ActionWinTargetUp: {
				Keys: []ebiten.Key{ebiten.KeyEqual, ebiten.KeyKPAdd},
			},
			ActionWinTargetDown: {
				Keys: []ebiten.Key{ebiten.KeyMinus, ebiten.KeyKPSubtract},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
		},
	}
}
