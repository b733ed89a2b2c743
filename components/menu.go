package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MenuData stores start screen animation state. The setup selections
// themselves live in SetupData, shared with the ebitenui panel.
type MenuData struct {
	Pulse      *gween.Sequence // looping brightness tween for the start prompt
	PulseValue float32         // last sampled value, read by the renderer
}

var Menu = donburi.NewComponentType[MenuData]()
