package components

import "github.com/yohamta/donburi"

// EffectsData tracks active power-up effects per side. This is a singleton
// component on the court world. Countdowns is a fixed two-element array
// indexed by Side, each holding one slot per power-up type: a value > 0 is
// the remaining duration in ticks, 0 means inactive. Bounded by the
// enumeration size, so no allocation during play.
type EffectsData struct {
	Countdowns [SideCount][PowerUpTypeCount]int
}

var Effects = donburi.NewComponentType[EffectsData]()

// Activate arms (or re-arms) an effect for a side.
func (e *EffectsData) Activate(side Side, typ PowerUpType, duration int) {
	e.Countdowns[side][typ] = duration
}

// Has reports whether an effect is currently active for a side.
func (e *EffectsData) Has(side Side, typ PowerUpType) bool {
	return e.Countdowns[side][typ] > 0
}

// Clear removes all active effects.
func (e *EffectsData) Clear() {
	e.Countdowns = [SideCount][PowerUpTypeCount]int{}
}
