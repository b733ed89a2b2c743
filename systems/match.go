package systems

import (
	"os"

	"github.com/automoto/snap-pong/components"
	cfg "github.com/automoto/snap-pong/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMatch handles the in-court phase transitions: pause toggle and quit.
// Runs every tick, paused or not. Scoring and the win transition live in the
// ball system; the start phase lives in the menu scene.
func UpdateMatch(e *ecs.ECS) {
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionQuit).JustPressed {
		os.Exit(0)
	}

	match, ok := GetMatch(e)
	if !ok {
		return
	}

	if GetAction(input, cfg.ActionStartPause).JustPressed {
		switch match.State {
		case cfg.MatchStatePlaying:
			match.State = cfg.MatchStatePaused
		case cfg.MatchStatePaused:
			match.State = cfg.MatchStatePlaying
		}
	}
}

// GetMatch returns the singleton match context.
func GetMatch(e *ecs.ECS) (*components.MatchData, bool) {
	entry, ok := components.Match.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Match.Get(entry), true
}

// IsMatchPlaying returns true if the match is actively simulating.
func IsMatchPlaying(e *ecs.ECS) bool {
	match, ok := GetMatch(e)
	if !ok {
		return false
	}
	return match.State == cfg.MatchStatePlaying
}

// IsMatchOver returns true once a side has reached the win target.
func IsMatchOver(e *ecs.ECS) bool {
	match, ok := GetMatch(e)
	if !ok {
		return false
	}
	return match.State == cfg.MatchStateOver
}

// WithPlayingCheck wraps a gameplay system to run only while the match is in
// the playing state. Because the check happens per system, a win transition
// mid-tick stops the remaining gameplay systems for that tick.
func WithPlayingCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !IsMatchPlaying(e) {
			return
		}
		system(e)
	}
}

// GetEffects returns the singleton active-effects table.
func GetEffects(e *ecs.ECS) (*components.EffectsData, bool) {
	entry, ok := components.Effects.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Effects.Get(entry), true
}
