package systems

import (
	"testing"

	"github.com/automoto/snap-pong/components"
	cfg "github.com/automoto/snap-pong/config"
	"github.com/automoto/snap-pong/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// TestAITracksBall verifies the AI paddle steps toward the ball center at
// its difficulty preset speed.
func TestAITracksBall(t *testing.T) {
	rng := testRNG()
	e := newCourtECS(t, rng)

	ballObj, _ := ballParts(e)
	entry, _ := factory.PaddleBySide(e, components.SideRight)
	paddleObj := components.Object.Get(entry)

	paddleObj.Y = 100
	ballObj.Y = 300

	before := paddleObj.Y
	UpdateAI(e)

	want := before + cfg.AISpeed(cfg.AI.DefaultDifficulty)
	if paddleObj.Y != want {
		t.Fatalf("paddle Y = %v, want %v", paddleObj.Y, want)
	}
}

// TestAIDisabledInTwoPlayerMode verifies the AI never moves the right paddle
// when both paddles are human.
func TestAIDisabledInTwoPlayerMode(t *testing.T) {
	rng := testRNG()
	e := newCourtECS(t, rng)
	match, _ := GetMatch(e)
	match.TwoPlayer = true

	ballObj, _ := ballParts(e)
	entry, _ := factory.PaddleBySide(e, components.SideRight)
	paddleObj := components.Object.Get(entry)

	paddleObj.Y = 100
	ballObj.Y = 300

	UpdateAI(e)

	if paddleObj.Y != 100 {
		t.Fatalf("AI moved the paddle in two-player mode: Y = %v", paddleObj.Y)
	}
}

// TestSlowAIHalvesSpeed verifies the slow-AI effect halves the preset speed
// with integer division and a floor of one.
func TestSlowAIHalvesSpeed(t *testing.T) {
	rng := testRNG()
	e := newCourtECS(t, rng)
	match, _ := GetMatch(e)
	match.Difficulty = 3 // speed 6

	effects, _ := GetEffects(e)
	effects.Activate(components.SideRight, components.PowerUpSlowAI, cfg.PowerUps.Duration)

	ballObj, _ := ballParts(e)
	entry, _ := factory.PaddleBySide(e, components.SideRight)
	paddleObj := components.Object.Get(entry)

	paddleObj.Y = 100
	ballObj.Y = 300

	before := paddleObj.Y
	UpdateAI(e)

	if paddleObj.Y != before+3 {
		t.Fatalf("slowed paddle moved %v, want 3", paddleObj.Y-before)
	}
}

// TestSlowAISpeedFloor verifies the halved speed never drops below one.
func TestSlowAISpeedFloor(t *testing.T) {
	rng := testRNG()
	e := newCourtECS(t, rng)
	match, _ := GetMatch(e)
	match.Difficulty = 1 // speed 3, halves to 1

	effects, _ := GetEffects(e)
	effects.Activate(components.SideRight, components.PowerUpSlowAI, cfg.PowerUps.Duration)

	ballObj, _ := ballParts(e)
	entry, _ := factory.PaddleBySide(e, components.SideRight)
	paddleObj := components.Object.Get(entry)

	paddleObj.Y = 100
	ballObj.Y = 300

	before := paddleObj.Y
	UpdateAI(e)

	if paddleObj.Y != before+1 {
		t.Fatalf("floored paddle moved %v, want 1", paddleObj.Y-before)
	}
}

// TestAIClampedToField verifies tracking never pushes the paddle past the
// bottom edge.
func TestAIClampedToField(t *testing.T) {
	rng := testRNG()
	e := newCourtECS(t, rng)

	ballObj, _ := ballParts(e)
	entry, _ := factory.PaddleBySide(e, components.SideRight)
	paddleObj := components.Object.Get(entry)

	paddleObj.Y = float64(cfg.C.Height) - paddleObj.H - 1
	ballObj.Y = float64(cfg.C.Height) - 5

	UpdateAI(e)

	if paddleObj.Y != float64(cfg.C.Height)-paddleObj.H {
		t.Fatalf("paddle past bottom edge: Y = %v", paddleObj.Y)
	}
}

// TestWithPlayingCheckSkipsWhenPaused verifies wrapped systems do not run
// outside the playing state.
func TestWithPlayingCheckSkipsWhenPaused(t *testing.T) {
	rng := testRNG()
	e := newCourtECS(t, rng)
	match, _ := GetMatch(e)
	match.State = cfg.MatchStatePaused

	ran := false
	WithPlayingCheck(func(*ecs.ECS) { ran = true })(e)

	if ran {
		t.Fatalf("wrapped system ran while paused")
	}

	match.State = cfg.MatchStatePlaying
	WithPlayingCheck(func(*ecs.ECS) { ran = true })(e)
	if !ran {
		t.Fatalf("wrapped system did not run while playing")
	}
}
