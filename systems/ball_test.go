package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/snap-pong/archetypes"
	"github.com/automoto/snap-pong/components"
	cfg "github.com/automoto/snap-pong/config"
	"github.com/automoto/snap-pong/systems/factory"
	"github.com/automoto/snap-pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newCourtECS builds a minimal court world: space, both paddles, ball, match
// and effects entities, matching what the court scene creates.
func newCourtECS(t *testing.T, rng *rand.Rand) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())

	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreatePaddle(e, components.SideLeft)
	factory.CreatePaddle(e, components.SideRight)
	factory.CreateBall(e, rng)

	matchEntry := archetypes.Match.Spawn(e)
	components.Match.SetValue(matchEntry, components.MatchData{
		State:      cfg.MatchStatePlaying,
		Difficulty: cfg.AI.DefaultDifficulty,
		WinTarget:  cfg.Match.DefaultWinTarget,
	})
	archetypes.Effects.Spawn(e)

	return e
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func ballParts(e *ecs.ECS) (*components.ObjectData, *components.PhysicsData) {
	entry, _ := tags.Ball.First(e.World)
	return components.Object.Get(entry), components.Physics.Get(entry)
}

// TestSpeedClampRescalesMagnitude verifies that an over-cap velocity is
// rescaled to the cap while keeping its direction.
func TestSpeedClampRescalesMagnitude(t *testing.T) {
	rng := testRNG()
	e := newCourtECS(t, rng)
	obj, physics := ballParts(e)
	obj.X = 400
	obj.Y = 250
	physics.SpeedX = 12
	physics.SpeedY = 16 // magnitude 20, past the cap of 15

	NewUpdateBall(rng)(e)

	got := math.Hypot(physics.SpeedX, physics.SpeedY)
	if math.Abs(got-cfg.Ball.MaxSpeed) > 1e-9 {
		t.Fatalf("speed magnitude = %v, want %v", got, cfg.Ball.MaxSpeed)
	}
	// Direction preserved: 12:16 reduces to 3:4.
	if math.Abs(physics.SpeedX/physics.SpeedY-0.75) > 1e-9 {
		t.Fatalf("direction changed: vx=%v vy=%v", physics.SpeedX, physics.SpeedY)
	}
}

// TestServeSpeedBelowCap verifies the initial per-axis serve speed is under
// the magnitude cap and is not rescaled.
func TestServeSpeedBelowCap(t *testing.T) {
	rng := testRNG()
	e := newCourtECS(t, rng)
	obj, physics := ballParts(e)
	obj.X = 400
	obj.Y = 250
	physics.SpeedX = cfg.Ball.InitialSpeed
	physics.SpeedY = cfg.Ball.InitialSpeed

	NewUpdateBall(rng)(e)

	if physics.SpeedX != cfg.Ball.InitialSpeed || physics.SpeedY != cfg.Ball.InitialSpeed {
		t.Fatalf("serve speed rescaled: vx=%v vy=%v", physics.SpeedX, physics.SpeedY)
	}
}

// TestWallBounceForcesDirection verifies the ball is clamped flush to a wall
// and its vertical speed is forced away from it, for both walls.
func TestWallBounceForcesDirection(t *testing.T) {
	rng := testRNG()
	e := newCourtECS(t, rng)
	obj, physics := ballParts(e)

	obj.X = 400
	obj.Y = 2
	physics.SpeedX = 1
	physics.SpeedY = -8

	NewUpdateBall(rng)(e)

	if obj.Y != 0 {
		t.Fatalf("top bounce: Y = %v, want 0", obj.Y)
	}
	if physics.SpeedY <= 0 {
		t.Fatalf("top bounce: vy = %v, want > 0", physics.SpeedY)
	}

	obj.Y = float64(cfg.C.Height) - obj.H - 2
	physics.SpeedY = 8

	NewUpdateBall(rng)(e)

	if obj.Y != float64(cfg.C.Height)-obj.H {
		t.Fatalf("bottom bounce: Y = %v, want %v", obj.Y, float64(cfg.C.Height)-obj.H)
	}
	if physics.SpeedY >= 0 {
		t.Fatalf("bottom bounce: vy = %v, want < 0", physics.SpeedY)
	}
}

// TestPaddleHitRequiresApproach verifies an overlap with a paddle only
// bounces when the ball is moving toward it.
func TestPaddleHitRequiresApproach(t *testing.T) {
	rng := testRNG()
	e := newCourtECS(t, rng)
	obj, physics := ballParts(e)
	match, _ := GetMatch(e)

	leftPaddle, _ := factory.PaddleBySide(e, components.SideLeft)
	paddleObj := components.Object.Get(leftPaddle)

	// Overlapping but moving away: no bounce, no rally.
	physics.SpeedX = 3
	physics.SpeedY = 0
	obj.X = paddleObj.X + 2 - physics.SpeedX
	obj.Y = paddleObj.Y + paddleObj.H/2 - obj.H/2

	NewUpdateBall(rng)(e)

	if match.RallyCount != 0 {
		t.Fatalf("rally counted on non-approaching overlap")
	}
	if physics.SpeedX != 3 {
		t.Fatalf("vx changed on non-approaching overlap: %v", physics.SpeedX)
	}

	// Moving toward the paddle: flush reposition, vx away, rally counted.
	physics.SpeedX = -3
	physics.SpeedY = 0
	obj.X = paddleObj.X + paddleObj.W - 1 + 3 // overlaps after integration
	obj.Y = paddleObj.Y + paddleObj.H/2 - obj.H/2

	NewUpdateBall(rng)(e)

	if obj.X != paddleObj.X+paddleObj.W {
		t.Fatalf("ball not flush to paddle face: X = %v, want %v", obj.X, paddleObj.X+paddleObj.W)
	}
	if physics.SpeedX <= 0 {
		t.Fatalf("vx not forced away from left paddle: %v", physics.SpeedX)
	}
	if match.RallyCount != 1 {
		t.Fatalf("rally count = %d, want 1", match.RallyCount)
	}
}

// TestCenterHitAddsNoSpin verifies a dead-center paddle hit leaves the
// vertical speed unchanged.
func TestCenterHitAddsNoSpin(t *testing.T) {
	rng := testRNG()
	e := newCourtECS(t, rng)
	obj, physics := ballParts(e)

	leftPaddle, _ := factory.PaddleBySide(e, components.SideLeft)
	paddleObj := components.Object.Get(leftPaddle)

	physics.SpeedX = -3
	physics.SpeedY = 2
	// After integration the ball's top sits exactly at the paddle midpoint.
	obj.X = paddleObj.X + paddleObj.W - 1 + 3
	obj.Y = paddleObj.Y + paddleObj.H/2 - physics.SpeedY

	NewUpdateBall(rng)(e)

	if physics.SpeedY != 2 {
		t.Fatalf("center hit changed vy: %v, want 2", physics.SpeedY)
	}
}

// TestEdgeHitBendsBall verifies an off-center hit adds spin toward the end
// that was struck.
func TestEdgeHitBendsBall(t *testing.T) {
	rng := testRNG()
	e := newCourtECS(t, rng)
	obj, physics := ballParts(e)

	leftPaddle, _ := factory.PaddleBySide(e, components.SideLeft)
	paddleObj := components.Object.Get(leftPaddle)

	physics.SpeedX = -3
	physics.SpeedY = 0
	obj.X = paddleObj.X + paddleObj.W - 1 + 3
	obj.Y = paddleObj.Y + paddleObj.H - 5 // near the bottom end

	NewUpdateBall(rng)(e)

	if physics.SpeedY <= 0 {
		t.Fatalf("bottom-end hit should bend the ball downward, vy = %v", physics.SpeedY)
	}
}

// TestScoringResetsBallAndFoldsRally verifies a point past the left edge
// scores for the right side, folds the rally statistics and recenters the
// ball.
func TestScoringResetsBallAndFoldsRally(t *testing.T) {
	rng := testRNG()
	e := newCourtECS(t, rng)
	obj, physics := ballParts(e)
	match, _ := GetMatch(e)
	match.RallyCount = 4

	obj.X = 3
	obj.Y = 250
	physics.SpeedX = -8
	physics.SpeedY = 0

	NewUpdateBall(rng)(e)

	if match.RightScore != 1 || match.LeftScore != 0 {
		t.Fatalf("score = %d-%d, want 0-1", match.LeftScore, match.RightScore)
	}
	if match.LongestRally != 4 {
		t.Fatalf("longest rally = %d, want 4", match.LongestRally)
	}
	if match.RightRalliesWon != 1 {
		t.Fatalf("right rallies won = %d, want 1", match.RightRalliesWon)
	}
	if match.RallyCount != 0 {
		t.Fatalf("rally count not reset: %d", match.RallyCount)
	}
	wantX := float64(cfg.C.Width)/2 - obj.W/2
	if obj.X != wantX {
		t.Fatalf("ball not recentered: X = %v, want %v", obj.X, wantX)
	}
}

// TestWinTransitionSameTick verifies reaching the win target flips the match
// to the over state in the same tick as the scoring.
func TestWinTransitionSameTick(t *testing.T) {
	rng := testRNG()
	e := newCourtECS(t, rng)
	obj, physics := ballParts(e)
	match, _ := GetMatch(e)
	match.LeftScore = match.WinTarget - 1

	obj.X = float64(cfg.C.Width) - obj.W - 3
	obj.Y = 250
	physics.SpeedX = 8
	physics.SpeedY = 0

	NewUpdateBall(rng)(e)

	if match.State != cfg.MatchStateOver {
		t.Fatalf("state = %v, want over", match.State)
	}
	if match.Winner != components.SideLeft {
		t.Fatalf("winner = %v, want left", match.Winner)
	}
}

// TestPowerUpCollectionSide verifies the collecting side is inferred from
// the ball's travel direction.
func TestPowerUpCollectionSide(t *testing.T) {
	rng := testRNG()
	e := newCourtECS(t, rng)
	obj, physics := ballParts(e)

	obj.X = 400
	obj.Y = 250
	physics.SpeedX = -5 // moving left: left side last hit it
	physics.SpeedY = 0

	factory.CreatePowerUp(e, obj.X-5, obj.Y, components.PowerUpBigPaddle)

	NewUpdateBall(rng)(e)

	effects, _ := GetEffects(e)
	if !effects.Has(components.SideLeft, components.PowerUpBigPaddle) {
		t.Fatalf("left side did not receive the power-up")
	}
	if effects.Has(components.SideRight, components.PowerUpBigPaddle) {
		t.Fatalf("right side wrongly received the power-up")
	}
}
