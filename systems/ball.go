package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/snap-pong/components"
	cfg "github.com/automoto/snap-pong/config"
	"github.com/automoto/snap-pong/systems/factory"
	"github.com/automoto/snap-pong/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateBall builds the ball simulation system. One call advances the
// ball a single tick: integrate, clamp speed, bounce off walls and paddles,
// collect power-ups, then score and check the win target. rng feeds the
// serve velocity after each point.
func NewUpdateBall(rng *rand.Rand) ecs.System {
	return func(e *ecs.ECS) {
		ballEntry, ok := tags.Ball.First(e.World)
		if !ok {
			return
		}
		match, ok := GetMatch(e)
		if !ok {
			return
		}

		obj := components.Object.Get(ballEntry)
		physics := components.Physics.Get(ballEntry)

		obj.X += physics.SpeedX
		obj.Y += physics.SpeedY

		// Spin can push the speed past the cap; rescale the whole vector so
		// the direction survives.
		magnitude := math.Hypot(physics.SpeedX, physics.SpeedY)
		if magnitude > cfg.Ball.MaxSpeed {
			scale := cfg.Ball.MaxSpeed / magnitude
			physics.SpeedX *= scale
			physics.SpeedY *= scale
		}

		bounceWalls(obj.Object, physics)
		bouncePaddles(e, obj.Object, physics, match)
		collectPowerUps(e, obj.Object, physics)

		obj.Update()

		// Scoring is mutually exclusive per tick. The ball resets before the
		// next tick, so at most one side can be past an edge here; the side
		// whose edge the ball crossed concedes the point to its opponent.
		if obj.X <= 0 {
			match.ScorePoint(components.SideLeft.Opponent())
			factory.ResetBall(ballEntry, rng)
		} else if obj.X+obj.W >= float64(cfg.C.Width) {
			match.ScorePoint(components.SideRight.Opponent())
			factory.ResetBall(ballEntry, rng)
		}

		if match.LeftScore >= match.WinTarget {
			match.State = cfg.MatchStateOver
			match.Winner = components.SideLeft
		} else if match.RightScore >= match.WinTarget {
			match.State = cfg.MatchStateOver
			match.Winner = components.SideRight
		}
	}
}

// bounceWalls reflects the ball off the top and bottom edges. The ball is
// clamped flush to the wall and the vertical speed is forced away from it,
// so spin can never pin the ball against an edge.
func bounceWalls(obj *resolv.Object, physics *components.PhysicsData) {
	if obj.Y <= 0 {
		obj.Y = 0
		physics.SpeedY = math.Abs(physics.SpeedY)
	} else if obj.Y+obj.H >= float64(cfg.C.Height) {
		obj.Y = float64(cfg.C.Height) - obj.H
		physics.SpeedY = -math.Abs(physics.SpeedY)
	}
}

// bouncePaddles handles both paddle hits. The space gives the candidate
// objects, an exact overlap test decides the hit. A hit only counts when
// the ball is moving toward the paddle, which prevents re-collision while
// the ball is escaping along a paddle edge.
func bouncePaddles(e *ecs.ECS, ball *resolv.Object, physics *components.PhysicsData, match *components.MatchData) {
	check := ball.Check(0, 0, tags.ResolvPaddle)
	if check == nil {
		return
	}
	for _, other := range check.Objects {
		if !overlaps(ball, other) {
			continue
		}
		paddle := components.Paddle.Get(other.Data.(*donburi.Entry))

		switch paddle.Side {
		case components.SideLeft:
			if physics.SpeedX >= 0 {
				continue
			}
			ball.X = other.X + other.W
			physics.SpeedX = math.Abs(physics.SpeedX)
		case components.SideRight:
			if physics.SpeedX <= 0 {
				continue
			}
			ball.X = other.X - ball.W
			physics.SpeedX = -math.Abs(physics.SpeedX)
		}

		// Spin: hitting near an end of the paddle bends the ball toward
		// that end, a center hit adds nothing.
		hitPos := (ball.Y - other.Y) / other.H
		physics.SpeedY += (hitPos - 0.5) * 2
		match.RallyCount++
	}
}

// collectPowerUps awards overlapped power-ups to the side that last hit the
// ball, inferred from the ball's travel direction.
func collectPowerUps(e *ecs.ECS, ball *resolv.Object, physics *components.PhysicsData) {
	check := ball.Check(0, 0, tags.ResolvPowerUp)
	if check == nil {
		return
	}
	for _, other := range check.Objects {
		if !overlaps(ball, other) {
			continue
		}
		entry := other.Data.(*donburi.Entry)
		powerup := components.PowerUp.Get(entry)
		if powerup.Collected {
			continue
		}

		side := components.SideRight
		if physics.SpeedX < 0 {
			side = components.SideLeft
		}
		ActivatePowerUp(e, side, powerup.Type)
		powerup.Collected = true
	}
}

// overlaps narrows the cell-based candidates to an exact axis-aligned box
// intersection, so flush repositioning stays precise.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}
