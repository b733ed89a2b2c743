package systems

import (
	"github.com/automoto/snap-pong/components"
	cfg "github.com/automoto/snap-pong/config"
	"github.com/automoto/snap-pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAI drives the right paddle when the match is single player. The
// controller is a pure tracker: it steps the paddle center toward the ball
// center by at most its speed per tick, so a fast ball can outrun it.
func UpdateAI(e *ecs.ECS) {
	match, ok := GetMatch(e)
	if !ok || match.TwoPlayer {
		return
	}

	ballEntry, ok := tags.Ball.First(e.World)
	if !ok {
		return
	}
	ballObj := components.Object.Get(ballEntry)

	effects, _ := GetEffects(e)

	tags.Paddle.Each(e.World, func(entry *donburi.Entry) {
		paddle := components.Paddle.Get(entry)
		if paddle.Side != components.SideRight {
			return
		}

		speed := cfg.AISpeed(match.Difficulty)
		if effects != nil && effects.Has(components.SideRight, components.PowerUpSlowAI) {
			// Integer halving with a floor of 1, so difficulty 1 still moves.
			speed = float64(maxInt(1, int(speed)/2))
		}

		obj := components.Object.Get(entry)
		paddleCenter := obj.Y + obj.H/2
		ballCenter := ballObj.Y + ballObj.H/2

		switch {
		case paddleCenter < ballCenter:
			obj.Y += speed
		case paddleCenter > ballCenter:
			obj.Y -= speed
		}
		clampPaddle(obj.Object)
		obj.Update()
	})
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
