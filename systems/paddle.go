package systems

import (
	"github.com/automoto/snap-pong/components"
	cfg "github.com/automoto/snap-pong/config"
	"github.com/automoto/snap-pong/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePaddles moves the human-controlled paddles from the held-key
// snapshot. The left paddle is always human; the right paddle only in
// two-player mode (otherwise UpdateAI owns it).
func UpdatePaddles(e *ecs.ECS) {
	match, ok := GetMatch(e)
	if !ok {
		return
	}
	input := getOrCreateInput(e)

	tags.Paddle.Each(e.World, func(entry *donburi.Entry) {
		paddle := components.Paddle.Get(entry)

		var up, down bool
		switch paddle.Side {
		case components.SideLeft:
			up = GetAction(input, cfg.ActionLeftPaddleUp).Pressed
			down = GetAction(input, cfg.ActionLeftPaddleDown).Pressed
		case components.SideRight:
			if !match.TwoPlayer {
				return
			}
			up = GetAction(input, cfg.ActionRightPaddleUp).Pressed
			down = GetAction(input, cfg.ActionRightPaddleDown).Pressed
		}

		obj := components.Object.Get(entry)
		if up {
			obj.Y -= cfg.Paddle.Speed
		}
		if down {
			obj.Y += cfg.Paddle.Speed
		}
		clampPaddle(obj.Object)
		obj.Update()
	})
}

// clampPaddle keeps a paddle fully inside the vertical field bounds.
func clampPaddle(obj *resolv.Object) {
	if obj.Y < 0 {
		obj.Y = 0
	}
	if max := float64(cfg.C.Height) - obj.H; obj.Y > max {
		obj.Y = max
	}
}
