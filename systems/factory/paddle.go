package factory

import (
	"github.com/automoto/snap-pong/archetypes"
	"github.com/automoto/snap-pong/components"
	cfg "github.com/automoto/snap-pong/config"
	"github.com/automoto/snap-pong/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePaddle spawns a paddle for a side, vertically centered on the court.
func CreatePaddle(ecs *ecs.ECS, side components.Side) *donburi.Entry {
	paddle := archetypes.Paddle.Spawn(ecs)

	x := cfg.Paddle.LeftX
	if side == components.SideRight {
		x = cfg.Paddle.RightX
	}
	y := float64(cfg.C.Height)/2 - cfg.Paddle.Height/2

	obj := resolv.NewObject(x, y, cfg.Paddle.Width, cfg.Paddle.Height, tags.ResolvPaddle)
	obj.Data = paddle // Link for O(1) lookup

	components.Paddle.SetValue(paddle, components.PaddleData{
		Side:       side,
		BaseHeight: cfg.Paddle.Height,
	})
	components.Object.SetValue(paddle, components.ObjectData{Object: obj})

	addToSpace(ecs, obj)

	return paddle
}

// PaddleBySide returns the paddle entry for a side.
func PaddleBySide(ecs *ecs.ECS, side components.Side) (*donburi.Entry, bool) {
	var found *donburi.Entry
	tags.Paddle.Each(ecs.World, func(entry *donburi.Entry) {
		if components.Paddle.Get(entry).Side == side {
			found = entry
		}
	})
	return found, found != nil
}
