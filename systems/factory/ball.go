package factory

import (
	"math/rand"

	"github.com/automoto/snap-pong/archetypes"
	"github.com/automoto/snap-pong/components"
	cfg "github.com/automoto/snap-pong/config"
	"github.com/automoto/snap-pong/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBall spawns the ball at the court center with a randomized serve
// velocity drawn from rng.
func CreateBall(ecs *ecs.ECS, rng *rand.Rand) *donburi.Entry {
	ball := archetypes.Ball.Spawn(ecs)

	obj := resolv.NewObject(
		float64(cfg.C.Width)/2-cfg.Ball.Size/2, float64(cfg.C.Height)/2-cfg.Ball.Size/2,
		cfg.Ball.Size, cfg.Ball.Size,
		tags.ResolvBall,
	)
	obj.Data = ball

	components.Object.SetValue(ball, components.ObjectData{Object: obj})
	components.Physics.SetValue(ball, serveVelocity(rng))

	addToSpace(ecs, obj)

	return ball
}

// ResetBall recenters the ball and re-randomizes its velocity. Used after
// every score and on match reset.
func ResetBall(ball *donburi.Entry, rng *rand.Rand) {
	obj := components.Object.Get(ball)
	obj.X = float64(cfg.C.Width)/2 - obj.W/2
	obj.Y = float64(cfg.C.Height)/2 - obj.H/2
	obj.Update()

	physics := components.Physics.Get(ball)
	*physics = serveVelocity(rng)
}

// serveVelocity picks the initial per-axis speed with two independent sign
// choices.
func serveVelocity(rng *rand.Rand) components.PhysicsData {
	v := components.PhysicsData{
		SpeedX: cfg.Ball.InitialSpeed,
		SpeedY: cfg.Ball.InitialSpeed,
	}
	if rng.Intn(2) == 0 {
		v.SpeedX = -v.SpeedX
	}
	if rng.Intn(2) == 0 {
		v.SpeedY = -v.SpeedY
	}
	return v
}
