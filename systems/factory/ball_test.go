package factory

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/snap-pong/components"
	cfg "github.com/automoto/snap-pong/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TestServeVelocityAxes verifies each serve axis carries the full initial
// speed with an independent sign.
func TestServeVelocityAxes(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	seenX := map[bool]bool{}
	seenY := map[bool]bool{}
	for i := 0; i < 100; i++ {
		v := serveVelocity(rng)
		if math.Abs(v.SpeedX) != cfg.Ball.InitialSpeed || math.Abs(v.SpeedY) != cfg.Ball.InitialSpeed {
			t.Fatalf("serve speed = (%v, %v), want magnitude %v per axis", v.SpeedX, v.SpeedY, cfg.Ball.InitialSpeed)
		}
		seenX[v.SpeedX > 0] = true
		seenY[v.SpeedY > 0] = true
	}
	if len(seenX) != 2 || len(seenY) != 2 {
		t.Fatalf("serve signs not independent: X=%v Y=%v", seenX, seenY)
	}
}

// TestResetBallRecenters verifies a reset puts the ball back at the court
// center with a fresh serve velocity.
func TestResetBallRecenters(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
	ball := CreateBall(e, rng)

	obj := components.Object.Get(ball)
	obj.X = 10
	obj.Y = 10

	ResetBall(ball, rng)

	if obj.X != float64(cfg.C.Width)/2-obj.W/2 {
		t.Fatalf("X = %v, want centered", obj.X)
	}
	if obj.Y != float64(cfg.C.Height)/2-obj.H/2 {
		t.Fatalf("Y = %v, want centered", obj.Y)
	}
	physics := components.Physics.Get(ball)
	if math.Abs(physics.SpeedX) != cfg.Ball.InitialSpeed || math.Abs(physics.SpeedY) != cfg.Ball.InitialSpeed {
		t.Fatalf("reset serve speed = (%v, %v)", physics.SpeedX, physics.SpeedY)
	}
}
