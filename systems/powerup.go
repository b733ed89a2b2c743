package systems

import (
	"math/rand"

	"github.com/automoto/snap-pong/components"
	cfg "github.com/automoto/snap-pong/config"
	"github.com/automoto/snap-pong/systems/factory"
	"github.com/automoto/snap-pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// effectSpec is the per-type dispatch entry: what happens on collection and
// what (if anything) happens when the countdown runs out.
type effectSpec struct {
	apply  func(e *ecs.ECS, side components.Side)
	revert func(e *ecs.ECS, side components.Side) // nil: countdown expires silently
}

// effectTable indexes effectSpec by PowerUpType. Only the paddle-size types
// carry a reversion; fast ball keeps its granted speed until the next serve,
// and slow AI is read directly from the countdown by the AI system.
var effectTable = [components.PowerUpTypeCount]effectSpec{
	components.PowerUpSpeedBoost: {
		apply:  applyBoostHeight,
		revert: revertPaddleHeight,
	},
	components.PowerUpSlowAI: {
		apply: func(*ecs.ECS, components.Side) {},
	},
	components.PowerUpBigPaddle: {
		apply:  applyBigPaddleHeight,
		revert: revertPaddleHeight,
	},
	components.PowerUpFastBall: {
		apply: applyFastBall,
	},
}

// NewUpdatePowerUps builds the power-up lifecycle system: a Bernoulli spawn
// roll each tick, gravity on the falling pickups, and the per-side effect
// countdowns with their expiry reversions.
func NewUpdatePowerUps(rng *rand.Rand) ecs.System {
	return func(e *ecs.ECS) {
		spawnPowerUp(e, rng)
		tickEffects(e)

		// Removing mid-iteration would make the swapped-in entry skip a
		// tick; collect first, remove after the loop.
		var toRemove []*donburi.Entry
		tags.PowerUp.Each(e.World, func(entry *donburi.Entry) {
			powerup := components.PowerUp.Get(entry)
			obj := components.Object.Get(entry)

			obj.Y += cfg.PowerUps.FallSpeed
			obj.Update()

			if powerup.Collected || obj.Y > float64(cfg.C.Height) {
				toRemove = append(toRemove, entry)
			}
		})
		for _, entry := range toRemove {
			factory.RemoveEntity(entry)
		}
	}
}

// spawnPowerUp rolls the per-tick spawn chance and drops a random power-up
// at the ball's position.
func spawnPowerUp(e *ecs.ECS, rng *rand.Rand) {
	if rng.Float64() >= cfg.PowerUps.SpawnChance {
		return
	}
	ballEntry, ok := tags.Ball.First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(ballEntry)
	typ := components.PowerUpType(rng.Intn(int(components.PowerUpTypeCount)))
	factory.CreatePowerUp(e, obj.X, obj.Y, typ)
}

// tickEffects decrements every active effect countdown and runs the expiry
// reversion for types that have one.
func tickEffects(e *ecs.ECS) {
	effects, ok := GetEffects(e)
	if !ok {
		return
	}

	for side := components.Side(0); side < components.SideCount; side++ {
		for typ := components.PowerUpType(0); typ < components.PowerUpTypeCount; typ++ {
			remaining := effects.Countdowns[side][typ]
			if remaining <= 0 {
				continue
			}
			remaining--
			effects.Countdowns[side][typ] = remaining
			if remaining == 0 {
				if revert := effectTable[typ].revert; revert != nil {
					revert(e, side)
				}
			}
		}
	}
}

// ActivatePowerUp applies a power-up's immediate effect to the collecting
// side and arms its countdown. Re-collecting an active type restarts the
// timer rather than stacking.
func ActivatePowerUp(e *ecs.ECS, side components.Side, typ components.PowerUpType) {
	effectTable[typ].apply(e, side)

	if effects, ok := GetEffects(e); ok {
		effects.Activate(side, typ, cfg.PowerUps.Duration)
	}
}

// applyBoostHeight grows the paddle to the smaller of base+bonus and
// base*scale.
func applyBoostHeight(e *ecs.ECS, side components.Side) {
	setPaddleHeight(e, side, func(p *components.PaddleData) float64 {
		grown := p.BaseHeight + cfg.PowerUps.BoostHeightBonus
		if limit := p.BaseHeight * cfg.PowerUps.BoostHeightScale; grown > limit {
			return limit
		}
		return grown
	})
}

func applyBigPaddleHeight(e *ecs.ECS, side components.Side) {
	setPaddleHeight(e, side, func(p *components.PaddleData) float64 {
		return p.BaseHeight * cfg.PowerUps.BigPaddleScale
	})
}

// revertPaddleHeight restores base height unconditionally. If the side's
// other size effect is still active it is overridden until recollected:
// last expiry wins.
func revertPaddleHeight(e *ecs.ECS, side components.Side) {
	setPaddleHeight(e, side, func(p *components.PaddleData) float64 {
		return p.BaseHeight
	})
}

// applyFastBall scales the ball's velocity immediately. There is no
// reversion; the next serve resets the velocity anyway.
func applyFastBall(e *ecs.ECS, _ components.Side) {
	if ballEntry, ok := tags.Ball.First(e.World); ok {
		physics := components.Physics.Get(ballEntry)
		physics.SpeedX *= cfg.PowerUps.FastBallScale
		physics.SpeedY *= cfg.PowerUps.FastBallScale
	}
}

// setPaddleHeight resizes a side's paddle, keeping its top edge fixed.
func setPaddleHeight(e *ecs.ECS, side components.Side, height func(*components.PaddleData) float64) {
	entry, ok := factory.PaddleBySide(e, side)
	if !ok {
		return
	}
	paddle := components.Paddle.Get(entry)
	obj := components.Object.Get(entry)
	obj.H = height(paddle)
	clampPaddle(obj.Object)
	obj.Update()
}
