package systems

import (
	"image/color"

	"github.com/automoto/snap-pong/components"
	cfg "github.com/automoto/snap-pong/config"
	"github.com/automoto/snap-pong/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var courtBackground *ebiten.Image
var courtDrawOp = &ebiten.DrawImageOptions{}

// DrawCourt renders the playfield: gradient background, dashed center line,
// paddles, ball and any falling power-ups.
func DrawCourt(e *ecs.ECS, screen *ebiten.Image) {
	drawBackground(screen)
	drawCenterLine(screen)
	drawPaddles(e, screen)
	drawPowerUps(e, screen)
	drawBall(e, screen)
}

// drawBackground blits the vertical gradient, building it once on first use.
func drawBackground(screen *ebiten.Image) {
	if courtBackground == nil {
		courtBackground = buildGradient(cfg.C.Width, cfg.C.Height,
			cfg.Court.GradientTop, cfg.Court.GradientBottom)
	}
	courtDrawOp.GeoM.Reset()
	screen.DrawImage(courtBackground, courtDrawOp)
}

func buildGradient(width, height int, top, bottom color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(width, height)
	for y := 0; y < height; y++ {
		t := float64(y) / float64(height)
		row := color.RGBA{
			R: lerpByte(top.R, bottom.R, t),
			G: lerpByte(top.G, bottom.G, t),
			B: lerpByte(top.B, bottom.B, t),
			A: 255,
		}
		vector.DrawFilledRect(img, 0, float32(y), float32(width), 1, row, false)
	}
	return img
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

func drawCenterLine(screen *ebiten.Image) {
	x := float32(cfg.C.Width) / 2
	step := cfg.Court.DashHeight + cfg.Court.GapHeight
	for y := 0.0; y < float64(cfg.C.Height); y += step {
		vector.DrawFilledRect(screen,
			x-1, float32(y),
			2, float32(cfg.Court.DashHeight),
			cfg.Court.CenterLineColor, false)
	}
}

func drawPaddles(e *ecs.ECS, screen *ebiten.Image) {
	effects, _ := GetEffects(e)

	tags.Paddle.Each(e.World, func(entry *donburi.Entry) {
		paddle := components.Paddle.Get(entry)
		obj := components.Object.Get(entry)

		vector.DrawFilledRect(screen,
			float32(obj.X), float32(obj.Y),
			float32(obj.W), float32(obj.H),
			cfg.Court.PaddleColor, false)
		vector.StrokeRect(screen,
			float32(obj.X), float32(obj.Y),
			float32(obj.W), float32(obj.H),
			2, cfg.Court.PaddleBorderColor, false)

		// Glow ring while any of the side's effects are running.
		if effects != nil && sideHasEffects(effects, paddle.Side) {
			vector.StrokeRect(screen,
				float32(obj.X)-2, float32(obj.Y)-2,
				float32(obj.W)+4, float32(obj.H)+4,
				2, paddleGlowColor(effects, paddle.Side), false)
		}
	})
}

// paddleGlowColor picks the glow for a side's active effects: slow AI has
// its own color, everything else shares the default.
func paddleGlowColor(effects *components.EffectsData, side components.Side) color.RGBA {
	if effects.Has(side, components.PowerUpSlowAI) {
		return cfg.Court.SlowGlowColor
	}
	return cfg.Court.GlowColor
}

func sideHasEffects(effects *components.EffectsData, side components.Side) bool {
	for typ := components.PowerUpType(0); typ < components.PowerUpTypeCount; typ++ {
		if effects.Has(side, typ) {
			return true
		}
	}
	return false
}

func drawBall(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Ball.First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(entry)

	cx := float32(obj.X + obj.W/2)
	cy := float32(obj.Y + obj.H/2)
	r := float32(obj.W / 2)

	vector.DrawFilledCircle(screen, cx, cy, r, cfg.Court.BallColor, false)
	vector.StrokeCircle(screen, cx, cy, r+2, 2, cfg.Court.BallRingColor, false)
}

func drawPowerUps(e *ecs.ECS, screen *ebiten.Image) {
	tags.PowerUp.Each(e.World, func(entry *donburi.Entry) {
		powerup := components.PowerUp.Get(entry)
		if powerup.Collected {
			return
		}
		obj := components.Object.Get(entry)

		cx := float32(obj.X + obj.W/2)
		cy := float32(obj.Y + obj.H/2)
		r := float32(obj.W / 2)

		vector.DrawFilledCircle(screen, cx, cy, r, powerUpColor(powerup.Type), false)
		vector.StrokeCircle(screen, cx, cy, r, 2, cfg.White, false)
	})
}

func powerUpColor(typ components.PowerUpType) color.RGBA {
	if int(typ) < len(cfg.PowerUpColors) {
		return cfg.PowerUpColors[typ]
	}
	return cfg.White
}
