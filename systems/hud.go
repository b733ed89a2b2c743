package systems

import (
	"fmt"

	"github.com/automoto/snap-pong/components"
	cfg "github.com/automoto/snap-pong/config"
	"github.com/automoto/snap-pong/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the top info bar: both scores, the running rally count and
// the active effect labels for each side.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	match, ok := GetMatch(e)
	if !ok {
		return
	}

	width := float64(screen.Bounds().Dx())

	vector.DrawFilledRect(screen,
		0, 0,
		float32(width), float32(cfg.HUD.BarHeight),
		cfg.HUD.BarColor, false)

	scoreFont := fonts.Score.Get()
	leftScore := fmt.Sprintf("%d", match.LeftScore)
	rightScore := fmt.Sprintf("%d", match.RightScore)

	text.Draw(screen, leftScore, scoreFont,
		int(width/2-cfg.HUD.ScoreMargin)-len(leftScore)*14, 35, cfg.HUD.ScoreColor)
	text.Draw(screen, rightScore, scoreFont,
		int(width/2+cfg.HUD.ScoreMargin), 35, cfg.HUD.ScoreColor)

	if match.RallyCount > 0 {
		rally := fmt.Sprintf("Rally: %d", match.RallyCount)
		rallyFont := fonts.Small.Get()
		rallyWidth := len(rally) * 7
		text.Draw(screen, rally, rallyFont,
			int(width/2)-rallyWidth/2, 50, cfg.HUD.RallyColor)
	}

	drawEffectLabels(e, screen, width)
}

// drawEffectLabels lists each side's running effects in its corner of the bar.
func drawEffectLabels(e *ecs.ECS, screen *ebiten.Image, width float64) {
	effects, ok := GetEffects(e)
	if !ok {
		return
	}
	smallFont := fonts.Small.Get()

	for side := components.Side(0); side < components.SideCount; side++ {
		y := 16
		for typ := components.PowerUpType(0); typ < components.PowerUpTypeCount; typ++ {
			if !effects.Has(side, typ) {
				continue
			}
			label := typ.String()
			x := int(cfg.HUD.EffectMargin)
			if side == components.SideRight {
				x = int(width) - int(cfg.HUD.EffectMargin) - len(label)*7
			}
			text.Draw(screen, label, smallFont, x, y, powerUpColor(typ))
			y += 14
		}
	}
}
