package systems

import (
	cfg "github.com/automoto/snap-pong/config"
	"github.com/automoto/snap-pong/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawPause dims the court and shows the resume hint while the match is
// paused. The pause toggle itself lives in UpdateMatch.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	match, ok := GetMatch(e)
	if !ok || match.State != cfg.MatchStatePaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	titleFont := fonts.Title.Get()
	title := "PAUSED"
	titleWidth := len(title) * 20
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.Pause.TitleY), cfg.Pause.TitleColor)

	hint := "Press SPACE to resume"
	hintFont := fonts.Text.Get()
	hintWidth := len(hint) * 9
	hintX := int((width - float64(hintWidth)) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(cfg.Pause.TextY), cfg.Pause.TextColor)
}
