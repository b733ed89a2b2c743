package systems

import (
	"fmt"
	"os"
	"strings"

	"github.com/automoto/snap-pong/components"
	cfg "github.com/automoto/snap-pong/config"
	"github.com/automoto/snap-pong/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var gameOverOptions = []string{"REMATCH", "BACK TO MENU"}

// NewUpdateGameOver creates the game over screen system. Up/down moves the
// selection, space confirms. Space maps to rematch by default so a quick
// restart stays one keypress away.
func NewUpdateGameOver(sceneChanger SceneChanger, createCourtScene func() interface{}, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := GetOrCreateGameOver(e)
		input := getOrCreateInput(e)

		value, _, done := gameOver.Pulse.Update(1.0 / 60.0)
		gameOver.PulseValue = value
		if done {
			gameOver.Pulse.Reset()
		}

		if GetAction(input, cfg.ActionQuit).JustPressed {
			os.Exit(0)
		}

		numOptions := len(gameOverOptions)
		up := GetAction(input, cfg.ActionLeftPaddleUp).JustPressed ||
			GetAction(input, cfg.ActionRightPaddleUp).JustPressed
		down := GetAction(input, cfg.ActionLeftPaddleDown).JustPressed ||
			GetAction(input, cfg.ActionRightPaddleDown).JustPressed

		if up {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) - 1 + numOptions) % numOptions,
			)
		}
		if down {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) + 1) % numOptions,
			)
		}

		if GetAction(input, cfg.ActionStartPause).JustPressed {
			switch gameOver.SelectedOption {
			case components.GameOverRematch:
				sceneChanger.ChangeScene(createCourtScene())
			case components.GameOverMenu:
				sceneChanger.ChangeScene(createMenuScene())
			}
		}
	}
}

// DrawGameOver renders the results screen: winner, match statistics and the
// rematch menu. Reads the final match snapshot spawned by the scene.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	match, ok := GetMatch(e)
	if !ok {
		return
	}
	gameOver := GetOrCreateGameOver(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.GameOver.BackgroundColor,
		false,
	)

	titleFont := fonts.Title.Get()
	title := fmt.Sprintf("%s WINS!", strings.ToUpper(winnerName(match)))
	titleWidth := len(title) * 20
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)

	stats := []string{
		fmt.Sprintf("Final Score: %d - %d", match.LeftScore, match.RightScore),
		fmt.Sprintf("Longest Rally: %d hits", match.LongestRally),
		fmt.Sprintf("Player 1 Rallies: %d  |  %s Rallies: %d",
			match.LeftRalliesWon, rightName(match), match.RightRalliesWon),
	}

	statsFont := fonts.Text.Get()
	y := cfg.GameOver.StatsStartY
	for _, stat := range stats {
		statWidth := len(stat) * 9
		text.Draw(screen, stat, statsFont,
			int(width)/2-statWidth/2, int(y), cfg.GameOver.StatsColor)
		y += cfg.GameOver.StatsLineGap
	}

	menuFont := fonts.Text.Get()
	optionY := int(cfg.GameOver.PromptY) - 40
	for i, option := range gameOverOptions {
		optionColor := cfg.GameOver.HintColor
		if components.GameOverOption(i) == gameOver.SelectedOption {
			optionColor = cfg.GameOver.PromptColor
		}
		optionWidth := len(option) * 9
		text.Draw(screen, option, menuFont,
			int(width)/2-optionWidth/2, optionY, optionColor)
		optionY += 30
	}

	drawPulsingPrompt(screen, "PRESS SPACE TO CONFIRM", gameOver.PulseValue, height-24)
}

// winnerName resolves the winner label. The right side is the AI in
// one-player mode.
func winnerName(match *components.MatchData) string {
	if match.Winner == components.SideLeft {
		return "Player 1"
	}
	return rightName(match)
}

func rightName(match *components.MatchData) string {
	if match.TwoPlayer {
		return "Player 2"
	}
	return "AI"
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(ent, components.GameOverData{
			SelectedOption: components.GameOverRematch,
			Pulse:          newPulseSequence(),
		})
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}
