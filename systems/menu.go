package systems

import (
	"fmt"
	"os"

	"github.com/automoto/snap-pong/components"
	cfg "github.com/automoto/snap-pong/config"
	"github.com/automoto/snap-pong/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

const menuPulsePeriod = 0.5 // seconds per half cycle of the prompt pulse

// NewUpdateMenu creates the start screen system. Keyboard shortcuts mutate
// the shared setup selections; the ebitenui panel mutates the same struct
// through its buttons. onStart launches the match.
func NewUpdateMenu(setup *components.SetupData, onStart func()) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		advancePulse(menu)

		if GetAction(input, cfg.ActionQuit).JustPressed {
			os.Exit(0)
		}

		if GetAction(input, cfg.ActionToggleMode).JustPressed {
			setup.TwoPlayer = !setup.TwoPlayer
		}
		if GetAction(input, cfg.ActionDifficulty1).JustPressed {
			setup.Difficulty = 1
		}
		if GetAction(input, cfg.ActionDifficulty2).JustPressed {
			setup.Difficulty = 2
		}
		if GetAction(input, cfg.ActionDifficulty3).JustPressed {
			setup.Difficulty = 3
		}
		if GetAction(input, cfg.ActionWinTargetUp).JustPressed {
			setup.WinTarget = cfg.ClampWinTarget(setup.WinTarget + 1)
		}
		if GetAction(input, cfg.ActionWinTargetDown).JustPressed {
			setup.WinTarget = cfg.ClampWinTarget(setup.WinTarget - 1)
		}

		if GetAction(input, cfg.ActionStartPause).JustPressed {
			onStart()
		}
	}
}

// advancePulse steps the looping prompt tween by one 60 TPS tick.
func advancePulse(menu *components.MenuData) {
	value, _, done := menu.Pulse.Update(1.0 / 60.0)
	menu.PulseValue = value
	if done {
		menu.Pulse.Reset()
	}
}

// DrawMenu renders the start screen backdrop: title, current selections and
// the pulsing start prompt. The interactive panel is drawn by the scene on
// top of this.
func DrawMenu(e *ecs.ECS, screen *ebiten.Image, setup *components.SetupData) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	titleFont := fonts.Title.Get()
	title := "SNAP PONG"
	titleWidth := len(title) * 20
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	hints := []string{
		"LEFT: W/S    RIGHT: Up/Down",
		"Power-ups drop during play",
		fmt.Sprintf("First to %d points wins", setup.WinTarget),
	}
	hintFont := fonts.Small.Get()
	hintY := int(height) - 90
	for _, hint := range hints {
		hintWidth := len(hint) * 7
		text.Draw(screen, hint, hintFont, int(width)/2-hintWidth/2, hintY, cfg.Menu.HintColor)
		hintY += 22
	}

	drawPulsingPrompt(screen, "PRESS SPACE TO START", menu.PulseValue, cfg.Menu.PromptY)
}

// drawPulsingPrompt draws a centered prompt whose brightness follows the
// menu pulse tween.
func drawPulsingPrompt(screen *ebiten.Image, prompt string, pulse float32, y float64) {
	width := float64(screen.Bounds().Dx())
	promptFont := fonts.Text.Get()
	promptWidth := len(prompt) * 9

	brightness := uint8(200 + pulse*55)
	promptColor := cfg.Gold
	promptColor.R = brightness
	promptColor.G = uint8(float32(brightness) * 0.8)

	text.Draw(screen, prompt, promptFont,
		int(width)/2-promptWidth/2, int(y), promptColor)
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			Pulse: newPulseSequence(),
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}

// newPulseSequence builds the 0..1..0 brightness tween used by the start and
// game over prompts.
func newPulseSequence() *gween.Sequence {
	seq := gween.NewSequence()
	seq.Add(
		gween.New(0, 1, menuPulsePeriod, ease.Linear),
		gween.New(1, 0, menuPulsePeriod, ease.Linear),
	)
	return seq
}
