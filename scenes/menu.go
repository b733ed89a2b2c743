package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/snap-pong/components"
	cfg "github.com/automoto/snap-pong/config"
	"github.com/automoto/snap-pong/systems"
	"github.com/automoto/snap-pong/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the start screen with the match setup panel
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	setup        components.SetupData
	setupUI      *ui.SetupUI
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.setupUI.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
	ms.setupUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	ms.setup = components.SetupData{
		TwoPlayer:  false,
		Difficulty: cfg.AI.DefaultDifficulty,
		WinTarget:  cfg.Match.DefaultWinTarget,
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		ms.setup.TwoPlayer = saved.TwoPlayer
		if saved.Difficulty >= 1 && saved.Difficulty <= 3 {
			ms.setup.Difficulty = saved.Difficulty
		}
		ms.setup.WinTarget = cfg.ClampWinTarget(saved.WinTarget)
	}

	ms.setupUI = ui.NewSetupUI(&ms.setup, ms.startMatch)

	// A Space press on the results screen must not restart a match here.
	systems.PrimeInput(ms.ecs)

	// Minimal systems for the start screen
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(&ms.setup, ms.startMatch))

	ms.ecs.AddRenderer(cfg.Default, func(e *ecs.ECS, screen *ebiten.Image) {
		systems.DrawMenu(e, screen, &ms.setup)
	})
}

// startMatch persists the selections and launches the court.
func (ms *MenuScene) startMatch() {
	_ = systems.SaveSettings(&systems.SavedSettings{
		TwoPlayer:  ms.setup.TwoPlayer,
		Difficulty: ms.setup.Difficulty,
		WinTarget:  ms.setup.WinTarget,
	})
	ms.sceneChanger.ChangeScene(NewCourtScene(ms.sceneChanger, ms.setup))
}
