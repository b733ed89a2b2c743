package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/snap-pong/archetypes"
	"github.com/automoto/snap-pong/components"
	cfg "github.com/automoto/snap-pong/config"
	"github.com/automoto/snap-pong/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the results screen with the final match statistics
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	result       components.MatchData
	setup        components.SetupData
	once         sync.Once
}

// NewGameOverScene creates a game over scene holding the finished match's
// statistics and the setup used, so a rematch replays the same rules.
func NewGameOverScene(sc SceneChanger, result components.MatchData, setup components.SetupData) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, result: result, setup: setup}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	// Scene factories
	createCourtScene := func() interface{} {
		return NewCourtScene(gs.sceneChanger, gs.setup)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(gs.sceneChanger)
	}

	// The renderer reads the final statistics through the usual match lookup.
	matchEntry := archetypes.Match.Spawn(gs.ecs)
	components.Match.SetValue(matchEntry, gs.result)

	// Keys still held from the match must not select an option here.
	systems.PrimeInput(gs.ecs)

	// Minimal systems for the results screen
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createCourtScene, createMenuScene))

	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)
}
