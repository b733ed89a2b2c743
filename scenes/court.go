package scenes

import (
	"image/color"
	"math/rand"
	"sync"
	"time"

	"github.com/automoto/snap-pong/archetypes"
	"github.com/automoto/snap-pong/components"
	cfg "github.com/automoto/snap-pong/config"
	"github.com/automoto/snap-pong/systems"
	"github.com/automoto/snap-pong/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CourtScene runs the match itself: the playing and paused states.
type CourtScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	setup        components.SetupData
	rng          *rand.Rand
	once         sync.Once
}

// NewCourtScene creates a court scene for the given setup selections
func NewCourtScene(sc SceneChanger, setup components.SetupData) *CourtScene {
	return &CourtScene{
		sceneChanger: sc,
		setup:        setup,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (cs *CourtScene) Update() {
	cs.once.Do(cs.configure)
	cs.ecs.Update()

	// A side reached the win target this tick; hand the final statistics to
	// the results screen.
	if systems.IsMatchOver(cs.ecs) {
		if match, ok := systems.GetMatch(cs.ecs); ok {
			cs.sceneChanger.ChangeScene(NewGameOverScene(cs.sceneChanger, *match, cs.setup))
		}
	}
}

func (cs *CourtScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)
}

func (cs *CourtScene) configure() {
	cs.ecs = ecs.NewECS(donburi.NewWorld())

	// The Space press that started the match is still held on the first
	// tick; seed the edge detector so it does not read as a pause toggle.
	systems.PrimeInput(cs.ecs)

	// Systems that always run
	cs.ecs.AddSystem(systems.UpdateInput)
	cs.ecs.AddSystem(systems.UpdateMatch)

	// Gameplay systems only advance while the match is playing. The check is
	// per system so a win transition stops the rest of the tick.
	cs.ecs.AddSystem(systems.WithPlayingCheck(systems.UpdatePaddles))
	cs.ecs.AddSystem(systems.WithPlayingCheck(systems.UpdateAI))
	cs.ecs.AddSystem(systems.WithPlayingCheck(systems.NewUpdateBall(cs.rng)))
	cs.ecs.AddSystem(systems.WithPlayingCheck(systems.NewUpdatePowerUps(cs.rng)))

	cs.ecs.AddRenderer(cfg.Default, systems.DrawCourt)
	cs.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	cs.ecs.AddRenderer(cfg.Default, systems.DrawPause)

	factory.CreateSpace(cs.ecs, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreatePaddle(cs.ecs, components.SideLeft)
	factory.CreatePaddle(cs.ecs, components.SideRight)
	factory.CreateBall(cs.ecs, cs.rng)

	matchEntry := archetypes.Match.Spawn(cs.ecs)
	components.Match.SetValue(matchEntry, components.MatchData{
		State:      cfg.MatchStatePlaying,
		TwoPlayer:  cs.setup.TwoPlayer,
		Difficulty: cs.setup.Difficulty,
		WinTarget:  cfg.ClampWinTarget(cs.setup.WinTarget),
	})

	// Zero-value effects table: no active countdowns.
	archetypes.Effects.Spawn(cs.ecs)
}
