package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/ringside/ringside/components"
	cfg "github.com/ringside/ringside/config"
	"github.com/ringside/ringside/stage"
	"github.com/ringside/ringside/systems"
	"github.com/ringside/ringside/systems/factory"
)

type FightScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	setup        components.SetupData
	once         sync.Once
}

func NewFightScene(sceneChanger SceneChanger, setup components.SetupData) *FightScene {
	return &FightScene{
		sceneChanger: sceneChanger,
		setup:        setup,
	}
}

func (s *FightScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()

	if systems.RestartRequested {
		systems.RestartRequested = false
		s.sceneChanger.ChangeScene(NewFightScene(s.sceneChanger, s.setup))
		return
	}
	if systems.IsMatchFinished(s.ecs) {
		s.sceneChanger.ChangeScene(NewMenuScene(s.sceneChanger))
	}
}

func (s *FightScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *FightScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePlayerInput)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.WithPauseCheck(systems.WithRoundActiveCheck(systems.UpdateFighters)))
	e.AddSystem(systems.WithPauseCheck(systems.WithRoundActiveCheck(systems.UpdatePhysics)))
	e.AddSystem(systems.WithPauseCheck(systems.WithRoundActiveCheck(systems.UpdateSeparation)))
	e.AddSystem(systems.WithPauseCheck(systems.WithRoundActiveCheck(systems.UpdateCombat)))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateMatch))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateHealthBars))

	e.AddRenderer(cfg.Default, systems.DrawStage)
	e.AddRenderer(cfg.Default, systems.DrawFighters)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawMatchHUD)
	e.AddRenderer(cfg.Default, systems.DrawPause)

	st, err := stage.Load(stage.FS, "stages/arena.tmx")
	if err != nil {
		panic(err)
	}

	factory.CreateSpace(e, st.MapWidth, st.MapHeight, cfg.Arena.CellSize, cfg.Arena.CellSize)
	factory.CreateStage(e, st)

	schemes := [2]cfg.ControlSchemeID{cfg.ControlSchemeA, cfg.ControlSchemeB}
	if s.setup.SwapSchemes {
		schemes[0], schemes[1] = schemes[1], schemes[0]
	}
	for i, spawn := range st.Spawns {
		if i > 1 {
			break
		}
		factory.CreateFighter(e, spawn.Index, spawn, schemes[i])
	}

	factory.CreateMatch(e, s.setup.BestOf, s.setup.RoundSeconds)
	factory.CreateHealthBars(e)
	factory.CreateScreenShake(e)

	s.ecs = e
}
