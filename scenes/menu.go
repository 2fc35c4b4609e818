package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/ringside/ringside/config"
	"github.com/ringside/ringside/systems"
)

// SceneChanger is implemented by the game loop and lets scenes swap
// themselves out.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

func NewMenuScene(sceneChanger SceneChanger) *MenuScene {
	return &MenuScene{
		sceneChanger: sceneChanger,
	}
}

func (s *MenuScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
}

func (s *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *MenuScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	createFightScene := func() interface{} {
		return NewFightScene(s.sceneChanger, DefaultSetup())
	}
	createSetupScene := func() interface{} {
		return NewSetupScene(s.sceneChanger)
	}

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.NewUpdateMenu(s.sceneChanger, createFightScene, createSetupScene))

	e.AddRenderer(cfg.Default, systems.DrawMenu)

	systems.GetOrCreateSetup(e)
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(e, saved)
	}

	s.ecs = e
}
