package scenes

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ringside/ringside/components"
	cfg "github.com/ringside/ringside/config"
	"github.com/ringside/ringside/systems"
	"github.com/ringside/ringside/ui"
)

type SetupScene struct {
	sceneChanger SceneChanger
	ui           *ui.SetupUI
	setup        components.SetupData
	once         sync.Once
}

func NewSetupScene(sceneChanger SceneChanger) *SetupScene {
	return &SetupScene{
		sceneChanger: sceneChanger,
	}
}

func (s *SetupScene) Update() {
	s.once.Do(s.configure)
	s.ui.Update()
}

func (s *SetupScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.BGBottom)

	if s.ui == nil {
		return
	}
	s.ui.UI.Draw(screen)
}

func (s *SetupScene) configure() {
	s.setup = DefaultSetup()

	onStartMatch := func() {
		s.applyAndSave()
		s.sceneChanger.ChangeScene(NewFightScene(s.sceneChanger, s.setup))
	}
	onGoBack := func() {
		s.applyAndSave()
		s.sceneChanger.ChangeScene(NewMenuScene(s.sceneChanger))
	}

	s.ui = ui.NewSetupUI(&s.setup, onStartMatch, onGoBack)
}

func (s *SetupScene) applyAndSave() {
	ebiten.SetFullscreen(s.setup.Fullscreen)
	systems.SaveCurrentSettings(&s.setup)
}

// DefaultSetup returns the persisted match options, falling back to
// the defaults for anything missing or unreadable.
func DefaultSetup() components.SetupData {
	setup := components.SetupData{
		BestOf:       cfg.Match.BestOf,
		RoundSeconds: cfg.Match.RoundFrames / 60,
	}
	saved, err := systems.LoadSettings()
	if err != nil || saved == nil {
		return setup
	}
	if saved.BestOf > 0 {
		setup.BestOf = saved.BestOf
	}
	if saved.RoundSeconds > 0 {
		setup.RoundSeconds = saved.RoundSeconds
	}
	setup.SwapSchemes = saved.SwapSchemes
	setup.Fullscreen = saved.Fullscreen
	return setup
}
