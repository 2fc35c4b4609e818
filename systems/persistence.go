package systems

import (
	"encoding/json"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"

	"github.com/ringside/ringside/components"
	cfg "github.com/ringside/ringside/config"
)

// SavedSettings represents the match options stored on disk
type SavedSettings struct {
	BestOf       int  `json:"bestOf"`
	RoundSeconds int  `json:"roundSeconds"`
	SwapSchemes  bool `json:"swapSchemes"`
	Fullscreen   bool `json:"fullscreen"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "ringside",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. A nil result with nil error
// means no settings were saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the options held by the Setup component
func SaveCurrentSettings(s *components.SetupData) {
	_ = SaveSettings(&SavedSettings{
		BestOf:       s.BestOf,
		RoundSeconds: s.RoundSeconds,
		SwapSchemes:  s.SwapSchemes,
		Fullscreen:   s.Fullscreen,
	})
}

// ApplySavedSettingsGlobal applies settings that do not live in any
// world, usable before the first scene exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	ebiten.SetFullscreen(saved.Fullscreen)
}

// ApplySavedSettings copies loaded settings into the Setup singleton
// and applies the window mode.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}

	ebiten.SetFullscreen(saved.Fullscreen)

	if entry, ok := components.Setup.First(e.World); ok {
		setup := components.Setup.Get(entry)
		if saved.BestOf > 0 {
			setup.BestOf = saved.BestOf
		}
		if saved.RoundSeconds > 0 {
			setup.RoundSeconds = saved.RoundSeconds
		}
		setup.SwapSchemes = saved.SwapSchemes
		setup.Fullscreen = saved.Fullscreen
	}
}

// GetOrCreateSetup returns the Setup singleton with defaults applied.
func GetOrCreateSetup(e *ecs.ECS) *components.SetupData {
	if _, ok := components.Setup.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Setup))
		components.Setup.SetValue(ent, components.SetupData{
			BestOf:       cfg.Match.BestOf,
			RoundSeconds: cfg.Match.RoundFrames / 60,
		})
	}

	ent, _ := components.Setup.First(e.World)
	return components.Setup.Get(ent)
}
