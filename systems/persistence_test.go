package systems

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/ringside/ringside/components"
	cfg "github.com/ringside/ringside/config"
)

func TestSavedSettingsRoundTrip(t *testing.T) {
	in := SavedSettings{
		BestOf:       5,
		RoundSeconds: 99,
		SwapSchemes:  true,
		Fullscreen:   true,
	}

	data, err := json.Marshal(&in)
	require.NoError(t, err)

	var out SavedSettings
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestApplySavedSettingsFillsSetup(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	setup := GetOrCreateSetup(e)
	require.Equal(t, cfg.Match.BestOf, setup.BestOf)

	ApplySavedSettings(e, &SavedSettings{BestOf: 7, RoundSeconds: 30, SwapSchemes: true})

	setup = GetOrCreateSetup(e)
	assert.Equal(t, 7, setup.BestOf)
	assert.Equal(t, 30, setup.RoundSeconds)
	assert.True(t, setup.SwapSchemes)
}

func TestApplySavedSettingsIgnoresZeroValues(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	GetOrCreateSetup(e)

	// A file from an older build may miss fields; zeros must not
	// wipe the defaults.
	ApplySavedSettings(e, &SavedSettings{})

	setup := GetOrCreateSetup(e)
	assert.Equal(t, cfg.Match.BestOf, setup.BestOf)
	assert.Equal(t, cfg.Match.RoundFrames/60, setup.RoundSeconds)
}

func TestPersistenceNoopsWhenUninitialized(t *testing.T) {
	gdataManager = nil
	gdataInitialized = false

	saved, err := LoadSettings()
	assert.NoError(t, err)
	assert.Nil(t, saved)

	assert.NoError(t, SaveSettings(&SavedSettings{BestOf: 3}))
	assert.NotPanics(t, func() { ApplySavedSettingsGlobal(nil) })
}

func TestGetOrCreateSetupIsSingleton(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	first := GetOrCreateSetup(e)
	first.BestOf = 7

	second := GetOrCreateSetup(e)
	assert.Equal(t, 7, second.BestOf)

	count := 0
	components.Setup.Each(e.World, func(entry *donburi.Entry) { count++ })
	assert.Equal(t, 1, count)
}
