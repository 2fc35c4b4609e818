package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringside/ringside/components"
	cfg "github.com/ringside/ringside/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func healthBarFor(e *ecs.ECS, index int) *components.HealthBarData {
	var found *components.HealthBarData
	components.HealthBar.Each(e.World, func(entry *donburi.Entry) {
		bar := components.HealthBar.Get(entry)
		if bar.PlayerIndex == index {
			found = bar
		}
	})
	return found
}

func TestHealthBarTrailDrainsAfterDamage(t *testing.T) {
	e, _, p2 := newFightWorld()
	bar := healthBarFor(e, 1)
	require.NotNil(t, bar)

	health := components.Health.Get(p2)
	health.Current = health.Max / 2
	want := float32(0.5)

	UpdateHealthBars(e)
	assert.Equal(t, want, bar.Target)
	assert.Greater(t, bar.Trail, want, "trail lags behind the damage")

	// The drain tween runs the trail down to the target
	for i := 0; i < 120; i++ {
		UpdateHealthBars(e)
	}
	assert.InDelta(t, want, bar.Trail, 0.01)
	assert.Nil(t, bar.Tween)
}

func TestHealthBarSnapsOnRoundReset(t *testing.T) {
	e, _, p2 := newFightWorld()
	bar := healthBarFor(e, 1)
	require.NotNil(t, bar)

	health := components.Health.Get(p2)
	health.Current = 20
	UpdateHealthBars(e)
	require.Less(t, bar.Target, float32(1))

	health.Current = health.Max
	UpdateHealthBars(e)
	assert.Equal(t, float32(1), bar.Target)
	assert.Equal(t, float32(1), bar.Trail)
	assert.Nil(t, bar.Tween)
}

func TestControlsHelpLineNamesEveryAction(t *testing.T) {
	lineA := controlsHelpLine(0, cfg.ControlSchemeA)
	assert.Equal(t, "P1: A/D move, W jump, S crouch, J punch, K kick, L block", lineA)

	lineB := controlsHelpLine(1, cfg.ControlSchemeB)
	assert.Equal(t, "P2: Left/Right move, Up jump, Down crouch, KP1/1 punch, KP2/2 kick, ShiftRight/3 block", lineB)
}

func TestControlsHelpLineUnknownSchemeFallsBack(t *testing.T) {
	assert.Equal(t, "P1: gamepad", controlsHelpLine(0, -1))
}
