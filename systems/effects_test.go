package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringside/ringside/components"
)

func TestScreenShakeDecaysToRest(t *testing.T) {
	e, _, _ := newFightWorld()
	TriggerScreenShake(e, 5, 10)

	entry, ok := components.ScreenShake.First(e.World)
	require.True(t, ok)
	shake := components.ScreenShake.Get(entry)

	UpdateEffects(e)
	first := shake.Intensity
	assert.Greater(t, first, 0.0)
	assert.Less(t, first, 5.0)

	for i := 0; i < 20; i++ {
		UpdateEffects(e)
	}
	assert.Zero(t, shake.Intensity)
	assert.Zero(t, shake.OffsetX)
	assert.Zero(t, shake.OffsetY)
}

func TestWeakerShakeDoesNotReplaceStronger(t *testing.T) {
	e, _, _ := newFightWorld()

	entry, _ := components.ScreenShake.First(e.World)
	shake := components.ScreenShake.Get(entry)

	TriggerScreenShake(e, 7, 24)
	TriggerScreenShake(e, 3, 8)
	assert.Equal(t, 7.0, shake.Intensity)
	assert.Equal(t, 24, shake.Duration)

	TriggerScreenShake(e, 9, 8)
	assert.Equal(t, 9.0, shake.Intensity)
}

func TestFlashTimersDecay(t *testing.T) {
	e, p1, p2 := newFightWorld()

	ApplyHit(e, p1, p2, 8)
	flash := components.Flash.Get(p2)
	require.Greater(t, flash.Duration, 0)

	for i := 0; i < 10; i++ {
		UpdateEffects(e)
	}
	assert.Zero(t, flash.Duration)
}
