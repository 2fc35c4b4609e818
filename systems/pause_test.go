package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"

	"github.com/ringside/ringside/components"
	cfg "github.com/ringside/ringside/config"
)

// pressGlobal injects merged menu input for the next tick.
func pressGlobal(e *ecs.ECS, actions ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}

func TestPauseToggleGatesSystems(t *testing.T) {
	e, p1, _ := newFightWorld()
	matchData(e).State = cfg.MatchStateFighting

	pressGlobal(e, cfg.ActionPause)
	UpdatePause(e)
	pause := GetOrCreatePause(e)
	require.True(t, pause.IsPaused)
	assert.Equal(t, components.MenuResume, pause.SelectedOption)

	gated := WithPauseCheck(UpdateFighters)
	hold(p1, cfg.ActionMoveRight)
	gated(e)
	assert.Zero(t, components.Physics.Get(p1).SpeedX)

	pressGlobal(e, cfg.ActionPause)
	UpdatePause(e)
	assert.False(t, pause.IsPaused)

	hold(p1, cfg.ActionMoveRight)
	gated(e)
	assert.Equal(t, cfg.Fighter.MoveSpeed, components.Physics.Get(p1).SpeedX)
}

func TestPauseMenuNavigationWraps(t *testing.T) {
	e, _, _ := newFightWorld()

	pressGlobal(e, cfg.ActionPause)
	UpdatePause(e)
	pause := GetOrCreatePause(e)
	require.True(t, pause.IsPaused)

	pressGlobal(e, cfg.ActionMenuUp)
	UpdatePause(e)
	assert.Equal(t, components.MenuExit, pause.SelectedOption)

	pressGlobal(e, cfg.ActionMenuDown)
	UpdatePause(e)
	assert.Equal(t, components.MenuResume, pause.SelectedOption)
}

func TestPauseRestartRequest(t *testing.T) {
	e, _, _ := newFightWorld()
	RestartRequested = false

	pressGlobal(e, cfg.ActionPause)
	UpdatePause(e)
	pause := GetOrCreatePause(e)
	require.True(t, pause.IsPaused)

	pressGlobal(e, cfg.ActionMenuDown)
	UpdatePause(e)
	require.Equal(t, components.MenuRestart, pause.SelectedOption)

	pressGlobal(e, cfg.ActionMenuSelect)
	UpdatePause(e)
	assert.True(t, RestartRequested)
	assert.False(t, pause.IsPaused)

	RestartRequested = false
}
