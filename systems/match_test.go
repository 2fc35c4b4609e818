package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringside/ringside/components"
	cfg "github.com/ringside/ringside/config"
)

func TestIntroCountsDownToFighting(t *testing.T) {
	e, _, _ := newFightWorld()
	match := matchData(e)
	require.Equal(t, cfg.MatchStateIntro, match.State)

	for i := 0; i < match.IntroFrames; i++ {
		UpdateMatch(e)
	}
	assert.Equal(t, cfg.MatchStateFighting, match.State)
}

func TestKOEndsRound(t *testing.T) {
	e, _, p2 := newFightWorld()
	match := matchData(e)
	match.State = cfg.MatchStateFighting

	components.Health.Get(p2).Current = 0
	UpdateMatch(e)

	assert.Equal(t, cfg.MatchStateRoundOver, match.State)
	assert.Equal(t, cfg.OutcomeKO, match.Outcome)
	assert.Equal(t, 0, match.RoundWinner)
	assert.Equal(t, [2]int{1, 0}, match.Wins)
}

func TestKOBeatsExpiringClock(t *testing.T) {
	e, p1, _ := newFightWorld()
	match := matchData(e)
	match.State = cfg.MatchStateFighting
	match.RoundTimer = 1

	components.Health.Get(p1).Current = 0
	UpdateMatch(e)

	assert.Equal(t, cfg.OutcomeKO, match.Outcome)
	assert.Equal(t, 1, match.RoundWinner)
}

func TestTimeoutDecidedByRemainingHealth(t *testing.T) {
	e, p1, _ := newFightWorld()
	match := matchData(e)
	match.State = cfg.MatchStateFighting
	match.RoundTimer = 1

	components.Health.Get(p1).Current = 40
	UpdateMatch(e)

	assert.Equal(t, cfg.OutcomeTimeout, match.Outcome)
	assert.Equal(t, 1, match.RoundWinner)
	assert.Equal(t, [2]int{0, 1}, match.Wins)
}

func TestTimeoutTieReplaysRound(t *testing.T) {
	e, p1, p2 := newFightWorld()
	match := matchData(e)
	match.State = cfg.MatchStateFighting
	match.RoundTimer = 1

	components.Health.Get(p1).Current = 55
	components.Health.Get(p2).Current = 55
	UpdateMatch(e)

	require.Equal(t, cfg.MatchStateRoundOver, match.State)
	assert.Equal(t, cfg.OutcomeDraw, match.Outcome)
	assert.Equal(t, -1, match.RoundWinner)
	assert.Equal(t, [2]int{0, 0}, match.Wins)

	match.StateTimer = 1
	UpdateMatch(e)

	assert.Equal(t, cfg.MatchStateIntro, match.State)
	assert.Equal(t, 2, match.Round)
	assert.Equal(t, cfg.Fighter.Health, components.Health.Get(p1).Current)
	assert.Equal(t, cfg.Fighter.Health, components.Health.Get(p2).Current)
}

func TestDoubleKOIsDraw(t *testing.T) {
	e, p1, p2 := newFightWorld()
	match := matchData(e)
	match.State = cfg.MatchStateFighting

	components.Health.Get(p1).Current = 0
	components.Health.Get(p2).Current = 0
	UpdateMatch(e)

	assert.Equal(t, cfg.OutcomeDraw, match.Outcome)
	assert.Equal(t, -1, match.RoundWinner)
	assert.Equal(t, [2]int{0, 0}, match.Wins)
}

func TestMajorityWinsEndMatch(t *testing.T) {
	e, _, p2 := newFightWorld()
	match := matchData(e)
	match.State = cfg.MatchStateFighting
	match.Wins[0] = match.WinsNeeded() - 1

	components.Health.Get(p2).Current = 0
	UpdateMatch(e)

	assert.Equal(t, cfg.MatchStateOver, match.State)
	assert.Equal(t, 0, match.MatchWinner)
	assert.Equal(t, match.MatchEndFrames, match.StateTimer)

	assert.False(t, IsMatchFinished(e))
	for i := 0; i < match.MatchEndFrames; i++ {
		UpdateMatch(e)
	}
	assert.True(t, IsMatchFinished(e))
}

func TestRoundResetRestoresFighters(t *testing.T) {
	e, p1, _ := newFightWorld()
	match := matchData(e)

	// Rough the fighter up mid-round
	components.Health.Get(p1).Current = 10
	moveTo(p1, 500)
	attack := components.Attack.Get(p1)
	attack.Kind = cfg.AttackKick
	attack.Timer = 3

	match.State = cfg.MatchStateRoundOver
	match.StateTimer = 1
	UpdateMatch(e)

	assert.Equal(t, cfg.Fighter.Health, components.Health.Get(p1).Current)
	assert.Equal(t, 200.0, components.Object.Get(p1).Object.X)
	assert.Equal(t, cfg.AttackNone, attack.Kind)
	assert.Equal(t, match.RoundFrames, match.RoundTimer)
}

func TestRoundGateBlocksSimulationOutsideFighting(t *testing.T) {
	e, p1, _ := newFightWorld()
	match := matchData(e)
	match.State = cfg.MatchStateIntro

	gated := WithRoundActiveCheck(UpdateFighters)
	hold(p1, cfg.ActionMoveRight)
	gated(e)
	assert.Zero(t, components.Physics.Get(p1).SpeedX)

	match.State = cfg.MatchStateFighting
	hold(p1, cfg.ActionMoveRight)
	gated(e)
	assert.Equal(t, cfg.Fighter.MoveSpeed, components.Physics.Get(p1).SpeedX)
}

func TestWinsNeeded(t *testing.T) {
	tests := []struct {
		bestOf int
		want   int
	}{
		{1, 1},
		{3, 2},
		{5, 3},
		{7, 4},
	}
	for _, tt := range tests {
		m := components.MatchData{BestOf: tt.bestOf}
		assert.Equal(t, tt.want, m.WinsNeeded(), "best of %d", tt.bestOf)
	}
}

func TestSecondsLeftRoundsUp(t *testing.T) {
	tests := []struct {
		frames int
		want   int
	}{
		{3600, 60},
		{61, 2},
		{60, 1},
		{1, 1},
		{0, 0},
	}
	for _, tt := range tests {
		m := components.MatchData{RoundTimer: tt.frames}
		assert.Equal(t, tt.want, m.SecondsLeft(), "%d frames", tt.frames)
	}
}
