package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/ringside/ringside/components"
	cfg "github.com/ringside/ringside/config"
)

func TestCreateMatchStartsFresh(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	entry := CreateMatch(e, 5, 99)
	match := components.Match.Get(entry)

	assert.Equal(t, cfg.MatchStateIntro, match.State)
	assert.Equal(t, cfg.Match.IntroFrames, match.StateTimer)
	assert.Equal(t, 1, match.Round)
	assert.Equal(t, 5, match.BestOf)
	assert.Equal(t, 99*60, match.RoundTimer)
	assert.Equal(t, 99*60, match.RoundFrames)
	assert.Equal(t, [2]int{0, 0}, match.Wins)
	assert.Equal(t, -2, match.RoundWinner)
	assert.Equal(t, -1, match.MatchWinner)
}

func TestCreateHealthBarsFullForBothPlayers(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateHealthBars(e)

	seen := map[int]bool{}
	components.HealthBar.Each(e.World, func(entry *donburi.Entry) {
		bar := components.HealthBar.Get(entry)
		seen[bar.PlayerIndex] = true
		assert.Equal(t, float32(1), bar.Target)
		assert.Equal(t, float32(1), bar.Trail)
	})
	require.Len(t, seen, 2)
	assert.True(t, seen[0])
	assert.True(t, seen[1])
}
