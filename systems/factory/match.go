package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/ringside/ringside/archetypes"
	"github.com/ringside/ringside/components"
	cfg "github.com/ringside/ringside/config"
)

// CreateMatch spawns the match singleton with the round structure
// captured from the setup options.
func CreateMatch(ecs *ecs.ECS, bestOf, roundSeconds int) *donburi.Entry {
	match := archetypes.Match.Spawn(ecs)
	components.Match.SetValue(match, components.MatchData{
		State:       cfg.MatchStateIntro,
		StateTimer:  cfg.Match.IntroFrames,
		RoundTimer:  roundSeconds * 60,
		Round:       1,
		RoundWinner: -2,
		MatchWinner: -1,

		RoundFrames:    roundSeconds * 60,
		BestOf:         bestOf,
		IntroFrames:    cfg.Match.IntroFrames,
		RoundEndFrames: cfg.Match.RoundEndFrames,
		MatchEndFrames: cfg.Match.MatchEndFrames,
	})
	return match
}

// CreateHealthBars spawns one HUD bar per fighter.
func CreateHealthBars(ecs *ecs.ECS) {
	for i := 0; i < 2; i++ {
		bar := archetypes.HealthBar.Spawn(ecs)
		components.HealthBar.SetValue(bar, components.HealthBarData{
			PlayerIndex: i,
			Trail:       1,
			Target:      1,
		})
	}
}

// CreateScreenShake spawns the screen shake singleton, idle.
func CreateScreenShake(ecs *ecs.ECS) *donburi.Entry {
	shake := archetypes.ScreenShake.Spawn(ecs)
	components.ScreenShake.SetValue(shake, components.ScreenShakeData{
		Decay: cfg.ScreenShake.Decay,
	})
	return shake
}
