package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/ringside/ringside/components"
	cfg "github.com/ringside/ringside/config"
	"github.com/ringside/ringside/systems/factory"
	"github.com/ringside/ringside/tags"
)

// UpdateMatch drives the round state machine. It runs after combat so
// a KO registers the same tick the hit lands, and a KO always beats
// the round clock expiring on that tick.
func UpdateMatch(e *ecs.ECS) {
	entry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	match := components.Match.Get(entry)

	switch match.State {
	case cfg.MatchStateIntro:
		match.StateTimer--
		if match.StateTimer <= 0 {
			match.State = cfg.MatchStateFighting
		}

	case cfg.MatchStateFighting:
		updateFighting(e, match)

	case cfg.MatchStateRoundOver:
		match.StateTimer--
		if match.StateTimer <= 0 {
			startNextRound(e, match)
		}

	case cfg.MatchStateOver:
		if match.StateTimer > 0 {
			match.StateTimer--
		}
	}
}

func updateFighting(e *ecs.ECS, match *components.MatchData) {
	koA := fighterDead(e, 0)
	koB := fighterDead(e, 1)

	if koA || koB {
		switch {
		case koA && koB:
			resolveRound(e, match, -1, cfg.OutcomeDraw)
		case koA:
			resolveRound(e, match, 1, cfg.OutcomeKO)
		default:
			resolveRound(e, match, 0, cfg.OutcomeKO)
		}
		return
	}

	match.RoundTimer--
	if match.RoundTimer > 0 {
		return
	}

	hpA := fighterHealth(e, 0)
	hpB := fighterHealth(e, 1)
	switch {
	case hpA > hpB:
		resolveRound(e, match, 0, cfg.OutcomeTimeout)
	case hpB > hpA:
		resolveRound(e, match, 1, cfg.OutcomeTimeout)
	default:
		resolveRound(e, match, -1, cfg.OutcomeDraw)
	}
}

// resolveRound ends the current round. A drawn round awards no win and
// replays; a decided round may also decide the match.
func resolveRound(e *ecs.ECS, match *components.MatchData, winner int, outcome cfg.RoundOutcome) {
	match.RoundWinner = winner
	match.Outcome = outcome

	if winner >= 0 {
		match.Wins[winner]++
		if match.Wins[winner] >= match.WinsNeeded() {
			match.MatchWinner = winner
			match.State = cfg.MatchStateOver
			match.StateTimer = match.MatchEndFrames
			TriggerScreenShake(e, cfg.ScreenShake.KOIntensity, cfg.ScreenShake.KODuration)
			return
		}
	}

	match.State = cfg.MatchStateRoundOver
	match.StateTimer = match.RoundEndFrames
	if outcome == cfg.OutcomeKO {
		TriggerScreenShake(e, cfg.ScreenShake.KOIntensity, cfg.ScreenShake.KODuration)
	}
}

// startNextRound resets both fighters to their spawns and re-arms the
// round clock and intro freeze.
func startNextRound(e *ecs.ECS, match *components.MatchData) {
	stageEntry, ok := components.Stage.First(e.World)
	if !ok {
		return
	}
	s := components.Stage.Get(stageEntry).Current

	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		index := components.Fighter.Get(entry).Index
		for _, spawn := range s.Spawns {
			if spawn.Index == index {
				factory.ResetFighter(entry, spawn)
				break
			}
		}
	})

	match.Round++
	match.RoundTimer = match.RoundFrames
	match.RoundWinner = -2
	match.Outcome = cfg.OutcomeNone
	match.State = cfg.MatchStateIntro
	match.StateTimer = match.IntroFrames
}

// IsMatchFinished reports whether the match has been decided and the
// post-match hold has elapsed.
func IsMatchFinished(e *ecs.ECS) bool {
	entry, ok := components.Match.First(e.World)
	if !ok {
		return false
	}
	match := components.Match.Get(entry)
	return match.State == cfg.MatchStateOver && match.StateTimer <= 0
}

// WithRoundActiveCheck wraps a system to run only while a round is
// live. Intro freezes, round banners and the match-end hold all gate
// the simulation.
func WithRoundActiveCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if entry, ok := components.Match.First(e.World); ok {
			if components.Match.Get(entry).State != cfg.MatchStateFighting {
				return
			}
		}
		system(e)
	}
}

func fighterByIndex(e *ecs.ECS, index int) *donburi.Entry {
	var found *donburi.Entry
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		if components.Fighter.Get(entry).Index == index {
			found = entry
		}
	})
	return found
}

func fighterDead(e *ecs.ECS, index int) bool {
	entry := fighterByIndex(e, index)
	return entry != nil && components.Health.Get(entry).Dead()
}

func fighterHealth(e *ecs.ECS, index int) int {
	entry := fighterByIndex(e, index)
	if entry == nil {
		return 0
	}
	return components.Health.Get(entry).Current
}
