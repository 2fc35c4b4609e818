package components

import (
	cfg "github.com/ringside/ringside/config"
	"github.com/yohamta/donburi"
)

// MatchData stores the round state machine and scores.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	State      cfg.MatchStateID
	StateTimer int // frames remaining in a timed state (intro, banners)
	RoundTimer int // frames remaining on the round clock
	Round      int // 1-based round number

	Wins        [2]int
	RoundWinner int              // 0 or 1, -1 for a drawn round, -2 none yet
	Outcome     cfg.RoundOutcome // how the last round ended
	MatchWinner int              // -1 until the match is decided

	// Tuning captured from config at match creation
	RoundFrames    int
	BestOf         int
	IntroFrames    int
	RoundEndFrames int
	MatchEndFrames int
}

var Match = donburi.NewComponentType[MatchData]()

// WinsNeeded returns the round wins required to take the match.
func (m *MatchData) WinsNeeded() int {
	return m.BestOf/2 + 1
}

// SecondsLeft converts the round clock to whole seconds, rounding up
// so the display only shows 0 when the clock has actually expired.
func (m *MatchData) SecondsLeft() int {
	return (m.RoundTimer + 59) / 60
}
