package config

// MatchStateID identifies a phase of the round state machine
type MatchStateID int

const (
	MatchStateIntro MatchStateID = iota // pre-round freeze, inputs ignored
	MatchStateFighting
	MatchStateRoundOver // banner shown, next round pending
	MatchStateOver      // match decided, post-match freeze running
)

// AttackKind identifies a fighter's current attack, if any
type AttackKind int

const (
	AttackNone AttackKind = iota
	AttackPunch
	AttackKick
)

// RoundOutcome records how a finished round was decided
type RoundOutcome int

const (
	OutcomeNone RoundOutcome = iota
	OutcomeKO
	OutcomeTimeout
	OutcomeDraw // double KO or equal health at timeout, round replays
)
