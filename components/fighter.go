package components

import "github.com/yohamta/donburi"

// FighterData holds a fighter's stance and per-frame combat state.
// Movement and combat tuning is captured here at spawn time so the
// simulation never reads config globals mid-fight.
type FighterData struct {
	Index  int     // 0 = left spawn, 1 = right spawn
	Facing float64 // -1 left, 1 right, flipped to face the opponent

	Crouching bool
	Blocking  bool

	// Hitstop counts down while the fighter is frozen after landing
	// or receiving a hit. InHitstop latches for the rest of the tick
	// so later systems skip the fighter without re-reading the timer.
	Hitstop   int
	InHitstop bool

	// Tuning captured from config at spawn
	MoveSpeed     float64
	JumpSpeed     float64
	HitstopFrames int
	Pushback      float64
	BlockPushback float64
	ChipRate      float64
}

var Fighter = donburi.NewComponentType[FighterData]()
