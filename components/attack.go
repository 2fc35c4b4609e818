package components

import (
	cfg "github.com/ringside/ringside/config"
	"github.com/yohamta/donburi"
)

// AttackData tracks the fighter's current swing. Timer counts frames
// since the attack started and only ever advances; a new attack cannot
// begin until Kind returns to AttackNone and Cooldown reaches zero.
type AttackData struct {
	Kind     cfg.AttackKind
	Timer    int
	HasHit   bool // set once the swing lands or is blocked
	Cooldown int  // frames until another attack may start

	// Tuning captured from config at spawn
	CooldownFrames int
	Punch          cfg.AttackConfig
	Kick           cfg.AttackConfig
}

var Attack = donburi.NewComponentType[AttackData]()

// Current returns the config for the attack in progress, or nil.
func (a *AttackData) Current() *cfg.AttackConfig {
	switch a.Kind {
	case cfg.AttackPunch:
		return &a.Punch
	case cfg.AttackKick:
		return &a.Kick
	}
	return nil
}

// Active reports whether the current swing is inside its active window.
func (a *AttackData) Active() bool {
	c := a.Current()
	if c == nil {
		return false
	}
	return a.Timer >= c.ActiveStart && a.Timer < c.ActiveEnd
}
