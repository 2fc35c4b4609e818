package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type HealthData struct {
	Current int
	Max     int
}

// Damage reduces health by amount, clamping at zero.
func (h *HealthData) Damage(amount int) {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
}

// Dead reports whether health has reached zero.
func (h *HealthData) Dead() bool {
	return h.Current <= 0
}

// HealthBarData drives the HUD bar for one fighter. Trail lags behind
// the real health fraction and catches up via tween, giving the
// drained portion a visible afterimage.
type HealthBarData struct {
	PlayerIndex int
	Trail       float32      // displayed trail fraction, 0..1
	Target      float32      // health fraction the trail is easing toward
	Tween       *gween.Tween // nil when the trail has caught up
}

var Health = donburi.NewComponentType[HealthData]()
var HealthBar = donburi.NewComponentType[HealthBarData]()
