package components

import "github.com/yohamta/donburi"

// ScreenShakeData tracks active screen shake applied to the whole scene
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
	Decay     float64 // intensity multiplier per frame
	OffsetX   float64 // current frame's draw offset
	OffsetY   float64
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData tints a fighter for a few frames after an impact
type FlashData struct {
	Duration int     // frames remaining
	R, G, B  float32 // color multipliers (1,1,1 = white, 1,0.3,0.3 = red)
}

var Flash = donburi.NewComponentType[FlashData]()
