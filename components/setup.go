package components

import "github.com/yohamta/donburi"

// SetupData holds the match options chosen on the setup screen.
// Singleton, created by the menu scene and read when a fight starts.
type SetupData struct {
	BestOf       int
	RoundSeconds int
	SwapSchemes  bool // give player one the right-side keyboard layout
	Fullscreen   bool
}

var Setup = donburi.NewComponentType[SetupData]()
