package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"

	cfg "github.com/ringside/ringside/config"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
// Used for global/menu input where all devices are merged.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method
}

var Input = donburi.NewComponentType[InputData]()

// PlayerInputData stores per-player input state.
// Each fighter entity has its own PlayerInputData with a bound device.
type PlayerInputData struct {
	PlayerIndex    int                   // 0 or 1
	CurrentInput   [cfg.ActionCount]bool // Current frame's Pressed state
	PreviousInput  [cfg.ActionCount]bool // Previous frame's Pressed state
	BoundGamepadID *ebiten.GamepadID     // Bound gamepad (nil = keyboard)
	ControlScheme  cfg.ControlSchemeID   // Keyboard layout when no gamepad is bound
	InputMethod    InputMethod           // Current input method (for UI prompts)
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
