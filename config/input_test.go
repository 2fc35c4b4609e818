package config

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

var fightActions = []ActionID{
	ActionMoveLeft, ActionMoveRight, ActionJump, ActionCrouch,
	ActionPunch, ActionKick, ActionBlock,
}

func TestControlSchemesCoverFightActions(t *testing.T) {
	for scheme, bindings := range ControlSchemeBindings {
		for _, action := range fightActions {
			if len(bindings[action]) == 0 {
				t.Errorf("scheme %d: action %d has no key bound", scheme, action)
			}
		}
	}
}

func TestControlSchemesDoNotShareKeys(t *testing.T) {
	if len(ControlSchemeBindings) < 2 {
		t.Fatalf("want at least 2 control schemes, got %d", len(ControlSchemeBindings))
	}

	seen := map[ebiten.Key]ControlSchemeID{}
	for scheme, bindings := range ControlSchemeBindings {
		for _, keys := range bindings {
			for _, k := range keys {
				if prev, ok := seen[k]; ok && prev != ControlSchemeID(scheme) {
					t.Errorf("key %v bound in schemes %d and %d", k, prev, scheme)
				}
				seen[k] = ControlSchemeID(scheme)
			}
		}
	}
}
