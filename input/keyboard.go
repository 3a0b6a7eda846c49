// Package input samples ebitengine devices into game actions.
package input

import (
	cfg "github.com/automoto/cubejump/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding represents the keys and buttons bound to a single action
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps every action to its keys. Hosts may edit it before the
// first frame.
var Bindings = map[cfg.ActionID]Binding{
	cfg.ActionMoveLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	cfg.ActionMoveRight: {
		Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	cfg.ActionJump: {
		Keys:                   []ebiten.Key{ebiten.KeySpace, ebiten.KeyUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionPause: {
		Keys:                   []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	cfg.ActionRestart: {
		Keys:                   []ebiten.Key{ebiten.KeyR},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
	},
	cfg.ActionQuit: {
		Keys: []ebiten.Key{ebiten.KeyQ},
	},
}

// Keyboard reads the keyboard and any standard layout gamepads. It
// implements systems.InputSource.
type Keyboard struct {
	gamepadIDs []ebiten.GamepadID
}

// Poll returns which actions are held right now.
func (k *Keyboard) Poll() [cfg.ActionCount]bool {
	var held [cfg.ActionCount]bool

	k.gamepadIDs = ebiten.AppendGamepadIDs(k.gamepadIDs[:0])

	for action, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				held[action] = true
			}
		}

		for _, gpID := range k.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					held[action] = true
				}
			}
		}
	}

	return held
}
