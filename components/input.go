package components

import (
	cfg "github.com/automoto/cubejump/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state
}

// Action returns the temporal state of one action for this frame.
func (d *InputData) Action(action cfg.ActionID) ActionState {
	return ActionState{
		Pressed:      d.Current[action],
		JustPressed:  d.Current[action] && !d.Previous[action],
		JustReleased: !d.Current[action] && d.Previous[action],
	}
}

var Input = donburi.NewComponentType[InputData]()
