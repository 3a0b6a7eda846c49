package config

import "fmt"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionPause
	ActionRestart
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:      "none",
	ActionMoveLeft:  "left",
	ActionMoveRight: "right",
	ActionJump:      "jump",
	ActionPause:     "pause",
	ActionRestart:   "restart",
	ActionQuit:      "quit",
}

func (a ActionID) String() string {
	if a >= 0 && a < ActionCount {
		return actionNames[a]
	}
	return fmt.Sprintf("ActionID(%d)", int(a))
}

// ParseAction maps an action name such as "jump" back to its ActionID.
func ParseAction(name string) (ActionID, error) {
	for id := ActionMoveLeft; id < ActionCount; id++ {
		if actionNames[id] == name {
			return id, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}
