package systems

import (
	"github.com/automoto/cubejump/archetypes"
	"github.com/automoto/cubejump/components"
	cfg "github.com/automoto/cubejump/config"
	"github.com/yohamta/donburi"
)

// InputSource reports which actions are held for the frame being sampled.
// The ebiten keyboard and scripted replays both implement it.
type InputSource interface {
	Poll() [cfg.ActionCount]bool
}

// UpdateInput samples the source once and updates the InputData buffers.
// Must run BEFORE UpdatePlayer in the frame order.
func UpdateInput(w donburi.World, src InputSource) *components.InputData {
	input := GetOrCreateInput(w)

	// Swap buffers: current becomes previous, then take the new sample
	input.Previous = input.Current
	input.Current = src.Poll()
	input.Current[cfg.ActionNone] = false

	return input
}

// GetAction returns the temporal state of an action for the current frame.
func GetAction(input *components.InputData, action cfg.ActionID) components.ActionState {
	return input.Action(action)
}

// GetOrCreateInput returns the input buffers, creating the game state entity if needed.
func GetOrCreateInput(w donburi.World) *components.InputData {
	return components.Input.Get(getOrCreateGameState(w))
}

func getOrCreateGameState(w donburi.World) *donburi.Entry {
	if entry, ok := components.GameState.First(w); ok {
		return entry
	}
	entry := archetypes.GameState.Spawn(w)
	components.GameState.Set(entry, &components.GameStateData{
		CurrentState:  cfg.StatePlaying,
		PreviousState: cfg.StatePlaying,
	})
	return entry
}
