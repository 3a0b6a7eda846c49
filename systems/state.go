package systems

import (
	"fmt"

	"github.com/automoto/cubejump/components"
	cfg "github.com/automoto/cubejump/config"
	"github.com/yohamta/donburi"
)

// legalTransitions lists every state each state may move to. Restart enters
// Playing from any state, so Playing is reachable from all of them.
var legalTransitions = map[cfg.GameStateID][]cfg.GameStateID{
	cfg.StatePlaying:  {cfg.StatePaused, cfg.StateGameOver, cfg.StateWin},
	cfg.StatePaused:   {cfg.StatePlaying},
	cfg.StateGameOver: {cfg.StatePlaying},
	cfg.StateWin:      {cfg.StatePlaying},
}

// CanTransition reports whether from -> to is a legal state change.
func CanTransition(from, to cfg.GameStateID) bool {
	for _, s := range legalTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// GetGameState returns the game state, creating it in Playing if needed.
func GetGameState(w donburi.World) *components.GameStateData {
	return components.GameState.Get(getOrCreateGameState(w))
}

// CurrentState returns the active top-level state.
func CurrentState(w donburi.World) cfg.GameStateID {
	return GetGameState(w).CurrentState
}

// TransitionState moves the game to a new state. Staying in the same state is
// a no-op; an illegal change is a programming error and panics.
func TransitionState(w donburi.World, to cfg.GameStateID) {
	state := GetGameState(w)
	if state.CurrentState == to {
		return
	}
	if !CanTransition(state.CurrentState, to) {
		panic(fmt.Sprintf("illegal game state transition %s -> %s", state.CurrentState, to))
	}
	state.PreviousState = state.CurrentState
	state.CurrentState = to
}

// RequestQuit marks the session for exit. The loop stops at its next
// iteration boundary.
func RequestQuit(w donburi.World) {
	GetGameState(w).QuitRequested = true
}
