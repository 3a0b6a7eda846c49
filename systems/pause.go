package systems

import (
	cfg "github.com/automoto/cubejump/config"
	"github.com/yohamta/donburi"
)

// TogglePause switches Playing <-> Paused. It does nothing in GameOver or Win
// and while a level transition is running. Returns true if the state changed.
func TogglePause(w donburi.World) bool {
	if IsLevelTransitioning(w) {
		return false
	}

	switch CurrentState(w) {
	case cfg.StatePlaying:
		TransitionState(w, cfg.StatePaused)
		return true
	case cfg.StatePaused:
		TransitionState(w, cfg.StatePlaying)
		return true
	default:
		return false
	}
}

// IsPaused reports whether the game is in the Paused state.
func IsPaused(w donburi.World) bool {
	return CurrentState(w) == cfg.StatePaused
}
