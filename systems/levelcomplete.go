package systems

import (
	"github.com/automoto/cubejump/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// GetOrCreateLevelComplete returns the level transition state.
func GetOrCreateLevelComplete(w donburi.World) *components.LevelCompleteData {
	return components.LevelComplete.Get(getOrCreateGameState(w))
}

// StartLevelTransition begins the level complete banner. Physics stays
// frozen until AdvanceLevelTransition reports it finished. A zero duration
// finishes on the next advance.
func StartLevelTransition(w donburi.World, duration float64) {
	lc := GetOrCreateLevelComplete(w)
	lc.IsComplete = true
	lc.Progress = 0
	lc.Tween = nil
	if duration > 0 {
		lc.Tween = gween.New(0, 1, float32(duration), ease.Linear)
	}
}

// AdvanceLevelTransition moves the transition forward by dt seconds and
// returns true on the frame it finishes. The transition state is cleared then.
func AdvanceLevelTransition(w donburi.World, dt float64) bool {
	lc := GetOrCreateLevelComplete(w)
	if !lc.IsComplete {
		return false
	}

	finished := true
	if lc.Tween != nil {
		var value float32
		value, finished = lc.Tween.Update(float32(dt))
		lc.Progress = float64(value)
	}
	if finished {
		ClearLevelTransition(w)
	}
	return finished
}

// ClearLevelTransition cancels any running transition.
func ClearLevelTransition(w donburi.World) {
	lc := GetOrCreateLevelComplete(w)
	lc.IsComplete = false
	lc.Tween = nil
	lc.Progress = 0
}

// IsLevelTransitioning reports whether the level complete banner is running.
func IsLevelTransitioning(w donburi.World) bool {
	return GetOrCreateLevelComplete(w).IsComplete
}
