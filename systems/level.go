package systems

import (
	"github.com/automoto/cubejump/components"
	"github.com/yohamta/donburi"
)

// GetLevel returns the level state. The level entity is created with the
// session, so a missing one is a programming error.
func GetLevel(w donburi.World) *components.LevelData {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		panic("level entity missing")
	}
	return components.Level.Get(levelEntry)
}

// GetProgress returns lives and score, which survive level transitions.
func GetProgress(w donburi.World) *components.ProgressData {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		panic("level entity missing")
	}
	return components.Progress.Get(levelEntry)
}
