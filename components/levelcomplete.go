package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// LevelCompleteData stores the state of the level complete transition
type LevelCompleteData struct {
	IsComplete bool
	Tween      *gween.Tween // runs 0 -> 1 over the transition time
	Progress   float64
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
