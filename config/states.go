package config

import "fmt"

// GameStateID is the top-level game state. Exactly one is active at a time.
type GameStateID int

const (
	StatePlaying GameStateID = iota
	StatePaused
	StateGameOver
	StateWin
)

var gameStateNames = map[GameStateID]string{
	StatePlaying:  "Playing",
	StatePaused:   "Paused",
	StateGameOver: "GameOver",
	StateWin:      "Win",
}

func (s GameStateID) String() string {
	if name, ok := gameStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("GameStateID(%d)", int(s))
}

// FreezesPhysics reports whether the world stands still in this state.
func (s GameStateID) FreezesPhysics() bool {
	return s != StatePlaying
}
