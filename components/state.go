package components

import (
	"github.com/automoto/cubejump/config"
	"github.com/yohamta/donburi"
)

type GameStateData struct {
	CurrentState  config.GameStateID
	PreviousState config.GameStateID
	QuitRequested bool
}

var GameState = donburi.NewComponentType[GameStateData]()
