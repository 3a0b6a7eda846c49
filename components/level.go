package components

import (
	"github.com/automoto/cubejump/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel     *leveldata.Level
	LevelIndex       int
	Levels           []*leveldata.Level
	ActiveCheckpoint *ActiveCheckpointData // Last activated checkpoint for respawn
}

// HasNext reports whether another level follows the current one.
func (l *LevelData) HasNext() bool {
	return l.LevelIndex+1 < len(l.Levels)
}

var Level = donburi.NewComponentType[LevelData]()

// ProgressData is game-scoped and survives level transitions.
type ProgressData struct {
	Lives           int
	MaxLives        int
	Score           int
	LevelStartScore int // restored on restart
}

var Progress = donburi.NewComponentType[ProgressData]()
