package components

import (
	"github.com/automoto/cubejump/leveldata"
	"github.com/yohamta/donburi"
)

type CheckpointData struct {
	CheckpointID int
	Activated    bool
	Respawn      leveldata.Point // feet position for respawn
}

var Checkpoint = donburi.NewComponentType[CheckpointData]()

// ActiveCheckpointData is stored in LevelData to track the last activated checkpoint
type ActiveCheckpointData struct {
	CheckpointID int
	Respawn      leveldata.Point
}
