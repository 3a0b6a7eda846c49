package systems

import (
	"github.com/automoto/cubejump/components"
	"github.com/automoto/cubejump/leveldata"
	"github.com/yohamta/donburi"
)

// ActivateCheckpoint marks a checkpoint as the level's respawn point.
// Touching an already activated checkpoint does nothing. Returns true only
// on the frame the checkpoint becomes active.
func ActivateCheckpoint(w donburi.World, checkpointEntry *donburi.Entry) bool {
	checkpoint := components.Checkpoint.Get(checkpointEntry)

	// Only activate if not already activated
	if checkpoint.Activated {
		return false
	}
	checkpoint.Activated = true

	levelData := GetLevel(w)
	levelData.ActiveCheckpoint = &components.ActiveCheckpointData{
		CheckpointID: checkpoint.CheckpointID,
		Respawn:      checkpoint.Respawn,
	}
	return true
}

// RespawnPoint returns the feet position the player respawns at: the most
// recently activated checkpoint, or the level spawn when none is active.
func RespawnPoint(w donburi.World) leveldata.Point {
	levelData := GetLevel(w)
	if levelData.ActiveCheckpoint != nil {
		return levelData.ActiveCheckpoint.Respawn
	}
	return *levelData.CurrentLevel.Spawn
}

// HandleCheckpoints activates every checkpoint the player touched this frame.
func HandleCheckpoints(w donburi.World, touched []*donburi.Entry) int {
	activated := 0
	for _, e := range touched {
		if e.Valid() && ActivateCheckpoint(w, e) {
			activated++
		}
	}
	return activated
}
