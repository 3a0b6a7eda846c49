package factory

import (
	"github.com/automoto/cubejump/archetypes"
	"github.com/automoto/cubejump/components"
	"github.com/automoto/cubejump/leveldata"
	"github.com/automoto/cubejump/tags"
	"github.com/yohamta/donburi"
)

// CreateCheckpoint creates a checkpoint entity with collision detection
func CreateCheckpoint(w donburi.World, def leveldata.Object) *donburi.Entry {
	checkpoint := archetypes.Checkpoint.Spawn(w)

	obj := newObject(def.Rect, tags.ResolvCheckpoint)
	obj.Data = checkpoint

	components.Object.SetValue(checkpoint, components.ObjectData{Object: obj})
	components.Checkpoint.SetValue(checkpoint, components.CheckpointData{
		CheckpointID: def.ID,
		Activated:    false,
		Respawn:      def.Respawn,
	})
	addToSpace(w, obj)

	return checkpoint
}
