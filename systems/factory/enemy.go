package factory

import (
	"github.com/automoto/cubejump/archetypes"
	"github.com/automoto/cubejump/components"
	"github.com/automoto/cubejump/leveldata"
	"github.com/automoto/cubejump/tags"
	"github.com/yohamta/donburi"
)

func CreateEnemy(w donburi.World, def leveldata.Object) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(w)

	obj := newObject(def.Rect, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	components.Enemy.SetValue(enemy, components.EnemyData{
		PatrolLeft:  def.MinX,
		PatrolRight: def.MaxX,
		Direction:   def.Direction,
		Speed:       def.Speed,
	})
	addToSpace(w, obj)

	return enemy
}
