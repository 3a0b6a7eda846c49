package factory

import (
	"github.com/automoto/cubejump/archetypes"
	"github.com/automoto/cubejump/components"
	cfg "github.com/automoto/cubejump/config"
	"github.com/automoto/cubejump/leveldata"
	"github.com/automoto/cubejump/tags"
	"github.com/yohamta/donburi"
)

// PlayerRect returns the player's bounds when standing on the given feet point.
func PlayerRect(feet leveldata.Point) leveldata.Rect {
	return leveldata.RectAtFeet(feet, float64(cfg.Player.CollisionWidth), float64(cfg.Player.CollisionHeight))
}

// CreatePlayer spawns the cube standing on the given feet point.
func CreatePlayer(w donburi.World, feet leveldata.Point) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	obj := newObject(PlayerRect(feet), tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Player.SetValue(player, components.PlayerData{
		Alive:  true,
		Facing: 1,
	})
	components.Physics.SetValue(player, components.PhysicsData{})
	addToSpace(w, obj)

	return player
}
