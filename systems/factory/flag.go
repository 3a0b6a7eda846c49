package factory

import (
	"github.com/automoto/cubejump/archetypes"
	"github.com/automoto/cubejump/components"
	cfg "github.com/automoto/cubejump/config"
	"github.com/automoto/cubejump/leveldata"
	"github.com/automoto/cubejump/tags"
	"github.com/yohamta/donburi"
)

// CreateFlag creates the level-end trigger.
func CreateFlag(w donburi.World, r leveldata.Rect) *donburi.Entry {
	flag := archetypes.Flag.Spawn(w)

	obj := newObject(r, tags.ResolvFlag)
	obj.Data = flag
	components.Object.SetValue(flag, components.ObjectData{Object: obj})
	components.Flag.SetValue(flag, components.FlagData{})
	addToSpace(w, obj)

	return flag
}

func CreateCoin(w donburi.World, r leveldata.Rect) *donburi.Entry {
	coin := archetypes.Coin.Spawn(w)

	obj := newObject(r, tags.ResolvCoin)
	obj.Data = coin
	components.Object.SetValue(coin, components.ObjectData{Object: obj})
	components.Coin.SetValue(coin, components.CoinData{Value: cfg.Score.CoinValue})
	addToSpace(w, obj)

	return coin
}
