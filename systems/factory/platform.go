package factory

import (
	"github.com/automoto/cubejump/archetypes"
	"github.com/automoto/cubejump/components"
	"github.com/automoto/cubejump/leveldata"
	"github.com/automoto/cubejump/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePillar creates a static solid block.
func CreatePillar(w donburi.World, r leveldata.Rect) *donburi.Entry {
	pillar := archetypes.Pillar.Spawn(w)

	obj := newObject(r, tags.ResolvSolid)
	obj.Data = pillar
	components.Object.SetValue(pillar, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	return pillar
}

func newObject(r leveldata.Rect, tag string) *resolv.Object {
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	return obj
}
