package factory

import (
	"github.com/automoto/cubejump/archetypes"
	"github.com/automoto/cubejump/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace installs a fresh collision space, replacing the previous level's.
func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space, ok := components.Space.First(w)
	if !ok {
		space = archetypes.Space.Spawn(w)
	}
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

func addToSpace(w donburi.World, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

// RemoveFromSpace takes an entity's collision object out of the level space.
func RemoveFromSpace(w donburi.World, entry *donburi.Entry) {
	if !entry.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(entry)
	if obj.Object != nil && obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
}
