package components

import (
	"github.com/automoto/cubejump/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Rect returns the object's bounds as level geometry.
func (o *ObjectData) Rect() leveldata.Rect {
	return leveldata.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

var Object = donburi.NewComponentType[ObjectData]()

// Space holds the collision space of the loaded level.
var Space = donburi.NewComponentType[resolv.Space]()
