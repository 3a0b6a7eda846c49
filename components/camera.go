package components

import (
	"github.com/yohamta/donburi"
)

// CameraData holds the world position at the center of the view.
type CameraData struct {
	Position Vector
}

var Camera = donburi.NewComponentType[CameraData]()
