package factory

import (
	"github.com/automoto/cubejump/archetypes"
	"github.com/automoto/cubejump/components"
	"github.com/yohamta/donburi"
)

func CreateCamera(w donburi.World) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.Set(camera, &components.CameraData{})
	return camera
}
