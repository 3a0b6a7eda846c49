package systems

import (
	"math"

	"github.com/automoto/cubejump/components"
	"github.com/automoto/cubejump/config"
	"github.com/automoto/cubejump/tags"
	"github.com/yohamta/donburi"
)

// UpdateCamera eases the camera toward the player's center, keeping the view
// inside the level.
func UpdateCamera(w donburi.World) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	target, ok := cameraTarget(w)
	if !ok {
		return // no player or no level yet
	}

	// Center the camera on the constrained target position, with some smoothing.
	camera.Position.X += (target.X - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (target.Y - camera.Position.Y) * config.Camera.FollowSmoothing
}

// SnapCamera jumps straight to the target, used after a level load so the
// first frame does not pan in from the old position.
func SnapCamera(w donburi.World) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	if target, ok := cameraTarget(w); ok {
		components.Camera.Get(cameraEntry).Position = target
	}
}

func cameraTarget(w donburi.World) (components.Vector, bool) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return components.Vector{}, false
	}
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return components.Vector{}, false
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return components.Vector{}, false
	}

	playerObject := components.Object.Get(playerEntry)
	targetX := playerObject.X + playerObject.W/2
	targetY := playerObject.Y + playerObject.H/2

	return components.Vector{
		X: clampAxis(targetX, float64(config.C.Width), float64(levelData.CurrentLevel.Width)),
		Y: clampAxis(targetY, float64(config.C.Height), float64(levelData.CurrentLevel.Height)),
	}, true
}

// clampAxis keeps a view of size screen inside [0, level]. A level smaller
// than the screen is centered.
func clampAxis(target, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, target))
}
