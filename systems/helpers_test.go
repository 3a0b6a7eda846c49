package systems

import (
	"testing"

	"github.com/automoto/cubejump/components"
	cfg "github.com/automoto/cubejump/config"
	"github.com/automoto/cubejump/leveldata"
	"github.com/automoto/cubejump/systems/factory"
	"github.com/automoto/cubejump/tags"
	"github.com/yohamta/donburi"
)

const testDT = 1.0 / 60

// floorLevel is 960x480 with a floor along the bottom, a wall at x=400 and
// the flag far right. The player spawns standing on the floor at x=84.
func floorLevel(extra ...leveldata.Object) *leveldata.Level {
	spawn := leveldata.Point{X: 100, Y: 432}
	objects := []leveldata.Object{
		{Kind: leveldata.KindPillar, Rect: leveldata.Rect{X: 0, Y: 432, W: 960, H: 48}},
		{Kind: leveldata.KindPillar, Rect: leveldata.Rect{X: 400, Y: 336, W: 48, H: 96}},
		{Kind: leveldata.KindFlag, Rect: leveldata.Rect{X: 900, Y: 384, W: 24, H: 48}},
	}
	return &leveldata.Level{
		Name:    "floor",
		Width:   960,
		Height:  480,
		Spawn:   &spawn,
		Objects: append(objects, extra...),
	}
}

func newTestWorld(t *testing.T, levels ...*leveldata.Level) donburi.World {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	w := donburi.NewWorld()
	factory.CreateLevel(w, levels)
	factory.CreateCamera(w)
	factory.LoadLevel(w, 0)
	return w
}

func playerOf(t *testing.T, w donburi.World) (*components.PlayerData, *components.PhysicsData, *components.ObjectData) {
	t.Helper()
	e, ok := tags.Player.First(w)
	if !ok {
		t.Fatal("no player entity")
	}
	return components.Player.Get(e), components.Physics.Get(e), components.Object.Get(e)
}

// held builds an input frame with the given actions pressed this frame and
// released the frame before.
func held(actions ...cfg.ActionID) *components.InputData {
	input := &components.InputData{}
	for _, a := range actions {
		input.Current[a] = true
	}
	return input
}

// step runs the movement part of a frame.
func step(w donburi.World, input *components.InputData) CollisionEvents {
	UpdatePlayer(w, testDT, input)
	UpdateEnemies(w, testDT)
	return ResolveCollisions(w, GetLevel(w).CurrentLevel, testDT)
}
