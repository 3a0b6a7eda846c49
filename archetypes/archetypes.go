package archetypes

import (
	"github.com/automoto/cubejump/components"
	"github.com/automoto/cubejump/tags"
	"github.com/yohamta/donburi"
)

var (
	Pillar = newArchetype(
		tags.Pillar,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
	)
	Checkpoint = newArchetype(
		tags.Checkpoint,
		components.Checkpoint,
		components.Object,
	)
	Coin = newArchetype(
		tags.Coin,
		components.Coin,
		components.Object,
	)
	Flag = newArchetype(
		tags.Flag,
		components.Flag,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
		components.Progress,
	)
	Camera = newArchetype(
		components.Camera,
	)
	GameState = newArchetype(
		components.GameState,
		components.Input,
		components.LevelComplete,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
