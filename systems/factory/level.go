package factory

import (
	"fmt"

	"github.com/automoto/cubejump/archetypes"
	"github.com/automoto/cubejump/components"
	cfg "github.com/automoto/cubejump/config"
	"github.com/automoto/cubejump/leveldata"
	"github.com/automoto/cubejump/tags"
	"github.com/yohamta/donburi"
)

// CreateLevel spawns the game-scoped level entity holding the level list and
// the player's progress. No level is loaded yet.
func CreateLevel(w donburi.World, levels []*leveldata.Level) *donburi.Entry {
	if len(levels) == 0 {
		panic("CreateLevel: no levels")
	}

	level := archetypes.Level.Spawn(w)
	components.Level.Set(level, &components.LevelData{
		Levels:       levels,
		LevelIndex:   0,
		CurrentLevel: levels[0],
	})
	components.Progress.Set(level, &components.ProgressData{
		Lives:    cfg.Player.StartingLives,
		MaxLives: cfg.Player.StartingLives,
	})
	return level
}

// LoadLevel discards every level-scoped entity and builds levels[index]
// from scratch: a new collision space, pillars, enemies, checkpoints, coins,
// the flag and the player at the spawn point. The active checkpoint is cleared.
func LoadLevel(w donburi.World, index int) *donburi.Entry {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		panic("LoadLevel: level entity missing")
	}
	levelData := components.Level.Get(levelEntry)
	if index < 0 || index >= len(levelData.Levels) {
		panic(fmt.Sprintf("LoadLevel: index %d out of range [0, %d)", index, len(levelData.Levels)))
	}

	clearLevelEntities(w)

	def := levelData.Levels[index]
	levelData.LevelIndex = index
	levelData.CurrentLevel = def
	levelData.ActiveCheckpoint = nil

	// The space extends below the level so falling players keep colliding
	// with nothing until they cross the death line.
	cell := cfg.Level.SpaceCellSize
	CreateSpace(w, def.Width, def.Height+int(cfg.Level.DeathMargin)+cfg.Player.CollisionHeight, cell, cell)

	for _, o := range def.Objects {
		switch o.Kind {
		case leveldata.KindPillar:
			CreatePillar(w, o.Rect)
		case leveldata.KindEnemy:
			CreateEnemy(w, o)
		case leveldata.KindCheckpoint:
			CreateCheckpoint(w, o)
		case leveldata.KindCoin:
			CreateCoin(w, o.Rect)
		case leveldata.KindFlag:
			CreateFlag(w, o.Rect)
		}
	}

	return CreatePlayer(w, *def.Spawn)
}

func clearLevelEntities(w donburi.World) {
	var doomed []*donburi.Entry
	for _, tag := range []*donburi.ComponentType[donburi.Tag]{
		tags.Player, tags.Pillar, tags.Enemy, tags.Checkpoint, tags.Coin, tags.Flag,
	} {
		tag.Each(w, func(e *donburi.Entry) {
			doomed = append(doomed, e)
		})
	}
	for _, e := range doomed {
		w.Remove(e.Entity())
	}
}
