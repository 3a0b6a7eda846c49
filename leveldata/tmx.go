package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/automoto/cubejump/config"
	"github.com/lafriks/go-tiled"
)

// LoadTMX parses a Tiled map whose object groups describe the level:
//
//	Pillars      rectangles
//	PlayerSpawn  one point (the player's feet)
//	Enemies      rectangles, optional patrolLeft / patrolRight / speed properties
//	Checkpoints  rectangles, optional checkpointID property
//	Coins        rectangles
//	FinishLine   rectangles
//
// It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath)),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Pillars":
			for _, o := range og.Objects {
				level.Objects = append(level.Objects, Object{
					Kind: KindPillar,
					Rect: Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
				})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				if level.Spawn != nil {
					return nil, fmt.Errorf("%w: level %q has more than one spawn", ErrInvalidLevel, level.Name)
				}
				level.Spawn = &Point{X: o.X, Y: o.Y}
			}
		case "Enemies":
			for _, o := range og.Objects {
				level.Objects = append(level.Objects, enemyFromTMX(o))
			}
		case "Checkpoints":
			for i, o := range og.Objects {
				rect := Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
				id := o.Properties.GetInt("checkpointID")
				if id == 0 {
					id = i + 1
				}
				level.Objects = append(level.Objects, Object{
					Kind:    KindCheckpoint,
					Rect:    rect,
					ID:      id,
					Respawn: rect.FeetOf(),
				})
			}
		case "Coins":
			for _, o := range og.Objects {
				level.Objects = append(level.Objects, Object{
					Kind: KindCoin,
					Rect: Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
				})
			}
		case "FinishLine":
			for _, o := range og.Objects {
				level.Objects = append(level.Objects, Object{
					Kind: KindFlag,
					Rect: Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
				})
			}
		}
	}

	if err := level.Validate(); err != nil {
		return nil, err
	}
	return level, nil
}

func enemyFromTMX(o *tiled.Object) Object {
	rect := Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
	if rect.W == 0 && rect.H == 0 {
		rect.W = float64(config.Enemy.CollisionWidth)
		rect.H = float64(config.Enemy.CollisionHeight)
	}

	minX := o.Properties.GetFloat("patrolLeft")
	maxX := o.Properties.GetFloat("patrolRight")
	if minX == 0 && maxX == 0 {
		minX = rect.X - config.Enemy.DefaultPatrolDistance
		maxX = rect.X + config.Enemy.DefaultPatrolDistance
	}

	speed := o.Properties.GetFloat("speed")
	if speed == 0 {
		speed = config.Enemy.PatrolSpeed
	}

	dir := 1
	if o.Properties.GetString("direction") == "left" {
		dir = -1
	}

	return Object{
		Kind:      KindEnemy,
		Rect:      rect,
		MinX:      minX,
		MaxX:      maxX,
		Speed:     speed,
		Direction: dir,
	}
}
