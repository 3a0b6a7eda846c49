package systems

import (
	"math"

	"github.com/automoto/cubejump/components"
	cfg "github.com/automoto/cubejump/config"
	"github.com/automoto/cubejump/leveldata"
	"github.com/automoto/cubejump/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CollisionEvents is what the resolver observed this frame. The caller
// applies checkpoint, coin, flag and death handling in that order.
type CollisionEvents struct {
	Landed      bool
	EnemyHit    bool
	Fell        bool
	FlagReached bool
	Checkpoints []*donburi.Entry
	Coins       []*donburi.Entry
}

// Died reports whether the player must lose a life this frame.
func (e CollisionEvents) Died() bool {
	return e.EnemyHit || e.Fell
}

// ResolveCollisions integrates the player's velocity and resolves it against
// the level. Movement is axis separated, horizontal first, and the player is
// pushed out of every pillar it would overlap. Long frames are split into
// substeps so the player never skips over a pillar. It must run after both
// UpdatePlayer and UpdateEnemies so all positions for the frame are final.
func ResolveCollisions(w donburi.World, level *leveldata.Level, dt float64) CollisionEvents {
	var events CollisionEvents

	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return events
	}
	player := components.Player.Get(playerEntry)
	if !player.Alive {
		return events
	}
	physics := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	steps := substeps(physics, dt)
	sub := dt / float64(steps)
	for range steps {
		resolveHorizontal(obj.Object, physics, level, sub)
		if resolveVertical(obj.Object, player, physics, sub) {
			events.Landed = true
		}
	}

	for _, other := range overlapping(obj.Object, 0, 0, tags.ResolvEnemy, tags.ResolvCheckpoint, tags.ResolvCoin, tags.ResolvFlag) {
		entry, ok := other.Data.(*donburi.Entry)
		if !ok || entry == nil {
			continue
		}
		switch kindOf(other) {
		case leveldata.KindEnemy:
			if player.Invulnerable <= 0 {
				events.EnemyHit = true
			}
		case leveldata.KindCheckpoint:
			events.Checkpoints = append(events.Checkpoints, entry)
		case leveldata.KindCoin:
			events.Coins = append(events.Coins, entry)
		case leveldata.KindFlag:
			events.FlagReached = true
		}
	}

	if obj.Y > float64(level.Height)+cfg.Level.DeathMargin {
		events.Fell = true
	}

	return events
}

// substeps returns how many pieces dt must be cut into so no single move is
// longer than half the smallest collider the player can meet.
func substeps(physics *components.PhysicsData, dt float64) int {
	limit := float64(min(cfg.Player.CollisionWidth, cfg.Player.CollisionHeight, cfg.Level.TileSize)) / 2
	travel := max(math.Abs(physics.SpeedX), math.Abs(physics.SpeedY)) * dt
	// The epsilon keeps a move of exactly one limit in a single step.
	return max(1, int(math.Ceil(travel/limit-1e-9)))
}

func resolveHorizontal(obj *resolv.Object, physics *components.PhysicsData, level *leveldata.Level, dt float64) {
	dx := physics.SpeedX * dt
	if dx == 0 {
		return
	}

	obj.X += dx
	// Level edges act as walls.
	if obj.X < 0 {
		obj.X = 0
	} else if maxX := float64(level.Width) - obj.W; obj.X > maxX {
		obj.X = maxX
	}

	hits := overlapping(obj, 0, 0, tags.ResolvSolid)
	if len(hits) > 0 {
		if dx > 0 {
			nearest := hits[0].X
			for _, h := range hits[1:] {
				nearest = min(nearest, h.X)
			}
			obj.X = nearest - obj.W
		} else {
			nearest := hits[0].X + hits[0].W
			for _, h := range hits[1:] {
				nearest = max(nearest, h.X+h.W)
			}
			obj.X = nearest
		}
		physics.SpeedX = 0
	}
	obj.Update()
}

// resolveVertical moves the player along Y and returns true on the frame it
// lands. Landing resets the jump count and air time.
func resolveVertical(obj *resolv.Object, player *components.PlayerData, physics *components.PhysicsData, dt float64) bool {
	dy := physics.SpeedY * dt
	wasGrounded := player.Grounded
	landed := false

	if dy != 0 {
		obj.Y += dy
		hits := overlapping(obj, 0, 0, tags.ResolvSolid)
		if len(hits) > 0 {
			if dy > 0 {
				nearest := hits[0].Y
				for _, h := range hits[1:] {
					nearest = min(nearest, h.Y)
				}
				obj.Y = nearest - obj.H
				landed = physics.SpeedY >= 0
			} else {
				nearest := hits[0].Y + hits[0].H
				for _, h := range hits[1:] {
					nearest = max(nearest, h.Y+h.H)
				}
				obj.Y = nearest
			}
			physics.SpeedY = 0
		}
		obj.Update()
	}

	supported := physics.SpeedY >= 0 && len(overlapping(obj, 0, cfg.Physics.GroundProbe, tags.ResolvSolid)) > 0
	player.Grounded = landed || supported
	if player.Grounded {
		physics.SpeedY = 0
		player.JumpCount = 0
		player.AirTime = 0
	}

	return player.Grounded && !wasGrounded
}

// overlapping returns the objects carrying any of the tags whose rectangles
// strictly overlap obj offset by (dx, dy). resolv's Check is the broadphase
// and the rectangle test is exact. resolv files an object under the cells of
// [X, X+W-1], so the check runs from a probe one pixel larger on every side to
// catch fractional right and bottom edges.
func overlapping(obj *resolv.Object, dx, dy float64, tagList ...string) []*resolv.Object {
	space := obj.Space
	if space == nil {
		return nil
	}

	rect := leveldata.Rect{X: obj.X + dx, Y: obj.Y + dy, W: obj.W, H: obj.H}
	probe := resolv.NewObject(rect.X-1, rect.Y-1, rect.W+2, rect.H+2)
	space.Add(probe)
	check := probe.Check(0, 0)
	space.Remove(probe)
	if check == nil {
		return nil
	}

	var out []*resolv.Object
	for _, other := range check.Objects {
		if other == obj || !hasAnyTag(other, tagList) {
			continue
		}
		if rect.Overlaps(leveldata.Rect{X: other.X, Y: other.Y, W: other.W, H: other.H}) {
			out = append(out, other)
		}
	}
	return out
}

func hasAnyTag(obj *resolv.Object, tagList []string) bool {
	for _, tag := range tagList {
		if obj.HasTags(tag) {
			return true
		}
	}
	return false
}

func kindOf(obj *resolv.Object) leveldata.ObjectKind {
	switch {
	case obj.HasTags(tags.ResolvEnemy):
		return leveldata.KindEnemy
	case obj.HasTags(tags.ResolvCheckpoint):
		return leveldata.KindCheckpoint
	case obj.HasTags(tags.ResolvCoin):
		return leveldata.KindCoin
	case obj.HasTags(tags.ResolvFlag):
		return leveldata.KindFlag
	default:
		return leveldata.KindPillar
	}
}
