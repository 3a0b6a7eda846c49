package systems

import (
	"fmt"

	"github.com/automoto/cubejump/components"
	"github.com/automoto/cubejump/tags"
	"github.com/yohamta/donburi"
)

// UpdateEnemies moves every enemy along its patrol. An enemy that reaches or
// passes a bound is placed exactly on it and turns around. Enemies ignore
// the player.
func UpdateEnemies(w donburi.World, dt float64) {
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		obj := components.Object.Get(e)

		obj.X = stepPatrol(enemy, obj.X, dt)
		obj.Update()
	})
}

// stepPatrol returns the enemy's next left edge and flips its direction at
// the patrol bounds.
func stepPatrol(enemy *components.EnemyData, x, dt float64) float64 {
	if enemy.Direction != 1 && enemy.Direction != -1 {
		panic(fmt.Sprintf("enemy direction %d is not -1 or 1", enemy.Direction))
	}

	x += float64(enemy.Direction) * enemy.Speed * dt

	switch {
	case x >= enemy.PatrolRight:
		x = enemy.PatrolRight
		enemy.Direction = -1
	case x <= enemy.PatrolLeft:
		x = enemy.PatrolLeft
		enemy.Direction = 1
	}
	return x
}
