package components

import (
	"github.com/yohamta/donburi"
)

// EnemyData describes a horizontal patrol. PatrolLeft and PatrolRight bound
// the enemy's left edge.
type EnemyData struct {
	PatrolLeft  float64
	PatrolRight float64
	Direction   int // -1 left, 1 right
	Speed       float64
}

var Enemy = donburi.NewComponentType[EnemyData]()
