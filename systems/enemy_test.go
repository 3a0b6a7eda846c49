package systems

import (
	"testing"

	"github.com/automoto/cubejump/components"
	"github.com/automoto/cubejump/leveldata"
	"github.com/automoto/cubejump/tags"
	"github.com/yohamta/donburi"
)

func TestStepPatrolClampsAndFlips(t *testing.T) {
	tests := []struct {
		name    string
		x       float64
		dir     int
		wantX   float64
		wantDir int
	}{
		{"moves right", 150, 1, 152, 1},
		{"moves left", 150, -1, 148, -1},
		{"clamps at right bound", 199, 1, 200, -1},
		{"clamps at left bound", 101, -1, 100, 1},
		{"passes right bound", 198.5, 1, 200, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			enemy := components.EnemyData{PatrolLeft: 100, PatrolRight: 200, Direction: tc.dir, Speed: 120}
			x := stepPatrol(&enemy, tc.x, testDT)
			if x < tc.wantX-1e-9 || x > tc.wantX+1e-9 {
				t.Errorf("x = %v, want %v", x, tc.wantX)
			}
			if enemy.Direction != tc.wantDir {
				t.Errorf("Direction = %d, want %d", enemy.Direction, tc.wantDir)
			}
		})
	}
}

func TestEnemiesStayInsidePatrol(t *testing.T) {
	w := newTestWorld(t, floorLevel(
		leveldata.Object{
			Kind:      leveldata.KindEnemy,
			Rect:      leveldata.Rect{X: 500, Y: 392, W: 36, H: 40},
			MinX:      460,
			MaxX:      700,
			Speed:     333,
			Direction: -1,
		},
		leveldata.Object{
			Kind:      leveldata.KindEnemy,
			Rect:      leveldata.Rect{X: 600, Y: 392, W: 36, H: 40},
			MinX:      600,
			MaxX:      600,
			Speed:     50,
			Direction: 1,
		},
	))

	flips := 0
	lastDir := 0
	for range 600 {
		UpdateEnemies(w, testDT)
		tags.Enemy.Each(w, func(e *donburi.Entry) {
			enemy := components.Enemy.Get(e)
			x := components.Object.Get(e).X
			if x < enemy.PatrolLeft || x > enemy.PatrolRight {
				t.Fatalf("enemy at %v outside patrol [%v, %v]", x, enemy.PatrolLeft, enemy.PatrolRight)
			}
			if enemy.PatrolLeft == 460 {
				if lastDir != 0 && enemy.Direction != lastDir {
					flips++
				}
				lastDir = enemy.Direction
			}
		})
	}
	if flips < 2 {
		t.Errorf("enemy turned %d times in 10s, want at least 2", flips)
	}
}
