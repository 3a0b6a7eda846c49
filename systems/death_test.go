package systems

import (
	"testing"

	"github.com/automoto/cubejump/components"
	cfg "github.com/automoto/cubejump/config"
	"github.com/automoto/cubejump/leveldata"
	"github.com/automoto/cubejump/systems/factory"
	"github.com/yohamta/donburi"
)

func reloadLevel(t *testing.T, w donburi.World) {
	t.Helper()
	factory.LoadLevel(w, GetLevel(w).LevelIndex)
}

func TestKillPlayerCostsALife(t *testing.T) {
	w := newTestWorld(t, floorLevel())
	player, _, _ := playerOf(t, w)

	if !KillPlayer(w, components.DeathByEnemy) {
		t.Fatal("KillPlayer returned false")
	}
	if player.Alive {
		t.Error("player still alive")
	}
	if got := GetProgress(w).Lives; got != 2 {
		t.Errorf("Lives = %d, want 2", got)
	}
	if !IsRespawning(w) {
		t.Error("player is not waiting to respawn")
	}
	if KillPlayer(w, components.DeathByFall) {
		t.Error("killing a dead player returned true")
	}
	if got := GetProgress(w).Lives; got != 2 {
		t.Errorf("Lives = %d after double kill, want 2", got)
	}
}

func TestRespawnAfterDelay(t *testing.T) {
	w := newTestWorld(t, checkpointLevel())
	ActivateCheckpoint(w, checkpointByID(t, w, 1))
	_, _, obj := playerOf(t, w)
	obj.X, obj.Y = 500, 100
	obj.Update()

	KillPlayer(w, components.DeathByFall)

	frames := 0
	for !UpdateDeaths(w, testDT) {
		frames++
		if frames > 60 {
			t.Fatal("player never respawned")
		}
	}

	if want := int(cfg.Player.RespawnDelay / testDT); frames < want-1 || frames > want+1 {
		t.Errorf("respawned after %d frames, want about %d", frames, want)
	}

	player, physics, obj := playerOf(t, w)
	if !player.Alive || IsRespawning(w) {
		t.Error("player not alive after respawn")
	}
	want := factory.PlayerRect(leveldata.Point{X: 212, Y: 432})
	if obj.X != want.X || obj.Y != want.Y {
		t.Errorf("respawned at (%v, %v), want (%v, %v)", obj.X, obj.Y, want.X, want.Y)
	}
	if player.Invulnerable != cfg.Player.RespawnInvulnerability {
		t.Errorf("Invulnerable = %v, want %v", player.Invulnerable, cfg.Player.RespawnInvulnerability)
	}
	if physics.SpeedX != 0 || physics.SpeedY != 0 || player.JumpCount != 0 {
		t.Errorf("controller state not reset: %+v %+v", *player, *physics)
	}
}

func TestLastLifeIsGameOver(t *testing.T) {
	w := newTestWorld(t, floorLevel())
	GetProgress(w).Lives = 1

	KillPlayer(w, components.DeathByEnemy)

	if got := CurrentState(w); got != cfg.StateGameOver {
		t.Errorf("state = %s, want GameOver", got)
	}
	if GetProgress(w).Lives != 0 {
		t.Errorf("Lives = %d, want 0", GetProgress(w).Lives)
	}
	if IsRespawning(w) {
		t.Error("player respawn scheduled after the last life")
	}
}
