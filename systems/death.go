package systems

import (
	"github.com/automoto/cubejump/components"
	cfg "github.com/automoto/cubejump/config"
	"github.com/automoto/cubejump/systems/factory"
	"github.com/automoto/cubejump/tags"
	"github.com/yohamta/donburi"
)

// KillPlayer costs the player a life. With lives left the cube freezes for
// the respawn delay; on the last life the game moves to GameOver and the
// cube stays dead. Returns false if the player was already dead.
func KillPlayer(w donburi.World, cause components.DeathCause) bool {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return false
	}
	player := components.Player.Get(playerEntry)
	if !player.Alive {
		return false
	}

	player.Alive = false
	physics := components.Physics.Get(playerEntry)
	physics.SpeedX = 0
	physics.SpeedY = 0

	progress := GetProgress(w)
	progress.Lives--
	if progress.Lives <= 0 {
		progress.Lives = 0
		TransitionState(w, cfg.StateGameOver)
		return true
	}

	if !playerEntry.HasComponent(components.Death) {
		playerEntry.AddComponent(components.Death)
	}
	components.Death.SetValue(playerEntry, components.DeathData{
		Timer: cfg.Player.RespawnDelay,
		Cause: cause,
	})
	return true
}

// UpdateDeaths counts down the respawn delay and respawns the player when it
// runs out. Returns true on the frame the player respawns.
func UpdateDeaths(w donburi.World, dt float64) bool {
	playerEntry, ok := tags.Player.First(w)
	if !ok || !playerEntry.HasComponent(components.Death) {
		return false
	}

	death := components.Death.Get(playerEntry)
	death.Timer -= dt
	if death.Timer > 0 {
		return false
	}

	playerEntry.RemoveComponent(components.Death)
	RespawnPlayer(w)
	return true
}

// RespawnPlayer puts the player back at the respawn point with fresh
// controller state and a short invulnerability window.
func RespawnPlayer(w donburi.World) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}

	rect := factory.PlayerRect(RespawnPoint(w))
	obj := components.Object.Get(playerEntry)
	obj.X = rect.X
	obj.Y = rect.Y
	obj.Update()

	facing := components.Player.Get(playerEntry).Facing
	components.Player.SetValue(playerEntry, components.PlayerData{
		Alive:        true,
		Facing:       facing,
		Invulnerable: cfg.Player.RespawnInvulnerability,
	})
	components.Physics.SetValue(playerEntry, components.PhysicsData{})
}

// IsRespawning reports whether the player is waiting out the respawn delay.
func IsRespawning(w donburi.World) bool {
	playerEntry, ok := tags.Player.First(w)
	return ok && playerEntry.HasComponent(components.Death)
}
