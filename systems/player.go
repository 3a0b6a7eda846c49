package systems

import (
	"fmt"

	"github.com/automoto/cubejump/components"
	cfg "github.com/automoto/cubejump/config"
	"github.com/automoto/cubejump/tags"
	"github.com/yohamta/donburi"
)

// timeEpsilon absorbs the rounding of summed frame times, so a window of
// 0.1 s closes after exactly 6 frames at 60 ticks per second.
const timeEpsilon = 1e-9

// UpdatePlayer applies input, gravity and jump rules to the player's velocity.
// Position is integrated later by ResolveCollisions.
func UpdatePlayer(w donburi.World, dt float64, input *components.InputData) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if !player.Alive {
		return
	}
	physics := components.Physics.Get(playerEntry)

	stepPlayer(player, physics, input, dt)
}

// stepPlayer is one frame of the player controller.
//
// Order matters: gravity is applied before the jump so a jump frame leaves
// SpeedY exactly at the jump impulse.
func stepPlayer(player *components.PlayerData, physics *components.PhysicsData, input *components.InputData, dt float64) {
	if player.Invulnerable > 0 {
		player.Invulnerable = max(0, player.Invulnerable-dt)
	}

	if !player.Grounded {
		player.AirTime += dt
	}

	handleHorizontal(player, physics, input)

	if !player.Grounded {
		physics.SpeedY = min(physics.SpeedY+cfg.Physics.Gravity*dt, cfg.Physics.MaxFallSpeed)
	}

	handleJump(player, physics, input, dt)

	if player.JumpCount < 0 || player.JumpCount > 2 {
		panic(fmt.Sprintf("player jump count %d outside [0, 2]", player.JumpCount))
	}
}

// handleHorizontal uses instant on/off movement: full speed while a single
// direction is held, a dead stop when neither or both are held.
func handleHorizontal(player *components.PlayerData, physics *components.PhysicsData, input *components.InputData) {
	left := GetAction(input, cfg.ActionMoveLeft).Pressed
	right := GetAction(input, cfg.ActionMoveRight).Pressed

	switch {
	case left && !right:
		physics.SpeedX = -cfg.Player.MoveSpeed
		player.Facing = -1
	case right && !left:
		physics.SpeedX = cfg.Player.MoveSpeed
		player.Facing = 1
	default:
		physics.SpeedX = 0
	}
}

func handleJump(player *components.PlayerData, physics *components.PhysicsData, input *components.InputData, dt float64) {
	if GetAction(input, cfg.ActionJump).JustPressed {
		if tryJump(player, physics, true) {
			player.JumpBuffer = 0
		} else {
			// Out of jumps: remember the press in case we land shortly.
			player.JumpBuffer = cfg.Player.JumpBuffer
		}
		return
	}

	if player.JumpBuffer <= 0 {
		return
	}
	if tryJump(player, physics, false) {
		player.JumpBuffer = 0
		return
	}
	player.JumpBuffer -= dt
	if player.JumpBuffer < timeEpsilon {
		player.JumpBuffer = 0
	}
}

// canGroundJump reports whether a jump counts as leaving the ground, either
// because the player stands on something or is still inside coyote time.
func canGroundJump(player *components.PlayerData) bool {
	return player.Grounded || (player.JumpCount == 0 && player.AirTime < cfg.Player.CoyoteTime-timeEpsilon)
}

// tryJump applies a ground jump when allowed, otherwise the double jump when
// allowAir is set and jumps remain. A ground jump sets the count to 1; the air
// jump always uses the last allowance, so the count goes straight to 2 even
// when the player walked off a ledge without jumping.
func tryJump(player *components.PlayerData, physics *components.PhysicsData, allowAir bool) bool {
	if canGroundJump(player) {
		physics.SpeedY = cfg.Player.JumpImpulse
		player.JumpCount = 1
		player.Grounded = false
		player.AirTime = 0
		return true
	}

	if !allowAir || cfg.Player.MaxJumps < 2 || player.JumpCount >= 2 {
		return false
	}

	physics.SpeedY = cfg.Player.JumpImpulse * cfg.Player.DoubleJumpMultiplier
	player.JumpCount = 2
	return true
}
