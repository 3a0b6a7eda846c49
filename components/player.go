package components

import (
	"github.com/yohamta/donburi"
)

// PlayerData is the cube's controller state. Position lives on the Object
// component and velocity on Physics.
type PlayerData struct {
	Grounded     bool
	JumpCount    int     // jumps used since last landing: 0, 1 or 2
	AirTime      float64 // seconds since leaving the ground, for coyote time
	JumpBuffer   float64 // seconds an unanswered jump press stays queued
	Invulnerable float64 // seconds of respawn protection left
	Alive        bool
	Facing       float64 // -1 left, 1 right
}

var Player = donburi.NewComponentType[PlayerData]()
