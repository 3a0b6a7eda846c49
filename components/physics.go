package components

import (
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// PhysicsData holds velocity in pixels per second. Positive Y is down.
type PhysicsData struct {
	SpeedX float64
	SpeedY float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
