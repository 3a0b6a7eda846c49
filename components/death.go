package components

import "github.com/yohamta/donburi"

type DeathCause int

const (
	DeathByEnemy DeathCause = iota
	DeathByFall
)

func (c DeathCause) String() string {
	if c == DeathByFall {
		return "fall"
	}
	return "enemy"
}

// DeathData marks a player waiting to respawn. Timer counts down in seconds;
// when it reaches 0 the player respawns at the current respawn point.
type DeathData struct {
	Timer float64
	Cause DeathCause
}

var Death = donburi.NewComponentType[DeathData]()
