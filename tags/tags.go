package tags

import (
	"github.com/automoto/cubejump/leveldata"
	"github.com/yohamta/donburi"
)

var (
	Player     = donburi.NewTag().SetName("Player")
	Pillar     = donburi.NewTag().SetName("Pillar")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Checkpoint = donburi.NewTag().SetName("Checkpoint")
	Coin       = donburi.NewTag().SetName("Coin")
	Flag       = donburi.NewTag().SetName("Flag")
)

// Resolv tags for physics collision. Level object tags match leveldata.ObjectKind names.
var (
	ResolvPlayer     = "player"
	ResolvSolid      = leveldata.KindPillar.String()
	ResolvEnemy      = leveldata.KindEnemy.String()
	ResolvCheckpoint = leveldata.KindCheckpoint.String()
	ResolvCoin       = leveldata.KindCoin.String()
	ResolvFlag       = leveldata.KindFlag.String()
)
