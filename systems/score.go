package systems

import (
	"github.com/automoto/cubejump/components"
	cfg "github.com/automoto/cubejump/config"
	"github.com/automoto/cubejump/systems/factory"
	"github.com/yohamta/donburi"
)

// CollectCoin adds the coin's value to the score and removes it from the
// level. A coin already removed this frame is ignored, so each coin pays once.
func CollectCoin(w donburi.World, coinEntry *donburi.Entry) bool {
	if !coinEntry.Valid() {
		return false
	}
	coin := components.Coin.Get(coinEntry)
	GetProgress(w).Score += coin.Value

	factory.RemoveFromSpace(w, coinEntry)
	w.Remove(coinEntry.Entity())
	return true
}

// HandleCoins collects every coin the player touched this frame and returns
// how many paid out.
func HandleCoins(w donburi.World, touched []*donburi.Entry) int {
	collected := 0
	for _, e := range touched {
		if CollectCoin(w, e) {
			collected++
		}
	}
	return collected
}

// AwardLevelBonus pays the bonus for advancing to the level at nextIndex:
// LevelBonusPerStep times that level's number.
func AwardLevelBonus(w donburi.World, nextIndex int) int {
	bonus := cfg.Score.LevelBonusPerStep * (nextIndex + 1)
	GetProgress(w).Score += bonus
	return bonus
}
