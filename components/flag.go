package components

import "github.com/yohamta/donburi"

type FlagData struct {
	Reached bool
}

var Flag = donburi.NewComponentType[FlagData]()

type CoinData struct {
	Value int
}

var Coin = donburi.NewComponentType[CoinData]()
