package components

import (
	"github.com/ringside/ringside/stage"
	"github.com/yohamta/donburi"
)

type StageData struct {
	Current *stage.Stage
}

var Stage = donburi.NewComponentType[StageData]()
