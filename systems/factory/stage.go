package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/ringside/ringside/archetypes"
	"github.com/ringside/ringside/components"
	"github.com/ringside/ringside/stage"
)

// CreateStage spawns the stage entity and one wall entity per solid.
// The space entity must exist before this runs.
func CreateStage(ecs *ecs.ECS, s *stage.Stage) *donburi.Entry {
	entry := archetypes.Stage.Spawn(ecs)
	components.Stage.SetValue(entry, components.StageData{Current: s})

	for _, r := range s.Solids {
		CreateWall(ecs, r.X, r.Y, r.W, r.H)
	}

	return entry
}
