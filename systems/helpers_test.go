package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/ringside/ringside/components"
	cfg "github.com/ringside/ringside/config"
	"github.com/ringside/ringside/stage"
	"github.com/ringside/ringside/systems/factory"
)

// testStage mirrors the shipped arena layout without going through the
// embedded TMX.
func testStage() *stage.Stage {
	w := float64(cfg.C.Width)
	return &stage.Stage{
		Name:      "test-arena",
		MapWidth:  cfg.C.Width,
		MapHeight: cfg.C.Height,
		GroundY:   cfg.Arena.GroundY,
		Solids: []stage.SolidRect{
			{X: 0, Y: cfg.Arena.GroundY, W: w, H: cfg.Arena.FloorHeight},
			{X: 0, Y: 0, W: cfg.Arena.WallWidth, H: cfg.Arena.GroundY},
			{X: w - cfg.Arena.WallWidth, Y: 0, W: cfg.Arena.WallWidth, H: cfg.Arena.GroundY},
		},
		Spawns: []stage.SpawnPoint{
			{Index: 0, X: 200, Y: cfg.Arena.GroundY, Facing: 1},
			{Index: 1, X: 744, Y: cfg.Arena.GroundY, Facing: -1},
		},
	}
}

// newFightWorld builds a world with the arena, both fighters and the
// match singletons, then runs one physics tick so both fighters start
// the test grounded.
func newFightWorld() (*ecs.ECS, *donburi.Entry, *donburi.Entry) {
	e := ecs.NewECS(donburi.NewWorld())
	st := testStage()
	factory.CreateSpace(e, st.MapWidth, st.MapHeight, cfg.Arena.CellSize, cfg.Arena.CellSize)
	factory.CreateStage(e, st)
	p1 := factory.CreateFighter(e, 0, st.Spawns[0], cfg.ControlSchemeA)
	p2 := factory.CreateFighter(e, 1, st.Spawns[1], cfg.ControlSchemeB)
	factory.CreateMatch(e, cfg.Match.BestOf, cfg.Match.RoundFrames/60)
	factory.CreateHealthBars(e)
	factory.CreateScreenShake(e)
	UpdatePhysics(e)
	return e, p1, p2
}

// hold replaces a fighter's held actions for the next tick. Calling it
// with an action not held last tick produces a JustPressed edge.
func hold(entry *donburi.Entry, actions ...cfg.ActionID) {
	input := components.PlayerInput.Get(entry)
	input.PreviousInput = input.CurrentInput
	input.CurrentInput = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.CurrentInput[a] = true
	}
}

func moveTo(entry *donburi.Entry, x float64) {
	obj := components.Object.Get(entry).Object
	obj.X = x
	obj.Update()
}

func matchData(e *ecs.ECS) *components.MatchData {
	entry, _ := components.Match.First(e.World)
	return components.Match.Get(entry)
}
