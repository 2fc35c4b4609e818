package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/ringside/ringside/components"
	cfg "github.com/ringside/ringside/config"
	"github.com/ringside/ringside/tags"
)

var (
	Fighter = newArchetype(
		tags.Fighter,
		components.Fighter,
		components.Object,
		components.Health,
		components.Physics,
		components.Attack,
		components.PlayerInput,
		components.Flash,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Stage = newArchetype(
		components.Stage,
	)
	Match = newArchetype(
		components.Match,
	)
	HealthBar = newArchetype(
		components.HealthBar,
	)
	ScreenShake = newArchetype(
		components.ScreenShake,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
