package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/ringside/ringside/archetypes"
	"github.com/ringside/ringside/components"
	cfg "github.com/ringside/ringside/config"
	"github.com/ringside/ringside/stage"
	"github.com/ringside/ringside/tags"
)

// CreateFighter spawns one fighter at its stage spawn point. The spawn
// X is the hurtbox left edge and Y is where the feet rest, so the
// collision object is placed a full body height above it.
func CreateFighter(ecs *ecs.ECS, index int, spawn stage.SpawnPoint, scheme cfg.ControlSchemeID) *donburi.Entry {
	fighter := archetypes.Fighter.Spawn(ecs)

	w := cfg.Fighter.Width
	h := cfg.Fighter.Height
	obj := resolv.NewObject(spawn.X, spawn.Y-h, w, h)
	obj.AddTags(tags.ResolvFighter)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = fighter
	components.Object.SetValue(fighter, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Fighter.SetValue(fighter, components.FighterData{
		Index:         index,
		Facing:        spawn.Facing,
		MoveSpeed:     cfg.Fighter.MoveSpeed,
		JumpSpeed:     cfg.Fighter.JumpSpeed,
		HitstopFrames: cfg.Fighter.HitstopFrames,
		Pushback:      cfg.Fighter.Pushback,
		BlockPushback: cfg.Fighter.BlockPushback,
		ChipRate:      cfg.Fighter.ChipRate,
	})
	components.Physics.SetValue(fighter, components.PhysicsData{
		Gravity:      cfg.Fighter.Gravity,
		MaxFallSpeed: cfg.Fighter.MaxFallSpeed,
		Friction:     cfg.Fighter.Friction,
		StopEpsilon:  cfg.Fighter.StopEpsilon,
	})
	components.Health.SetValue(fighter, components.HealthData{
		Current: cfg.Fighter.Health,
		Max:     cfg.Fighter.Health,
	})
	components.Attack.SetValue(fighter, components.AttackData{
		Kind:           cfg.AttackNone,
		CooldownFrames: cfg.Fighter.AttackCooldown,
		Punch:          cfg.Punch,
		Kick:           cfg.Kick,
	})
	components.PlayerInput.SetValue(fighter, components.PlayerInputData{
		PlayerIndex:   index,
		ControlScheme: scheme,
	})

	// Flash stays attached permanently to avoid archetype thrashing
	components.Flash.SetValue(fighter, components.FlashData{
		R: 1, G: 1, B: 1,
	})

	return fighter
}

// ResetFighter returns a fighter to its spawn for a new round.
func ResetFighter(entry *donburi.Entry, spawn stage.SpawnPoint) {
	obj := components.Object.Get(entry).Object
	obj.X = spawn.X
	obj.Y = spawn.Y - cfg.Fighter.Height
	obj.Update()

	fighter := components.Fighter.Get(entry)
	fighter.Facing = spawn.Facing
	fighter.Crouching = false
	fighter.Blocking = false
	fighter.Hitstop = 0
	fighter.InHitstop = false

	physics := components.Physics.Get(entry)
	physics.SpeedX = 0
	physics.SpeedY = 0
	physics.OnGround = nil

	health := components.Health.Get(entry)
	health.Current = health.Max

	attack := components.Attack.Get(entry)
	attack.Kind = cfg.AttackNone
	attack.Timer = 0
	attack.HasHit = false
	attack.Cooldown = 0

	flash := components.Flash.Get(entry)
	flash.Duration = 0
}
