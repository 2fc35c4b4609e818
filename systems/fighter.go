package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/ringside/ringside/components"
	cfg "github.com/ringside/ringside/config"
	"github.com/ringside/ringside/gamemath"
	"github.com/ringside/ringside/tags"
)

// UpdateFighters advances each fighter's stance, movement intent and
// attack timers for the tick. Runs before physics so the speeds it
// sets are integrated this same frame.
func UpdateFighters(e *ecs.ECS) {
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		updateFighter(e, entry)
	})
}

func updateFighter(e *ecs.ECS, entry *donburi.Entry) {
	fighter := components.Fighter.Get(entry)
	physics := components.Physics.Get(entry)
	attack := components.Attack.Get(entry)
	input := components.PlayerInput.Get(entry)

	// Consume one hitstop frame and freeze everything else. The latch
	// tells physics, separation and combat to skip this fighter for
	// the rest of the tick.
	fighter.InHitstop = false
	if fighter.Hitstop > 0 {
		fighter.Hitstop--
		fighter.InHitstop = true
		return
	}

	// Face the opponent
	if opp := Opponent(e, fighter.Index); opp != nil {
		oppObj := components.Object.Get(opp)
		obj := components.Object.Get(entry)
		oppCenter := oppObj.X + oppObj.W/2
		center := obj.X + obj.W/2
		if oppCenter != center {
			if oppCenter > center {
				fighter.Facing = cfg.DirectionRight
			} else {
				fighter.Facing = cfg.DirectionLeft
			}
		}
	}

	onGround := physics.OnGround != nil
	block := GetPlayerAction(input, cfg.ActionBlock).Pressed
	down := GetPlayerAction(input, cfg.ActionCrouch).Pressed

	fighter.Blocking = block && onGround
	fighter.Crouching = down && onGround && !fighter.Blocking

	// You cannot walk while blocking
	moveLeft := GetPlayerAction(input, cfg.ActionMoveLeft).Pressed
	moveRight := GetPlayerAction(input, cfg.ActionMoveRight).Pressed
	if !fighter.Blocking {
		switch {
		case moveLeft && !moveRight:
			physics.SpeedX = -fighter.MoveSpeed
		case moveRight && !moveLeft:
			physics.SpeedX = fighter.MoveSpeed
		default:
			physics.SpeedX = gamemath.ApplyFriction(physics.SpeedX, physics.Friction, physics.StopEpsilon)
		}
	} else {
		physics.SpeedX = gamemath.ApplyFriction(physics.SpeedX, physics.Friction, physics.StopEpsilon)
	}

	// Jump
	if GetPlayerAction(input, cfg.ActionJump).Pressed && onGround && !fighter.Blocking {
		physics.SpeedY = fighter.JumpSpeed
		physics.OnGround = nil
		fighter.Crouching = false
	}

	// Attacks start on the press edge only, never restarting a swing
	// in progress. Punch wins when both buttons land the same frame.
	if GetPlayerAction(input, cfg.ActionPunch).JustPressed {
		startAttack(attack, cfg.AttackPunch)
	} else if GetPlayerAction(input, cfg.ActionKick).JustPressed {
		startAttack(attack, cfg.AttackKick)
	}

	// Advance the swing
	if attack.Kind != cfg.AttackNone {
		attack.Timer++
		if attack.Timer >= attack.Current().TotalFrames {
			attack.Kind = cfg.AttackNone
			attack.Timer = 0
			attack.Cooldown = attack.CooldownFrames
		}
	}

	if attack.Cooldown > 0 {
		attack.Cooldown--
	}
}

func startAttack(attack *components.AttackData, kind cfg.AttackKind) {
	if attack.Kind != cfg.AttackNone || attack.Cooldown > 0 {
		return
	}
	attack.Kind = kind
	attack.Timer = 0
	attack.HasHit = false
}

// Opponent returns the fighter entry whose index differs from index,
// or nil when the world holds fewer than two fighters.
func Opponent(e *ecs.ECS, index int) *donburi.Entry {
	var opp *donburi.Entry
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		if components.Fighter.Get(entry).Index != index {
			opp = entry
		}
	})
	return opp
}
