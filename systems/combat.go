package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/ringside/ringside/components"
	cfg "github.com/ringside/ringside/config"
	"github.com/ringside/ringside/gamemath"
	"github.com/ringside/ringside/tags"
)

// Hurtbox returns the region of a fighter that can be hit. Crouching
// shrinks it to the bottom half of the body.
func Hurtbox(fighter *components.FighterData, obj *resolv.Object) gamemath.Rect {
	if fighter.Crouching {
		return gamemath.NewRect(obj.X, obj.Y+obj.H/2, obj.W, obj.H/2)
	}
	return gamemath.NewRect(obj.X, obj.Y, obj.W, obj.H)
}

// AttackBox returns the active attack box for the fighter's current
// swing. The second return is false outside the active window. The box
// is anchored just inside the leading hurtbox edge and vertically
// centered on the hurtbox.
func AttackBox(fighter *components.FighterData, attack *components.AttackData, obj *resolv.Object) (gamemath.Rect, bool) {
	if !attack.Active() {
		return gamemath.Rect{}, false
	}
	c := attack.Current()
	hb := Hurtbox(fighter, obj)

	x := hb.CenterX() + fighter.Facing*(obj.W/2-c.EdgeInset)
	y := hb.CenterY() - c.BoxHeight/2
	if fighter.Facing > 0 {
		return gamemath.NewRect(x, y, c.BoxWidth, c.BoxHeight), true
	}
	return gamemath.NewRect(x-c.BoxWidth, y, c.BoxWidth, c.BoxHeight), true
}

type pendingHit struct {
	attacker *donburi.Entry
	defender *donburi.Entry
	damage   int
}

// UpdateCombat scans both attack directions and applies any landed
// hits. Both directions are evaluated against the same snapshot before
// either hit is applied, so trading blows damages both fighters
// regardless of entity order.
func UpdateCombat(e *ecs.ECS) {
	var fighters []*donburi.Entry
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		fighters = append(fighters, entry)
	})
	if len(fighters) < 2 {
		return
	}

	var hits []pendingHit
	for _, atk := range fighters {
		dfd := Opponent(e, components.Fighter.Get(atk).Index)
		if dfd == nil {
			continue
		}

		attack := components.Attack.Get(atk)
		if attack.HasHit {
			continue
		}
		fighter := components.Fighter.Get(atk)
		obj := components.Object.Get(atk)

		box, active := AttackBox(fighter, attack, obj.Object)
		if !active {
			continue
		}

		dfdFighter := components.Fighter.Get(dfd)
		dfdObj := components.Object.Get(dfd)
		if box.Overlaps(Hurtbox(dfdFighter, dfdObj.Object)) {
			hits = append(hits, pendingHit{
				attacker: atk,
				defender: dfd,
				damage:   attack.Current().Damage,
			})
		}
	}

	for _, hit := range hits {
		ApplyHit(e, hit.attacker, hit.defender, hit.damage)
	}
}

// ApplyHit lands one swing on the defender. A blocking defender takes
// chip damage and a softer shove instead. Both fighters freeze in
// hitstop, and pushback only moves a grounded defender.
func ApplyHit(e *ecs.ECS, attacker, defender *donburi.Entry, damage int) {
	atkFighter := components.Fighter.Get(attacker)
	attack := components.Attack.Get(attacker)

	dfdFighter := components.Fighter.Get(defender)
	dfdPhysics := components.Physics.Get(defender)
	dfdHealth := components.Health.Get(defender)
	dfdObj := components.Object.Get(defender)

	blocked := dfdFighter.Blocking

	var push float64
	if blocked {
		chip := int(float64(damage) * dfdFighter.ChipRate)
		if chip < 1 {
			chip = 1
		}
		dfdHealth.Damage(chip)
		push = dfdFighter.BlockPushback * atkFighter.Facing
	} else {
		dfdHealth.Damage(damage)
		push = dfdFighter.Pushback * atkFighter.Facing
	}

	if dfdPhysics.OnGround != nil {
		dfdObj.X += push
		ClampToArena(dfdObj.Object)
		dfdObj.Update()
	}

	attack.HasHit = true
	atkFighter.Hitstop = atkFighter.HitstopFrames
	dfdFighter.Hitstop = dfdFighter.HitstopFrames

	flashOnHit(defender, blocked)
	if !blocked {
		TriggerScreenShake(e, cfg.ScreenShake.HitIntensity, cfg.ScreenShake.HitDuration)
	}
}

func flashOnHit(defender *donburi.Entry, blocked bool) {
	flash := components.Flash.Get(defender)
	if blocked {
		flash.Duration = 4
		flash.R, flash.G, flash.B = 0.6, 0.6, 1
	} else {
		flash.Duration = 6
		flash.R, flash.G, flash.B = 1, 0.3, 0.3
	}
}
