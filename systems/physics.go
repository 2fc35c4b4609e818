package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/ringside/ringside/components"
	"github.com/ringside/ringside/gamemath"
	"github.com/ringside/ringside/tags"
)

// UpdatePhysics integrates each fighter's speed and resolves collision
// against the stage solids. Fighters frozen in hitstop keep their
// speeds untouched for the frame.
func UpdatePhysics(e *ecs.ECS) {
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		fighter := components.Fighter.Get(entry)
		if fighter.InHitstop {
			return
		}

		physics := components.Physics.Get(entry)
		obj := components.Object.Get(entry)

		// Gravity only pulls while airborne
		if physics.OnGround == nil {
			physics.SpeedY = gamemath.ClampSpeed(physics.SpeedY+physics.Gravity, physics.MaxFallSpeed)
		}

		resolveHorizontal(physics, obj.Object)
		resolveVertical(physics, obj.Object)
		obj.Update()
	})
}

// resolveHorizontal moves the object by SpeedX, stopping at walls.
func resolveHorizontal(physics *components.PhysicsData, object *resolv.Object) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}

	check := object.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		object.X += dx
		return
	}

	if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
		dx = check.ContactWithObject(solids[0]).X()
		physics.SpeedX = 0
	}
	object.X += dx
}

// resolveVertical moves the object by SpeedY and lands it on the floor.
func resolveVertical(physics *components.PhysicsData, object *resolv.Object) {
	physics.OnGround = nil
	dy := physics.SpeedY

	// An extra pixel of downward reach keeps grounded fighters grounded
	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := object.Check(0, checkDistance, tags.ResolvSolid)
	if check == nil {
		object.Y += dy
		return
	}

	if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
		contact := check.ContactWithObject(solids[0]).Y()
		if dy >= 0 {
			physics.OnGround = solids[0]
			dy = contact
		} else if contact > dy {
			dy = contact
		}
		physics.SpeedY = 0
	}
	object.Y += dy
}
