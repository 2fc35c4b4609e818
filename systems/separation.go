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

// UpdateSeparation pushes overlapping fighters apart so they never
// occupy the same space. Each takes half the overlap plus one pixel,
// and only the horizontal axis is resolved; a fighter landing on the
// opponent's head slides off through the horizontal push next frame.
func UpdateSeparation(e *ecs.ECS) {
	var a, b *donburi.Entry
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		if a == nil {
			a = entry
		} else {
			b = entry
		}
	})
	if a == nil || b == nil {
		return
	}

	// Both frozen means nothing moved this tick
	if components.Fighter.Get(a).InHitstop && components.Fighter.Get(b).InHitstop {
		return
	}

	objA := components.Object.Get(a).Object
	objB := components.Object.Get(b).Object

	rectA := gamemath.NewRect(objA.X, objA.Y, objA.W, objA.H)
	rectB := gamemath.NewRect(objB.X, objB.Y, objB.W, objB.H)
	if !rectA.Overlaps(rectB) {
		return
	}

	overlapX := rectA.OverlapX(rectB)
	overlapY := minOverlapY(rectA, rectB)
	if overlapX >= overlapY {
		return
	}

	shift := overlapX/2 + 1
	if rectA.CenterX() < rectB.CenterX() {
		objA.X -= shift
		objB.X += shift
	} else {
		objA.X += shift
		objB.X -= shift
	}

	ClampToArena(objA)
	ClampToArena(objB)
	objA.Update()
	objB.Update()
}

func minOverlapY(a, b gamemath.Rect) float64 {
	top := a.Y
	if b.Y > top {
		top = b.Y
	}
	bottom := a.Bottom()
	if b.Bottom() < bottom {
		bottom = b.Bottom()
	}
	return bottom - top
}

// ClampToArena keeps an object inside the playable bounds after a
// positional shove.
func ClampToArena(obj *resolv.Object) {
	obj.X = gamemath.Clamp(obj.X, cfg.Arena.LeftBound, cfg.Arena.RightBound-obj.W)
}
