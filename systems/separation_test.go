package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringside/ringside/components"
	cfg "github.com/ringside/ringside/config"
	"github.com/ringside/ringside/gamemath"
)

func fighterRect(obj *components.ObjectData) gamemath.Rect {
	return gamemath.NewRect(obj.X, obj.Y, obj.W, obj.H)
}

func TestSeparationPushesOverlappingFightersApart(t *testing.T) {
	e, p1, p2 := newFightWorld()
	objA := components.Object.Get(p1)
	objB := components.Object.Get(p2)

	moveTo(p2, objA.X+40)
	require.True(t, fighterRect(objA).Overlaps(fighterRect(objB)))

	ax, bx := objA.X, objB.X
	UpdateSeparation(e)

	assert.False(t, fighterRect(objA).Overlaps(fighterRect(objB)))
	// Both give the same ground
	assert.Equal(t, ax-objA.X, objB.X-bx)
	assert.Less(t, objA.X, ax)
	assert.Greater(t, objB.X, bx)
}

func TestSeparationIgnoresStackedFighters(t *testing.T) {
	e, p1, p2 := newFightWorld()
	objA := components.Object.Get(p1)
	objB := components.Object.Get(p2)

	// Mostly on top of the opponent: a wide, shallow overlap that the
	// horizontal push must not resolve.
	objB.X = objA.X + 10
	objB.Y = objA.Y - objB.H + 8
	objB.Update()

	ax, bx := objA.X, objB.X
	UpdateSeparation(e)

	assert.Equal(t, ax, objA.X)
	assert.Equal(t, bx, objB.X)
}

func TestSeparationRespectsArenaBounds(t *testing.T) {
	e, p1, p2 := newFightWorld()
	objA := components.Object.Get(p1)
	objB := components.Object.Get(p2)

	moveTo(p1, cfg.Arena.LeftBound)
	moveTo(p2, cfg.Arena.LeftBound+20)
	UpdateSeparation(e)

	assert.GreaterOrEqual(t, objA.X, cfg.Arena.LeftBound)
	assert.GreaterOrEqual(t, objB.X, cfg.Arena.LeftBound)
	assert.LessOrEqual(t, objB.X, cfg.Arena.RightBound-objB.W)
}

func TestSeparationSkipsWhenBothFrozen(t *testing.T) {
	e, p1, p2 := newFightWorld()
	objA := components.Object.Get(p1)
	objB := components.Object.Get(p2)

	moveTo(p2, objA.X+40)
	components.Fighter.Get(p1).InHitstop = true
	components.Fighter.Get(p2).InHitstop = true

	bx := objB.X
	UpdateSeparation(e)
	assert.Equal(t, bx, objB.X)
}

func TestClampToArena(t *testing.T) {
	_, p1, _ := newFightWorld()
	obj := components.Object.Get(p1).Object

	obj.X = 5
	ClampToArena(obj)
	assert.Equal(t, cfg.Arena.LeftBound, obj.X)

	obj.X = 2000
	ClampToArena(obj)
	assert.Equal(t, cfg.Arena.RightBound-obj.W, obj.X)
}
