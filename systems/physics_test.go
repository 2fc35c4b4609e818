package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringside/ringside/components"
	cfg "github.com/ringside/ringside/config"
)

func TestGroundedFighterStaysPut(t *testing.T) {
	e, p1, _ := newFightWorld()
	physics := components.Physics.Get(p1)
	obj := components.Object.Get(p1).Object
	require.NotNil(t, physics.OnGround)

	y := obj.Y
	for i := 0; i < 10; i++ {
		UpdatePhysics(e)
	}
	assert.Equal(t, y, obj.Y)
	assert.Zero(t, physics.SpeedY)
	assert.NotNil(t, physics.OnGround)
}

func TestFallSpeedIsClamped(t *testing.T) {
	e, p1, _ := newFightWorld()
	physics := components.Physics.Get(p1)
	obj := components.Object.Get(p1).Object

	// Park the fighter high up and let it fall
	obj.Y = 40
	obj.Update()
	physics.OnGround = nil

	for i := 0; i < 30; i++ {
		UpdatePhysics(e)
		assert.LessOrEqual(t, physics.SpeedY, cfg.Fighter.MaxFallSpeed)
		if physics.OnGround != nil {
			break
		}
	}
}

func TestJumpArcReturnsToGround(t *testing.T) {
	e, p1, _ := newFightWorld()
	physics := components.Physics.Get(p1)
	obj := components.Object.Get(p1).Object
	startY := obj.Y

	physics.SpeedY = cfg.Fighter.JumpSpeed
	physics.OnGround = nil

	peaked := false
	for i := 0; i < 300; i++ {
		UpdatePhysics(e)
		if obj.Y < startY {
			peaked = true
		}
		if physics.OnGround != nil {
			break
		}
	}

	require.True(t, peaked, "fighter never left the ground")
	require.NotNil(t, physics.OnGround, "fighter never landed")
	assert.Equal(t, startY, obj.Y)
	assert.Zero(t, physics.SpeedY)
}

func TestWallStopsWalk(t *testing.T) {
	e, p1, _ := newFightWorld()
	physics := components.Physics.Get(p1)
	obj := components.Object.Get(p1).Object

	moveTo(p1, cfg.Arena.LeftBound+2)
	for i := 0; i < 5; i++ {
		physics.SpeedX = -cfg.Fighter.MoveSpeed
		UpdatePhysics(e)
	}

	assert.Equal(t, cfg.Arena.LeftBound, obj.X)
}

func TestHitstopFreezesPhysics(t *testing.T) {
	e, p1, _ := newFightWorld()
	fighter := components.Fighter.Get(p1)
	physics := components.Physics.Get(p1)
	obj := components.Object.Get(p1).Object

	fighter.InHitstop = true
	physics.SpeedX = cfg.Fighter.MoveSpeed
	x := obj.X

	UpdatePhysics(e)
	assert.Equal(t, x, obj.X)
	assert.Equal(t, cfg.Fighter.MoveSpeed, physics.SpeedX)
}
