package systems

import (
	"testing"

	"github.com/gonewx/last12h/pkg/components"
	"github.com/gonewx/last12h/pkg/ecs"
	"github.com/stretchr/testify/assert"
)

func tickAI(em *ecs.EntityManager, dt float64) {
	NewEnemyAISystem(em).Update(dt)
	NewEntitySystem(em).Update(dt)
}

func TestEnemyAIChasesInVision(t *testing.T) {
	em := ecs.NewEntityManager()
	player := newTestPlayer(t, em, at(0, 0))
	rat := newTestRat(t, em, at(4, 0), player, true)

	tickAI(em, 0.1)

	follower, _ := ecs.GetComponent[*components.SeekFollower](em, rat.ID)
	assert.True(t, follower.CanMove())
	assert.True(t, rat.Movement.IsMoving())
	assert.Equal(t, components.FacingLeft, rat.Movement.Facing())
	assert.Equal(t, 3, player.Health.Health())
}

func TestEnemyAIDirectModeChase(t *testing.T) {
	em := ecs.NewEntityManager()
	player := newTestPlayer(t, em, at(0, 3))
	rat := newTestRat(t, em, at(0, 0), player, false)

	tickAI(em, 0.1)

	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, rat.ID)
	assert.InDelta(t, 0, vel.VX, 1e-9)
	assert.InDelta(t, testRatStats.Speed, vel.VY, 1e-9)
}

func TestEnemyAIIdleOutOfVision(t *testing.T) {
	em := ecs.NewEntityManager()
	player := newTestPlayer(t, em, at(0, 0))
	rat := newTestRat(t, em, at(20, 0), player, true)

	tickAI(em, 0.1)

	follower, _ := ecs.GetComponent[*components.SeekFollower](em, rat.ID)
	assert.False(t, follower.CanMove())
	assert.False(t, rat.Movement.IsMoving())
}

func TestEnemyAIAttacksInRange(t *testing.T) {
	em := ecs.NewEntityManager()
	player := newTestPlayer(t, em, at(0, 0))
	rat := newTestRat(t, em, at(0.5, 0), player, true)

	tickAI(em, 0.1)
	assert.Equal(t, 2, player.Health.Health())
	assert.False(t, rat.Movement.IsMoving())

	// 冷却中
	tickAI(em, 0.1)
	assert.Equal(t, 2, player.Health.Health())

	tickAI(em, 1.0)
	tickAI(em, 0.1)
	assert.Equal(t, 1, player.Health.Health())
}

func TestEnemyAIIgnoresImmunePlayer(t *testing.T) {
	em := ecs.NewEntityManager()
	player := newTestPlayer(t, em, at(0, 0))
	newTestRat(t, em, at(0.5, 0), player, true)
	player.Combat.ImmuneAttack = true

	tickAI(em, 0.1)

	assert.Equal(t, 3, player.Health.Health())
}

func TestEnemyAIStopsWhenTargetDead(t *testing.T) {
	em := ecs.NewEntityManager()
	player := newTestPlayer(t, em, at(0, 0))
	rat := newTestRat(t, em, at(4, 0), player, true)

	tickAI(em, 0.1)
	assert.True(t, rat.Movement.IsMoving())

	player.ReceiveAttack(0, 10)
	tickAI(em, 0.1)
	assert.False(t, rat.Movement.IsMoving())
}
