package systems

import (
	"testing"

	"github.com/gonewx/last12h/pkg/ecs"
	"github.com/gonewx/last12h/pkg/entities"
	"github.com/gonewx/last12h/pkg/types"
	"github.com/gonewx/last12h/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhysicsIntegratesBullet(t *testing.T) {
	em := ecs.NewEntityManager()
	stats := testBulletStats
	bullet, err := entities.NewBullet(em, &stats, 0, at(0, 0), at(0, 5))
	require.NoError(t, err)

	NewPhysicsSystem(em).Update(0.5)

	assert.InDelta(t, 0, bullet.Position().X, 1e-9)
	assert.InDelta(t, 5, bullet.Position().Y, 1e-9)
}

func TestPhysicsMovesPlayer(t *testing.T) {
	em := ecs.NewEntityManager()
	player := newTestPlayer(t, em, at(0, 0))
	intent := utils.Vec2{X: 1}
	player.SetIntent(&intent)

	NewEntitySystem(em).Update(0.25)
	NewPhysicsSystem(em).Update(0.25)

	assert.InDelta(t, 1.0, player.Position().X, 1e-9)
}

func TestPhysicsSolidBlocks(t *testing.T) {
	em := ecs.NewEntityManager()
	player := newTestPlayer(t, em, at(0, 0))
	_, err := entities.NewDoor(em, at(1.5, 0), 2, types.ItemUndefined)
	require.NoError(t, err)

	intent := utils.Vec2{X: 1}
	player.SetIntent(&intent)
	NewEntitySystem(em).Update(0.1)

	physics := NewPhysicsSystem(em)
	for i := 0; i < 10; i++ {
		physics.Update(0.1)
	}

	// 第一步 0.4 可以移动，第二步会与门重叠被挡住
	assert.InDelta(t, 0.4, player.Position().X, 1e-9)
	assert.InDelta(t, 0, player.Position().Y, 1e-9)
}

func TestPhysicsSlidesAlongSolid(t *testing.T) {
	em := ecs.NewEntityManager()
	player := newTestPlayer(t, em, at(0.5, 0))
	_, err := entities.NewDoor(em, at(1.5, 0), 2, types.ItemUndefined)
	require.NoError(t, err)

	intent := utils.Vec2{X: 0.5, Y: 0.5}
	player.SetIntent(&intent)
	NewEntitySystem(em).Update(0.1)
	NewPhysicsSystem(em).Update(0.1)

	assert.InDelta(t, 0.5, player.Position().X, 1e-9, "x axis blocked")
	assert.InDelta(t, 0.2, player.Position().Y, 1e-9, "y axis still moves")
}

func TestPhysicsNonSolidDoesNotBlock(t *testing.T) {
	em := ecs.NewEntityManager()
	player := newTestPlayer(t, em, at(0, 0))
	sw, err := entities.NewSwitch(em, at(1.5, 0), false, true)
	require.NoError(t, err)
	require.NotNil(t, sw)

	intent := utils.Vec2{X: 1}
	player.SetIntent(&intent)
	NewEntitySystem(em).Update(0.1)
	physics := NewPhysicsSystem(em)
	for i := 0; i < 10; i++ {
		physics.Update(0.1)
	}

	assert.InDelta(t, 4.0, player.Position().X, 1e-9)
}

func TestPhysicsSeekFollower(t *testing.T) {
	em := ecs.NewEntityManager()
	player := newTestPlayer(t, em, at(0, 0))
	rat := newTestRat(t, em, at(5, 0), player, true)

	NewEnemyAISystem(em).Update(0.5)
	NewEntitySystem(em).Update(0.5)
	NewPhysicsSystem(em).Update(0.5)

	assert.InDelta(t, 4.0, rat.Position().X, 1e-9)
}
