package components

import (
	"testing"

	"github.com/gonewx/last12h/pkg/ecs"
	"github.com/gonewx/last12h/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestCombatAttack(t *testing.T) {
	t.Run("没有攻击策略", func(t *testing.T) {
		c := &CombatComponent{}
		fired := 0
		c.OnAttack.Subscribe(func(ecs.EntityID) { fired++ })

		assert.False(t, c.HasAttacker())
		assert.False(t, c.Attack(1))
		assert.Zero(t, fired)
	})

	t.Run("攻击成功", func(t *testing.T) {
		c := &CombatComponent{}
		var got ecs.EntityID
		c.SetAttacker(AttackerFunc(func(self ecs.EntityID) bool { return true }))
		c.OnAttack.Subscribe(func(id ecs.EntityID) { got = id })

		assert.True(t, c.Attack(9))
		assert.Equal(t, ecs.EntityID(9), got)
	})

	t.Run("攻击策略放弃", func(t *testing.T) {
		c := &CombatComponent{}
		fired := 0
		c.SetAttacker(AttackerFunc(func(ecs.EntityID) bool { return false }))
		c.OnAttack.Subscribe(func(ecs.EntityID) { fired++ })

		assert.False(t, c.Attack(1))
		assert.Zero(t, fired)
	})
}

func TestCombatTargetPredicates(t *testing.T) {
	c := &CombatComponent{AttackRange: 1, VisionDistance: 5}
	self := utils.Vec2{}

	near := &fakeTarget{pos: utils.Vec2{X: 1}, alive: true}
	mid := &fakeTarget{pos: utils.Vec2{X: 3, Y: 4}, alive: true}
	far := &fakeTarget{pos: utils.Vec2{X: 10}, alive: true}
	dead := &fakeTarget{pos: utils.Vec2{X: 0.5}, alive: false}

	assert.True(t, c.InAttackRange(self, near), "range is inclusive")
	assert.False(t, c.InAttackRange(self, mid))
	assert.True(t, c.InVision(self, mid))
	assert.False(t, c.InVision(self, far))

	assert.False(t, c.InAttackRange(self, dead))
	assert.False(t, c.InVision(self, dead))
	assert.False(t, c.InAttackRange(self, nil))
	assert.False(t, c.InVision(self, nil))
}

func TestDirectionTo(t *testing.T) {
	dir := DirectionTo(utils.Vec2{X: 1, Y: 1}, &fakeTarget{pos: utils.Vec2{X: 1, Y: 4}, alive: true})
	assert.InDelta(t, 0, dir.X, 1e-9)
	assert.InDelta(t, 1, dir.Y, 1e-9)

	assert.Equal(t, utils.Zero, DirectionTo(utils.Zero, nil))
	assert.Equal(t, utils.Zero, DirectionTo(utils.Zero, &fakeTarget{pos: utils.Vec2{X: 1}}))
}
