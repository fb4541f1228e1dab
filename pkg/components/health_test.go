package components

import (
	"testing"

	"github.com/gonewx/last12h/pkg/ecs"
	"github.com/stretchr/testify/assert"
)

func TestNewHealthComponent(t *testing.T) {
	h := NewHealthComponent(3)
	assert.Equal(t, 3, h.Health())
	assert.Equal(t, 3, h.MaxHealth)
	assert.False(t, h.IsDead())

	assert.Equal(t, 0, NewHealthComponent(-5).MaxHealth)
}

func TestSetHealthClamps(t *testing.T) {
	h := NewHealthComponent(3)

	h.SetHealth(10)
	assert.Equal(t, 3, h.Health())

	h.SetHealth(-4)
	assert.Equal(t, 0, h.Health())
	assert.True(t, h.IsDead())
}

func TestSetHealthAlwaysNotifies(t *testing.T) {
	h := NewHealthComponent(3)
	changes := 0
	h.OnHealthChange.Subscribe(func(struct{}) { changes++ })

	h.SetHealth(3)
	h.SetHealth(3)
	h.SetHealth(2)

	assert.Equal(t, 3, changes)
}

func TestReceiveAttackScenario(t *testing.T) {
	// 3 → 2 → 0，依次触发 change、attacked、death
	h := NewHealthComponent(3)
	var log []string
	h.OnHealthChange.Subscribe(func(struct{}) { log = append(log, "change") })
	h.OnAttacked.Subscribe(func(info AttackInfo) { log = append(log, "attacked") })
	h.OnDeath.Subscribe(func(struct{}) { log = append(log, "death") })

	h.ReceiveAttack(ecs.EntityID(7), 1)
	assert.Equal(t, 2, h.Health())
	assert.Equal(t, []string{"change", "attacked"}, log)

	log = nil
	h.ReceiveAttack(ecs.EntityID(7), 5)
	assert.Equal(t, 0, h.Health())
	assert.Equal(t, []string{"change", "attacked", "death"}, log)
}

func TestReceiveAttackPassesInfo(t *testing.T) {
	h := NewHealthComponent(5)
	var got AttackInfo
	h.OnAttacked.Subscribe(func(info AttackInfo) { got = info })

	h.ReceiveAttack(ecs.EntityID(42), 2)

	assert.Equal(t, AttackInfo{SourceID: 42, Damage: 2}, got)
}

func TestDeathFiresOnce(t *testing.T) {
	h := NewHealthComponent(1)
	deaths, attacked := 0, 0
	h.OnDeath.Subscribe(func(struct{}) { deaths++ })
	h.OnAttacked.Subscribe(func(AttackInfo) { attacked++ })

	h.ReceiveAttack(0, 1)
	h.ReceiveAttack(0, 1)
	h.ReceiveAttack(0, 100)

	assert.Equal(t, 1, deaths)
	assert.Equal(t, 1, attacked, "damage after death is ignored")
	assert.Equal(t, 0, h.Health())
}

func TestReceiveAttackNegativeDamage(t *testing.T) {
	h := NewHealthComponent(3)
	h.SetHealth(2)

	h.ReceiveAttack(0, -3)

	assert.Equal(t, 2, h.Health())
}

func TestReceiveAttackZeroMaxHealth(t *testing.T) {
	h := NewHealthComponent(0)
	deaths := 0
	h.OnDeath.Subscribe(func(struct{}) { deaths++ })

	h.ReceiveAttack(0, 1)

	assert.Equal(t, 0, deaths)
}
