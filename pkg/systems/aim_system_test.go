package systems

import (
	"testing"

	"github.com/gonewx/last12h/pkg/components"
	"github.com/gonewx/last12h/pkg/ecs"
	"github.com/gonewx/last12h/pkg/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAimSystem(t *testing.T) {
	em := ecs.NewEntityManager()
	player := newTestPlayer(t, em, at(0, 0))
	stats, bullet := testBossStats, testBulletStats
	boss, err := entities.NewBoss(em, &stats, &bullet, at(4, 0), player)
	require.NoError(t, err)
	aim, _ := ecs.GetComponent[*components.AimComponent](em, boss.ID)
	system := NewAimSystem(em)

	t.Run("目标在攻击距离内", func(t *testing.T) {
		system.Update(0.016)
		assert.True(t, aim.HandVisible)
		assert.InDelta(t, 180, aim.Angle, 1e-9)
	})

	t.Run("目标在正下方", func(t *testing.T) {
		player.Pos.Set(at(4, 3))
		system.Update(0.016)
		assert.InDelta(t, 90, aim.Angle, 1e-9)
	})

	t.Run("目标超出距离保持角度", func(t *testing.T) {
		player.Pos.Set(at(40, 0))
		system.Update(0.016)
		assert.False(t, aim.HandVisible)
		assert.InDelta(t, 90, aim.Angle, 1e-9)
	})
}
