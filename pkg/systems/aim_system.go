package systems

import (
	"github.com/gonewx/last12h/pkg/components"
	"github.com/gonewx/last12h/pkg/ecs"
	"github.com/gonewx/last12h/pkg/entities"
)

// AimSystem 更新 Boss 手臂的瞄准状态
// 目标在攻击距离内时显示手臂并指向目标，否则隐藏且保持上一次的角度
type AimSystem struct {
	em *ecs.EntityManager
}

// NewAimSystem 创建瞄准系统
func NewAimSystem(em *ecs.EntityManager) *AimSystem {
	return &AimSystem{em: em}
}

// Update 更新所有瞄准组件
func (s *AimSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith3[*components.AimComponent, *components.EnemyComponent, *entities.Entity](s.em) {
		e, _ := entities.Get(s.em, id)
		aim, _ := ecs.GetComponent[*components.AimComponent](s.em, id)
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, id)

		if !e.IsAlive() || e.Combat == nil {
			aim.HandVisible = false
			continue
		}

		aim.HandVisible = e.Combat.InAttackRange(e.Position(), enemy.Target)
		if aim.HandVisible {
			aim.Angle = enemy.Target.Position().Sub(e.Position()).Angle()
		}
	}
}
