package systems

import (
	"github.com/gonewx/last12h/pkg/components"
	"github.com/gonewx/last12h/pkg/ecs"
	"github.com/gonewx/last12h/pkg/entities"
	"github.com/gonewx/last12h/pkg/logger"
)

// LifetimeSystem 管理实体的生命周期
// 清理超时的实体（子弹）和已死亡的敌人；玩家死亡由关卡管理器处理，不在此销毁
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update 更新所有拥有生命周期组件的实体，并清理死亡的敌人
func (s *LifetimeSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager) {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok {
			continue
		}

		// 增加当前生命时间
		lifetime.CurrentLifetime += deltaTime

		// 检查是否过期
		if lifetime.CurrentLifetime >= lifetime.MaxLifetime {
			lifetime.IsExpired = true
		}

		// 如果已过期,销毁实体
		if lifetime.IsExpired {
			s.dispose(id)
		}
	}

	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *entities.Entity](s.entityManager) {
		e, _ := entities.Get(s.entityManager, id)
		if !e.Disposed() && e.Health != nil && e.Health.IsDead() {
			logger.For("LifetimeSystem").WithField("entity", id).Debugf("%s died, disposing", e.Kind)
			e.Dispose()
		}
	}
}

func (s *LifetimeSystem) dispose(id ecs.EntityID) {
	if e, ok := entities.Get(s.entityManager, id); ok {
		e.Dispose()
		return
	}
	s.entityManager.DestroyEntity(id)
}
