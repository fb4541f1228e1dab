package systems

import (
	"github.com/gonewx/last12h/pkg/components"
	"github.com/gonewx/last12h/pkg/ecs"
	"github.com/gonewx/last12h/pkg/entities"
	"github.com/gonewx/last12h/pkg/logger"
	"github.com/sirupsen/logrus"
)

// ProjectileSystem 子弹命中检测
//
// 子弹碰到发射者以外的任何有生命值或实心的实体后销毁，
// 只有命中玩家时才造成伤害。每颗子弹最多命中一次。
type ProjectileSystem struct {
	em *ecs.EntityManager
}

// NewProjectileSystem 创建子弹系统
func NewProjectileSystem(em *ecs.EntityManager) *ProjectileSystem {
	return &ProjectileSystem{em: em}
}

// Update 检测所有子弹的碰撞
func (s *ProjectileSystem) Update(deltaTime float64) {
	bullets := ecs.GetEntitiesWith3[*components.ProjectileComponent, *components.PositionComponent, *components.CollisionComponent](s.em)
	if len(bullets) == 0 {
		return
	}
	targets := ecs.GetEntitiesWith2[*entities.Entity, *components.CollisionComponent](s.em)

	for _, bulletID := range bullets {
		bullet, ok := entities.Get(s.em, bulletID)
		if !ok || bullet.Disposed() {
			continue
		}
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.em, bulletID)
		bulletCol, _ := ecs.GetComponent[*components.CollisionComponent](s.em, bulletID)

		for _, targetID := range targets {
			if targetID == bulletID || targetID == proj.OwnerID {
				continue
			}
			target, _ := entities.Get(s.em, targetID)
			if !s.hittable(target) {
				continue
			}
			targetCol, _ := ecs.GetComponent[*components.CollisionComponent](s.em, targetID)
			if !components.Overlaps(bulletCol, bullet.Position(), targetCol, target.Position()) {
				continue
			}

			if player, isPlayer := entities.GetPlayer(s.em, targetID); isPlayer {
				player.ReceiveAttack(bulletID, proj.Damage)
				logger.For("ProjectileSystem").WithFields(logrus.Fields{
					"bullet": bulletID,
					"health": player.Health.Health(),
				}).Debug("bullet hit player")
			}
			bullet.Dispose()
			break
		}
	}
}

// hittable 子弹能否与该实体发生碰撞
func (s *ProjectileSystem) hittable(e *entities.Entity) bool {
	if e.Disposed() || ecs.HasComponent[*components.ProjectileComponent](s.em, e.ID) {
		return false
	}
	if e.Health != nil {
		return e.IsAlive()
	}
	col, _ := ecs.GetComponent[*components.CollisionComponent](s.em, e.ID)
	return col.Solid
}
