package entities

import (
	"fmt"

	"github.com/gonewx/last12h/pkg/components"
	"github.com/gonewx/last12h/pkg/config"
	"github.com/gonewx/last12h/pkg/ecs"
	"github.com/gonewx/last12h/pkg/types"
	"github.com/gonewx/last12h/pkg/utils"
)

// BulletLifetime 子弹最长存在时间（秒），超时自动销毁
const BulletLifetime = 3.0

// NewBullet 创建子弹实体
// 子弹以 BulletImpulse 的初速度朝目标点直线飞行，碰到任何实体后销毁
//
// 参数:
//   - em: 实体管理器
//   - stats: 子弹属性配置（伤害、碰撞盒）
//   - owner: 发射者，子弹不会命中发射者
//   - from: 发射位置
//   - to: 瞄准位置
//
// 返回:
//   - *Entity: 子弹实体
//   - error: 参数非法时返回错误
func NewBullet(em *ecs.EntityManager, stats *config.EntityStats, owner ecs.EntityID, from, to utils.Vec2) (*Entity, error) {
	if em == nil {
		return nil, fmt.Errorf("entity manager cannot be nil")
	}
	if stats == nil {
		return nil, fmt.Errorf("bullet stats cannot be nil")
	}

	direction := to.Sub(from).Normalize()
	if direction.IsZero() {
		return nil, fmt.Errorf("bullet target coincides with origin %v", from)
	}

	e := newEntity(em, types.EntityBullet, from)
	velocity := &components.VelocityComponent{}
	velocity.SetVelocity(direction.Scale(components.BulletImpulse))

	em.AddComponent(e.ID, velocity)
	em.AddComponent(e.ID, &components.CollisionComponent{Width: stats.Width, Height: stats.Height})
	em.AddComponent(e.ID, &components.ProjectileComponent{OwnerID: owner, Damage: stats.Attack})
	em.AddComponent(e.ID, &components.LifetimeComponent{MaxLifetime: BulletLifetime})
	return e, nil
}
