package entities

import (
	"fmt"

	"github.com/gonewx/last12h/pkg/components"
	"github.com/gonewx/last12h/pkg/config"
	"github.com/gonewx/last12h/pkg/ecs"
	"github.com/gonewx/last12h/pkg/types"
	"github.com/gonewx/last12h/pkg/utils"
)

// newEnemy 创建敌人的公共部分
func newEnemy(em *ecs.EntityManager, kind types.EntityKind, stats *config.EntityStats, pos utils.Vec2, target components.TargetHandle) *Entity {
	e := newEntity(em, kind, pos)
	e.Health = components.NewHealthComponent(stats.MaxHealth)
	e.Movement = components.NewMovementComponent(stats.Speed)
	e.Combat = &components.CombatComponent{
		AttackPower:    stats.Attack,
		AttackRange:    stats.AttackRange,
		VisionDistance: stats.VisionDistance,
	}
	e.Animator = components.NewAnimatorComponent()
	e.Cooldown = components.NewCooldown("attack_cooldown", stats.AttackCooldown)
	e.target = target

	em.AddComponent(e.ID, e.Health)
	em.AddComponent(e.ID, e.Movement)
	em.AddComponent(e.ID, e.Combat)
	em.AddComponent(e.ID, e.Animator)
	em.AddComponent(e.ID, e.Cooldown)
	em.AddComponent(e.ID, &components.CollisionComponent{Width: stats.Width, Height: stats.Height})
	em.AddComponent(e.ID, &components.EnemyComponent{Kind: kind, Target: target})

	// 寻路模式由是否存在寻路后端决定
	if stats.UsePathfinding {
		em.AddComponent(e.ID, components.NewSeekFollower(e.Pos, stats.AttackRange*0.8))
	} else {
		em.AddComponent(e.ID, &components.VelocityComponent{})
	}
	return e
}

// NewRat 创建老鼠（近战敌人）
// 视野内追踪目标，进入攻击距离后咬一口
//
// 参数:
//   - em: 实体管理器
//   - stats: 老鼠属性配置
//   - pos: 出生位置
//   - target: 追踪目标（玩家）
//
// 返回:
//   - *Entity: 老鼠实体
//   - error: 参数非法时返回错误
func NewRat(em *ecs.EntityManager, stats *config.EntityStats, pos utils.Vec2, target components.TargetHandle) (*Entity, error) {
	if em == nil {
		return nil, fmt.Errorf("entity manager cannot be nil")
	}
	if stats == nil {
		return nil, fmt.Errorf("rat stats cannot be nil")
	}

	e := newEnemy(em, types.EntityRat, stats, pos, target)
	e.Combat.SetAttacker(components.AttackerFunc(func(self ecs.EntityID) bool {
		if !e.Combat.InAttackRange(e.Position(), e.target) {
			return false
		}
		if victim, ok := e.target.(Damageable); ok {
			victim.ReceiveAttack(self, e.Combat.AttackPower)
			return true
		}
		return false
	}))
	return e, nil
}

// NewBoss 创建 Boss（远程敌人）
// 不移动，目标在攻击距离内时举枪瞄准并发射子弹
//
// 参数:
//   - em: 实体管理器
//   - stats: Boss 属性配置
//   - bulletStats: 子弹属性配置
//   - pos: 出生位置
//   - target: 瞄准目标（玩家）
//
// 返回:
//   - *Entity: Boss 实体
//   - error: 参数非法时返回错误
func NewBoss(em *ecs.EntityManager, stats, bulletStats *config.EntityStats, pos utils.Vec2, target components.TargetHandle) (*Entity, error) {
	if em == nil {
		return nil, fmt.Errorf("entity manager cannot be nil")
	}
	if stats == nil || bulletStats == nil {
		return nil, fmt.Errorf("boss and bullet stats cannot be nil")
	}

	e := newEnemy(em, types.EntityBoss, stats, pos, target)
	em.AddComponent(e.ID, &components.AimComponent{})

	e.Combat.SetAttacker(components.AttackerFunc(func(self ecs.EntityID) bool {
		if e.target == nil || !e.target.IsAlive() {
			return false
		}
		_, err := NewBullet(em, bulletStats, self, e.Position(), e.target.Position())
		return err == nil
	}))
	return e, nil
}
