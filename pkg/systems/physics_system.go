package systems

import (
	"github.com/gonewx/last12h/pkg/components"
	"github.com/gonewx/last12h/pkg/ecs"
	"github.com/gonewx/last12h/pkg/utils"
)

// PhysicsSystem 运动学积分
//
// 把速度（VelocityComponent 或寻路后端的速度）积分到位置上。
// 拥有移动组件的实体会被实心碰撞盒阻挡，子弹等没有移动组件的实体不受阻挡，
// 它们的碰撞由 ProjectileSystem 处理。
type PhysicsSystem struct {
	em *ecs.EntityManager
}

// NewPhysicsSystem 创建物理系统
func NewPhysicsSystem(em *ecs.EntityManager) *PhysicsSystem {
	return &PhysicsSystem{em: em}
}

// Update 积分所有运动实体的位置
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒）
func (ps *PhysicsSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.PositionComponent](ps.em) {
		velocity, ok := ps.velocityOf(id)
		if !ok || velocity.IsZero() {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, id)
		step := velocity.Scale(deltaTime)

		if !ecs.HasComponent[*components.MovementComponent](ps.em, id) {
			pos.Set(pos.Vec().Add(step))
			continue
		}
		ps.moveBlocked(id, pos, step)
	}
}

// velocityOf 返回实体本帧的速度，寻路后端优先
func (ps *PhysicsSystem) velocityOf(id ecs.EntityID) (utils.Vec2, bool) {
	if f, ok := ecs.GetComponent[*components.SeekFollower](ps.em, id); ok {
		return f.Velocity(), true
	}
	if v, ok := ecs.GetComponent[*components.VelocityComponent](ps.em, id); ok {
		return v.Vec(), true
	}
	return utils.Zero, false
}

// moveBlocked 分轴移动，被实心碰撞盒挡住的轴保持不动
func (ps *PhysicsSystem) moveBlocked(id ecs.EntityID, pos *components.PositionComponent, step utils.Vec2) {
	col, ok := ecs.GetComponent[*components.CollisionComponent](ps.em, id)
	if !ok {
		pos.Set(pos.Vec().Add(step))
		return
	}

	if next := (utils.Vec2{X: pos.X + step.X, Y: pos.Y}); !ps.blocked(id, col, next) {
		pos.X = next.X
	}
	if next := (utils.Vec2{X: pos.X, Y: pos.Y + step.Y}); !ps.blocked(id, col, next) {
		pos.Y = next.Y
	}
}

// blocked 在 at 处是否与其他实体的实心碰撞盒重叠
func (ps *PhysicsSystem) blocked(self ecs.EntityID, col *components.CollisionComponent, at utils.Vec2) bool {
	for _, other := range ecs.GetEntitiesWith2[*components.CollisionComponent, *components.PositionComponent](ps.em) {
		if other == self || ps.em.IsMarkedForDestroy(other) {
			continue
		}
		otherCol, _ := ecs.GetComponent[*components.CollisionComponent](ps.em, other)
		if !otherCol.Solid {
			continue
		}
		otherPos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, other)
		if components.Overlaps(col, at, otherCol, otherPos.Vec()) {
			return true
		}
	}
	return false
}
