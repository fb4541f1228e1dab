package components

import (
	"github.com/gonewx/last12h/pkg/ecs"
	"github.com/gonewx/last12h/pkg/event"
	"github.com/gonewx/last12h/pkg/utils"
)

// Attacker 各实体的攻击策略（近战、发射子弹等）
// 返回本次攻击是否真正执行
type Attacker interface {
	Attack(self ecs.EntityID) bool
}

// AttackerFunc 函数适配器
type AttackerFunc func(self ecs.EntityID) bool

// Attack 实现 Attacker 接口
func (f AttackerFunc) Attack(self ecs.EntityID) bool {
	return f(self)
}

// CombatComponent 实体的战斗属性
//
// 攻击行为本身由 Attacker 策略决定，组件只负责在攻击成功后发出 OnAttack。
// 对目标的判断只依赖位置差，目标以 TargetHandle 弱引用的方式传入。
type CombatComponent struct {
	AttackPower    int     // 攻击力
	AttackRange    float64 // 攻击距离（世界单位）
	VisionDistance float64 // 视野距离（世界单位）
	ImmuneAttack   bool    // 免疫攻击（关卡加载期间由关卡管理器设置）

	attacker Attacker

	OnAttack event.Signal[ecs.EntityID]
}

// SetAttacker 设置攻击策略
func (c *CombatComponent) SetAttacker(a Attacker) {
	c.attacker = a
}

// HasAttacker 是否配置了攻击策略
func (c *CombatComponent) HasAttacker() bool {
	return c.attacker != nil
}

// Attack 执行一次攻击
//
// 返回：
//   - bool: 攻击是否执行；没有攻击策略时始终为 false
func (c *CombatComponent) Attack(self ecs.EntityID) bool {
	if c.attacker == nil {
		return false
	}
	if !c.attacker.Attack(self) {
		return false
	}
	c.OnAttack.Emit(self)
	return true
}

// InAttackRange 目标是否在攻击距离内
// 目标为空或已死亡时始终返回 false
func (c *CombatComponent) InAttackRange(self utils.Vec2, target TargetHandle) bool {
	if !targetAlive(target) {
		return false
	}
	return self.DistanceTo(target.Position()) <= c.AttackRange
}

// InVision 目标是否在视野内
func (c *CombatComponent) InVision(self utils.Vec2, target TargetHandle) bool {
	if !targetAlive(target) {
		return false
	}
	return self.DistanceTo(target.Position()) <= c.VisionDistance
}

// DirectionTo 指向目标的单位向量，目标不可用时返回零向量
func DirectionTo(self utils.Vec2, target TargetHandle) utils.Vec2 {
	if !targetAlive(target) {
		return utils.Zero
	}
	return target.Position().Sub(self).Normalize()
}

func targetAlive(target TargetHandle) bool {
	return target != nil && target.IsAlive()
}
