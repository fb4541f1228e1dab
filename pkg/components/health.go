package components

import (
	"github.com/gonewx/last12h/pkg/ecs"
	"github.com/gonewx/last12h/pkg/event"
)

// AttackInfo 一次受击的信息
type AttackInfo struct {
	SourceID ecs.EntityID // 攻击来源实体（子弹、老鼠等），0 表示环境伤害
	Damage   int          // 本次伤害值
}

// HealthComponent 存储实体的生命值信息，并在变化时发出通知
//
// 不变量：0 <= Health() <= MaxHealth
//
// 事件（同步、按订阅顺序）：
//   - OnHealthChange: 每次赋值都会触发，即使数值没有变化
//   - OnAttacked: 受到攻击后触发
//   - OnDeath: 生命值降为 0 时触发，每次死亡只触发一次
//
// 本组件只负责数值与通知，实体销毁由 LifetimeSystem 处理。
type HealthComponent struct {
	MaxHealth int // 最大生命值
	health    int

	OnHealthChange event.Notify
	OnAttacked     event.Signal[AttackInfo]
	OnDeath        event.Notify
}

// NewHealthComponent 创建满血的生命值组件
func NewHealthComponent(maxHealth int) *HealthComponent {
	if maxHealth < 0 {
		maxHealth = 0
	}
	return &HealthComponent{
		MaxHealth: maxHealth,
		health:    maxHealth,
	}
}

// Health 当前生命值
func (h *HealthComponent) Health() int {
	return h.health
}

// IsDead 生命值是否已归零
func (h *HealthComponent) IsDead() bool {
	return h.health <= 0
}

// SetHealth 设置生命值，结果被限制在 [0, MaxHealth]
// 无论数值是否变化都会触发 OnHealthChange
func (h *HealthComponent) SetHealth(value int) {
	if value > h.MaxHealth {
		value = h.MaxHealth
	}
	if value < 0 {
		value = 0
	}
	h.health = value
	event.Fire(&h.OnHealthChange)
}

// ReceiveAttack 受到攻击
//
// 已死亡的实体不会再受到伤害（静默忽略）。负数伤害按 0 处理。
// 触发顺序：OnHealthChange → OnAttacked → OnDeath（仅在本次攻击致死时）
//
// 参数：
//   - sourceID: 攻击来源实体
//   - damage: 伤害值
func (h *HealthComponent) ReceiveAttack(sourceID ecs.EntityID, damage int) {
	if h.health <= 0 {
		return
	}
	if damage < 0 {
		damage = 0
	}

	h.SetHealth(max(0, h.health-damage))
	h.OnAttacked.Emit(AttackInfo{SourceID: sourceID, Damage: damage})

	if h.health <= 0 {
		event.Fire(&h.OnDeath)
	}
}
