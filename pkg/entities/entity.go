package entities

import (
	"errors"
	"fmt"

	"github.com/gonewx/last12h/pkg/components"
	"github.com/gonewx/last12h/pkg/ecs"
	"github.com/gonewx/last12h/pkg/event"
	"github.com/gonewx/last12h/pkg/types"
	"github.com/gonewx/last12h/pkg/utils"
)

// ErrDisposed 实体已被销毁
var ErrDisposed = errors.New("entity already disposed")

// Lifecycle 由外部驱动的实体生命周期
//
// 创建（工厂）→ Init（检测移动后端）→ 每帧 Tick → Dispose（死亡或关卡卸载）
type Lifecycle interface {
	Init() error
	Tick(dt float64) error
	Dispose()
}

// Damageable 可以受到攻击的对象
type Damageable interface {
	ReceiveAttack(sourceID ecs.EntityID, damage int)
}

// Entity 游戏世界中的一个活动实体
//
// 组件同时注册在 EntityManager 中供系统查询，Entity 只保存指针方便直接访问。
// 不需要的组件为 nil（例如子弹没有生命值，门没有移动）。
type Entity struct {
	ID   ecs.EntityID
	Kind types.EntityKind

	Pos      *components.PositionComponent
	Health   *components.HealthComponent
	Movement *components.MovementComponent
	Combat   *components.CombatComponent
	Animator *components.AnimatorComponent
	Cooldown *components.TimerComponent

	em          *ecs.EntityManager
	target      components.TargetHandle
	intent      *utils.Vec2
	initialized bool
	disposed    bool
}

// newEntity 创建实体并把自身注册为组件
func newEntity(em *ecs.EntityManager, kind types.EntityKind, pos utils.Vec2) *Entity {
	id := em.CreateEntity()
	e := &Entity{
		ID:   id,
		Kind: kind,
		Pos:  &components.PositionComponent{X: pos.X, Y: pos.Y},
		em:   em,
	}
	em.AddComponent(id, e.Pos)
	ecs.AddComponent(em, id, e)
	return e
}

// Get 根据 ID 获取实体
func Get(em *ecs.EntityManager, id ecs.EntityID) (*Entity, bool) {
	return ecs.GetComponent[*Entity](em, id)
}

// Init 检测移动后端并确定移动模式，重复调用无副作用
func (e *Entity) Init() error {
	if e.disposed {
		return fmt.Errorf("init entity %d: %w", e.ID, ErrDisposed)
	}
	if e.initialized {
		return nil
	}

	if e.Movement != nil {
		var body components.Body
		if v, ok := ecs.GetComponent[*components.VelocityComponent](e.em, e.ID); ok {
			body = v
		}
		var follower components.PathFollower
		if f, ok := ecs.GetComponent[*components.SeekFollower](e.em, e.ID); ok {
			follower = f
		}
		var animator components.Animator
		if e.Animator != nil {
			animator = e.Animator
		}
		e.Movement.Init(body, follower, animator, e.target)
	}

	e.initialized = true
	return nil
}

// Initialized 是否已经 Init
func (e *Entity) Initialized() bool {
	return e.initialized
}

// Tick 每帧更新：推进攻击冷却，应用本帧的移动意图
//
// 返回：
//   - error: 移动意图非法时返回包装后的 components.ErrNilMovement
func (e *Entity) Tick(dt float64) error {
	if e.disposed || !e.initialized {
		return nil
	}

	if e.Cooldown != nil {
		e.Cooldown.Tick(dt)
	}

	if e.Movement != nil {
		if err := e.Movement.ApplyMovement(e.intent); err != nil {
			return fmt.Errorf("entity %d (%s): %w", e.ID, e.Kind, err)
		}
	}
	return nil
}

// Dispose 停止移动并标记实体待删除，重复调用无副作用
func (e *Entity) Dispose() {
	if e.disposed {
		return
	}
	if e.Movement != nil && e.initialized {
		_ = e.Movement.StopMovement()
	}
	e.disposed = true
	e.em.DestroyEntity(e.ID)
}

// Disposed 是否已被销毁
func (e *Entity) Disposed() bool {
	return e.disposed
}

// SetIntent 设置本帧的移动意图
// 寻路模式下 nil 表示继续追踪目标
func (e *Entity) SetIntent(intent *utils.Vec2) {
	e.intent = intent
}

// SetTarget 设置追踪目标，必须在 Init 之前调用
func (e *Entity) SetTarget(target components.TargetHandle) {
	e.target = target
}

// Target 当前追踪目标
func (e *Entity) Target() components.TargetHandle {
	return e.target
}

// Position 实现 components.TargetHandle
func (e *Entity) Position() utils.Vec2 {
	return e.Pos.Vec()
}

// IsAlive 实现 components.TargetHandle
// 已销毁或生命值归零的实体视为死亡
func (e *Entity) IsAlive() bool {
	if e.disposed {
		return false
	}
	return e.Health == nil || !e.Health.IsDead()
}

// ReceiveAttack 受到攻击
// 免疫期间忽略攻击；没有生命值的实体不受伤害
func (e *Entity) ReceiveAttack(sourceID ecs.EntityID, damage int) {
	if e.disposed || e.Health == nil {
		return
	}
	if e.Combat != nil && e.Combat.ImmuneAttack {
		return
	}
	e.Health.ReceiveAttack(sourceID, damage)
}

// TryAttack 冷却就绪时执行一次攻击
//
// 返回：
//   - bool: 攻击是否执行；执行后重新开始冷却
func (e *Entity) TryAttack() bool {
	if e.Combat == nil || !e.IsAlive() {
		return false
	}
	if e.Cooldown != nil && !e.Cooldown.IsReady {
		return false
	}
	if !e.Combat.Attack(e.ID) {
		return false
	}
	if e.Cooldown != nil {
		e.Cooldown.Reset()
	}
	return true
}

// Nearby 返回距离 distance 以内的其他实体，按距离从近到远排序
func (e *Entity) Nearby(distance float64) []*Entity {
	return Nearby(e.em, e.Position(), distance, e.ID)
}

// BindEvents 把实体各模型的通知转发到事件分发器
// 供表现层（HUD、音效等）统一订阅
func (e *Entity) BindEvents(d *event.Dispatcher) {
	if d == nil {
		return
	}
	source := uint64(e.ID)
	emit := func(t event.EventType, data interface{}) {
		d.Dispatch(event.Event{Type: t, SourceID: source, Data: data})
	}

	if e.Health != nil {
		e.Health.OnHealthChange.Subscribe(func(struct{}) { emit(event.HealthChanged, e.Health.Health()) })
		e.Health.OnAttacked.Subscribe(func(info components.AttackInfo) { emit(event.Attacked, info) })
		e.Health.OnDeath.Subscribe(func(struct{}) { emit(event.Died, e.Kind) })
	}
	if e.Movement != nil {
		e.Movement.OnStartMoving.Subscribe(func(struct{}) { emit(event.StartMoving, nil) })
		e.Movement.OnStopMoving.Subscribe(func(struct{}) { emit(event.StopMoving, nil) })
	}
	if e.Combat != nil {
		e.Combat.OnAttack.Subscribe(func(ecs.EntityID) { emit(event.Attack, e.Kind) })
	}
}
