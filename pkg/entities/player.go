package entities

import (
	"fmt"

	"github.com/gonewx/last12h/pkg/components"
	"github.com/gonewx/last12h/pkg/config"
	"github.com/gonewx/last12h/pkg/ecs"
	"github.com/gonewx/last12h/pkg/event"
	"github.com/gonewx/last12h/pkg/types"
	"github.com/gonewx/last12h/pkg/utils"
)

// 武器参数
const (
	GunRange  = 6.0 // 手枪射程
	GunDamage = 3
	AxeDamage = 2
)

// Player 玩家
// 跨关卡存在，关卡卸载时不会被销毁
type Player struct {
	*Entity
	Inventory *components.Inventory
	Tag       *components.PlayerComponent
}

// NewPlayer 创建玩家实体
//
// 参数:
//   - em: 实体管理器
//   - stats: 玩家属性配置
//   - pos: 出生位置
//
// 返回:
//   - *Player: 玩家
//   - error: 参数非法时返回错误
func NewPlayer(em *ecs.EntityManager, stats *config.EntityStats, pos utils.Vec2) (*Player, error) {
	if em == nil {
		return nil, fmt.Errorf("entity manager cannot be nil")
	}
	if stats == nil {
		return nil, fmt.Errorf("player stats cannot be nil")
	}

	e := newEntity(em, types.EntityPlayer, pos)
	e.Health = components.NewHealthComponent(stats.MaxHealth)
	e.Movement = components.NewMovementComponent(stats.Speed)
	e.Combat = &components.CombatComponent{
		AttackPower:    stats.Attack,
		AttackRange:    stats.AttackRange,
		VisionDistance: stats.VisionDistance,
	}
	e.Animator = components.NewAnimatorComponent()
	e.Cooldown = components.NewCooldown("attack_cooldown", stats.AttackCooldown)
	zero := utils.Zero
	e.intent = &zero

	p := &Player{
		Entity:    e,
		Inventory: components.NewInventory(),
		Tag:       &components.PlayerComponent{Level: 1},
	}
	e.Combat.SetAttacker(components.AttackerFunc(p.strike))

	em.AddComponent(e.ID, e.Health)
	em.AddComponent(e.ID, e.Movement)
	em.AddComponent(e.ID, e.Combat)
	em.AddComponent(e.ID, e.Animator)
	em.AddComponent(e.ID, e.Cooldown)
	em.AddComponent(e.ID, &components.VelocityComponent{})
	em.AddComponent(e.ID, &components.CollisionComponent{Width: stats.Width, Height: stats.Height})
	em.AddComponent(e.ID, p.Tag)
	em.AddComponent(e.ID, p.Inventory)
	ecs.AddComponent(em, e.ID, p)

	return p, nil
}

// GetPlayer 获取实体上的玩家数据
func GetPlayer(em *ecs.EntityManager, id ecs.EntityID) (*Player, bool) {
	return ecs.GetComponent[*Player](em, id)
}

// Level 当前所在关卡
func (p *Player) Level() int {
	return p.Tag.Level
}

// EnterLevel 进入关卡：记录关卡号，解除免疫，移动到出生点
func (p *Player) EnterLevel(level int, spawn utils.Vec2) {
	p.Tag.Level = level
	p.Combat.ImmuneAttack = false
	p.Movement.CanMove = true
	p.Pos.Set(spawn)
	zero := utils.Zero
	p.intent = &zero
}

// ResetInfo 重置玩家状态
//
// 参数:
//   - resetInventory: true 时同时清空背包并回到第一关（新游戏），false 只恢复生命值（重试本关）
func (p *Player) ResetInfo(resetInventory bool) {
	p.Health.SetHealth(p.Health.MaxHealth)
	p.Movement.CanMove = true
	if p.Cooldown != nil {
		p.Cooldown.IsReady = true
	}
	if resetInventory {
		p.Inventory.Clear()
		p.Tag.Level = 1
	}
}

// UseBandage 使用一个绷带恢复 1 点生命值
// 死亡、满血或没有绷带时忽略
//
// 返回:
//   - bool: 是否使用了绷带
func (p *Player) UseBandage() bool {
	if !p.IsAlive() || p.Health.Health() >= p.Health.MaxHealth {
		return false
	}
	if !p.Inventory.ContainsType(types.ItemBandage) {
		return false
	}
	p.Inventory.Remove(types.ItemBandage, 1)
	p.Health.SetHealth(p.Health.Health() + 1)
	return true
}

// Weapon 当前可用的武器及其伤害、射程
// 优先级：有弹药的手枪 > 斧头 > 小刀
//
// 返回:
//   - ok: 没有任何可用武器时为 false
func (p *Player) Weapon() (weapon types.ItemType, damage int, reach float64, ok bool) {
	inv := p.Inventory
	switch {
	case inv.ContainsType(types.ItemGun) && inv.ContainsType(types.ItemAmmo):
		return types.ItemGun, GunDamage, GunRange, true
	case inv.ContainsType(types.ItemAxe):
		return types.ItemAxe, AxeDamage, p.Combat.AttackRange, true
	case inv.ContainsType(types.ItemKnife):
		return types.ItemKnife, p.Combat.AttackPower, p.Combat.AttackRange, true
	default:
		return types.ItemUndefined, 0, 0, false
	}
}

// strike 玩家的攻击策略：用当前武器攻击射程内最近的敌人
func (p *Player) strike(self ecs.EntityID) bool {
	weapon, damage, reach, ok := p.Weapon()
	if !ok {
		return false
	}

	var target *Entity
	for _, e := range p.Nearby(reach) {
		if ecs.HasComponent[*components.EnemyComponent](p.em, e.ID) && e.IsAlive() {
			target = e
			break
		}
	}
	if target == nil {
		return false
	}

	if weapon == types.ItemGun {
		p.Inventory.Remove(types.ItemAmmo, 1)
	}
	target.ReceiveAttack(self, damage)
	return true
}

// BindEvents 转发实体事件和背包事件
func (p *Player) BindEvents(d *event.Dispatcher) {
	if d == nil {
		return
	}
	p.Entity.BindEvents(d)

	source := uint64(p.ID)
	emit := func(t event.EventType, data interface{}) {
		d.Dispatch(event.Event{Type: t, SourceID: source, Data: data})
	}
	p.Inventory.OnAddItem.Subscribe(func(item components.Item) { emit(event.ItemAdded, item) })
	p.Inventory.OnRemoveItem.Subscribe(func(item components.Item) { emit(event.ItemRemoved, item) })
	p.Inventory.OnUpdateItem.Subscribe(func(item components.Item) { emit(event.ItemUpdated, item) })
	p.Inventory.OnChange.Subscribe(func(struct{}) { emit(event.InventoryChanged, p.Inventory.Len()) })
}
