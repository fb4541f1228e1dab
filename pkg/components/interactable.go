package components

import (
	"github.com/gonewx/last12h/pkg/event"
	"github.com/gonewx/last12h/pkg/types"
)

// InteractDistance 玩家可以与物体交互的最大距离（世界单位）
const InteractDistance = 2.0

// InteractionKind 可交互物体的种类
type InteractionKind int

const (
	InteractItem        InteractionKind = iota // 地上的物品，交互即拾取
	InteractChangeLevel                        // 门，需要钥匙类物品才能通过
	InteractBool                               // 开关，在两个状态之间切换
	InteractScene                              // 出口，只能触发一次
)

// String 返回交互种类名称
func (k InteractionKind) String() string {
	switch k {
	case InteractItem:
		return "item"
	case InteractChangeLevel:
		return "door"
	case InteractBool:
		return "switch"
	case InteractScene:
		return "exit"
	default:
		return "unknown"
	}
}

// InteractableComponent 可交互物体
//
// Interact 只负责切换 IsInteracting 并发出通知，
// 各种类的具体效果（拾取、换关、切换碰撞）由 InteractionSystem 执行。
type InteractableComponent struct {
	Kind          InteractionKind
	IsInteracting bool
	Highlighted   bool // 玩家在交互距离内且为最近的可交互物体

	Item Item // InteractItem: 拾取的物品

	NextLevel    int            // InteractChangeLevel / InteractScene: 目标关卡
	RequiredItem types.ItemType // InteractChangeLevel: 需要的物品，ItemUndefined 表示无需物品

	ChangeCollision bool // InteractBool: 切换时同时切换碰撞阻挡

	Delay float64 // InteractScene: 触发后延迟多少秒换关

	used bool // InteractScene: 是否已经触发过

	OnInteractingChange event.Notify
}

// Interact 切换交互状态
func (c *InteractableComponent) Interact() {
	c.IsInteracting = !c.IsInteracting
	event.Fire(&c.OnInteractingChange)
}

// Consume 标记一次性交互已被使用
// 返回 false 表示之前已经使用过
func (c *InteractableComponent) Consume() bool {
	if c.used {
		return false
	}
	c.used = true
	return true
}

// CanPass 持有的物品是否满足通过条件
func (c *InteractableComponent) CanPass(inv *Inventory) bool {
	if c.RequiredItem == types.ItemUndefined {
		return true
	}
	return inv != nil && inv.ContainsType(c.RequiredItem)
}
