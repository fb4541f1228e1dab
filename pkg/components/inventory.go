package components

import (
	"github.com/gonewx/last12h/pkg/event"
	"github.com/gonewx/last12h/pkg/types"
)

// Item 背包中的一种物品
// 同一类型的物品在背包中只占一格，数量合并
type Item struct {
	Type   types.ItemType
	Amount int
}

// NewItem 创建物品，数量至少为 1
func NewItem(itemType types.ItemType, amount int) Item {
	return Item{Type: itemType, Amount: max(amount, 1)}
}

// IsEquipment 是否为装备（装备在关卡中只会出现一次）
func (i Item) IsEquipment() bool {
	return i.Type.IsEquipment()
}

// Inventory 玩家背包
//
// 以物品类型为键的有序集合，保持插入顺序（合并不改变位置）。
//
// 事件（同步）：
//   - OnAddItem / OnUpdateItem / OnRemoveItem: 携带受影响物品的快照
//   - OnChange: 每次成功的修改之后触发
type Inventory struct {
	items []*Item

	OnAddItem    event.Signal[Item]
	OnRemoveItem event.Signal[Item]
	OnUpdateItem event.Signal[Item]
	OnChange     event.Notify
}

// NewInventory 创建空背包
func NewInventory() *Inventory {
	return &Inventory{}
}

// Add 添加物品
// 已有同类型物品时合并数量（OnUpdateItem），否则追加（OnAddItem）
func (inv *Inventory) Add(item Item) {
	item.Amount = max(item.Amount, 1)

	if idx := inv.indexOf(item.Type); idx >= 0 {
		existing := inv.items[idx]
		existing.Amount += item.Amount
		inv.OnUpdateItem.Emit(*existing)
	} else {
		stored := item
		inv.items = append(inv.items, &stored)
		inv.OnAddItem.Emit(stored)
	}
	event.Fire(&inv.OnChange)
}

// Remove 移除指定数量的物品
//
// 背包中没有该类型时什么也不做（不触发任何事件）。
// 持有数量大于请求数量时扣减，否则整格移除。请求数量至少按 1 计。
func (inv *Inventory) Remove(itemType types.ItemType, amount int) {
	idx := inv.indexOf(itemType)
	if idx < 0 {
		return
	}
	amount = max(amount, 1)

	item := inv.items[idx]
	if item.Amount > amount {
		item.Amount -= amount
		inv.OnUpdateItem.Emit(*item)
	} else {
		inv.items = append(inv.items[:idx], inv.items[idx+1:]...)
		inv.OnRemoveItem.Emit(*item)
	}
	event.Fire(&inv.OnChange)
}

// Get 按类型查找物品
// 返回的是副本，修改它不会影响背包；增减数量请使用 Add/Remove
func (inv *Inventory) Get(itemType types.ItemType) (*Item, bool) {
	idx := inv.indexOf(itemType)
	if idx < 0 {
		return nil, false
	}
	item := *inv.items[idx]
	return &item, true
}

// ContainsType 背包中是否有该类型物品
func (inv *Inventory) ContainsType(itemType types.ItemType) bool {
	return inv.indexOf(itemType) >= 0
}

// Amount 该类型物品的数量，没有时为 0
func (inv *Inventory) Amount(itemType types.ItemType) int {
	if item, ok := inv.Get(itemType); ok {
		return item.Amount
	}
	return 0
}

// Clear 清空背包，只触发 OnChange
func (inv *Inventory) Clear() {
	inv.items = nil
	event.Fire(&inv.OnChange)
}

// Items 按插入顺序返回物品快照
func (inv *Inventory) Items() []Item {
	out := make([]Item, len(inv.items))
	for i, item := range inv.items {
		out[i] = *item
	}
	return out
}

// Len 物品种类数
func (inv *Inventory) Len() int {
	return len(inv.items)
}

func (inv *Inventory) indexOf(itemType types.ItemType) int {
	for i, item := range inv.items {
		if item.Type == itemType {
			return i
		}
	}
	return -1
}
