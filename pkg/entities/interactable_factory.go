package entities

import (
	"fmt"

	"github.com/gonewx/last12h/pkg/components"
	"github.com/gonewx/last12h/pkg/ecs"
	"github.com/gonewx/last12h/pkg/types"
	"github.com/gonewx/last12h/pkg/utils"
)

// 可交互物体的碰撞盒尺寸
const (
	pickupSize = 0.5
	doorSize   = 1.0
	switchSize = 1.0
	exitSize   = 1.0
)

func newInteractable(em *ecs.EntityManager, kind types.EntityKind, pos utils.Vec2, size float64, solid bool, interactable *components.InteractableComponent) (*Entity, error) {
	if em == nil {
		return nil, fmt.Errorf("entity manager cannot be nil")
	}
	e := newEntity(em, kind, pos)
	em.AddComponent(e.ID, interactable)
	em.AddComponent(e.ID, &components.CollisionComponent{Width: size, Height: size, Solid: solid})
	return e, nil
}

// NewItemPickup 创建地上的物品，交互即拾取
func NewItemPickup(em *ecs.EntityManager, item components.Item, pos utils.Vec2) (*Entity, error) {
	if item.Type == types.ItemUndefined {
		return nil, fmt.Errorf("pickup item type cannot be undefined")
	}
	return newInteractable(em, types.EntityItem, pos, pickupSize, false, &components.InteractableComponent{
		Kind: components.InteractItem,
		Item: components.NewItem(item.Type, item.Amount),
	})
}

// NewDoor 创建通往其他关卡的门
//
// 参数:
//   - nextLevel: 目标关卡
//   - required: 通过所需物品，types.ItemUndefined 表示无需物品
func NewDoor(em *ecs.EntityManager, pos utils.Vec2, nextLevel int, required types.ItemType) (*Entity, error) {
	return newInteractable(em, types.EntityDoor, pos, doorSize, true, &components.InteractableComponent{
		Kind:         components.InteractChangeLevel,
		NextLevel:    nextLevel,
		RequiredItem: required,
	})
}

// NewSwitch 创建开关
//
// 参数:
//   - solid: 初始是否阻挡移动
//   - changeCollision: 切换时是否同时切换阻挡
func NewSwitch(em *ecs.EntityManager, pos utils.Vec2, solid, changeCollision bool) (*Entity, error) {
	return newInteractable(em, types.EntitySwitch, pos, switchSize, solid, &components.InteractableComponent{
		Kind:            components.InteractBool,
		ChangeCollision: changeCollision,
	})
}

// NewExit 创建关卡出口，只能触发一次
//
// 参数:
//   - nextLevel: 目标关卡
//   - delay: 触发后延迟多少秒换关
func NewExit(em *ecs.EntityManager, pos utils.Vec2, nextLevel int, delay float64) (*Entity, error) {
	return newInteractable(em, types.EntityExit, pos, exitSize, false, &components.InteractableComponent{
		Kind:      components.InteractScene,
		NextLevel: nextLevel,
		Delay:     delay,
	})
}
