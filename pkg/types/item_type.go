// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import (
	"fmt"
	"strings"
)

// ItemType 定义物品类型
// 同一背包中每种类型最多只有一堆
type ItemType int

const (
	// ItemUndefined 未定义（用作"不需要物品"的标记）
	ItemUndefined ItemType = iota
	// ItemFlashlight 手电筒
	ItemFlashlight
	// ItemKnife 小刀
	ItemKnife
	// ItemGun 手枪
	ItemGun
	// ItemAxe 斧头
	ItemAxe
	// ItemBandage 绷带（消耗品，恢复 1 点生命值）
	ItemBandage
	// ItemAmmo 弹药
	ItemAmmo
)

var itemTypeNames = map[ItemType]string{
	ItemUndefined:  "Undefined",
	ItemFlashlight: "Flashlight",
	ItemKnife:      "Knife",
	ItemGun:        "Gun",
	ItemAxe:        "Axe",
	ItemBandage:    "Bandage",
	ItemAmmo:       "Ammo",
}

// String 返回物品类型的字符串表示
func (t ItemType) String() string {
	if name, ok := itemTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// IsEquipment 该类型是否属于装备（装备拾取后不会在关卡中重新生成）
func (t ItemType) IsEquipment() bool {
	switch t {
	case ItemFlashlight, ItemKnife, ItemGun, ItemAxe:
		return true
	default:
		return false
	}
}

// ParseItemType 从配置字符串解析物品类型（不区分大小写）
// 空字符串解析为 ItemUndefined
func ParseItemType(s string) (ItemType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ItemUndefined, nil
	}
	for t, name := range itemTypeNames {
		if strings.EqualFold(name, s) {
			return t, nil
		}
	}
	return ItemUndefined, fmt.Errorf("unknown item type: %q", s)
}
