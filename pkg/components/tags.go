package components

import "github.com/gonewx/last12h/pkg/types"

// PlayerComponent 标记玩家实体
type PlayerComponent struct {
	Level int // 当前所在关卡
}

// EnemyComponent 标记敌人实体
type EnemyComponent struct {
	Kind   types.EntityKind // EntityRat / EntityBoss
	Target TargetHandle     // 追踪目标（通常是玩家），只读引用
}
