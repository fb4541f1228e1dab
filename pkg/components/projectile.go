package components

import "github.com/gonewx/last12h/pkg/ecs"

// BulletImpulse 子弹发射冲量（质量为 1，即初速度）
const BulletImpulse = 10.0

// ProjectileComponent 子弹数据
type ProjectileComponent struct {
	OwnerID ecs.EntityID // 发射者，不会命中自己
	Damage  int          // 命中玩家时造成的伤害
}
