package types

// EntityKind 定义实体的种类
// 决定实体由哪个工厂创建、使用哪组属性配置
type EntityKind int

const (
	// EntityUnknown 未知实体
	EntityUnknown EntityKind = iota
	// EntityPlayer 玩家
	EntityPlayer
	// EntityRat 老鼠（近战敌人）
	EntityRat
	// EntityBoss Boss（远程敌人，发射子弹）
	EntityBoss
	// EntityBullet Boss 发射的子弹
	EntityBullet
	// EntityItem 地图上可拾取的物品
	EntityItem
	// EntityDoor 换关门（可能需要钥匙类物品）
	EntityDoor
	// EntitySwitch 双态开关
	EntitySwitch
	// EntityExit 关卡出口（一次性）
	EntityExit
)

// String 返回实体种类的字符串表示
// 与 entity_stats.yaml 中的键保持一致
func (k EntityKind) String() string {
	switch k {
	case EntityPlayer:
		return "player"
	case EntityRat:
		return "rat"
	case EntityBoss:
		return "boss"
	case EntityBullet:
		return "bullet"
	case EntityItem:
		return "item"
	case EntityDoor:
		return "door"
	case EntitySwitch:
		return "switch"
	case EntityExit:
		return "exit"
	default:
		return "unknown"
	}
}

// ParseEnemyKind 解析关卡配置中的敌人种类
// 只有会移动、会攻击的实体才能作为敌人生成
func ParseEnemyKind(s string) (EntityKind, bool) {
	switch s {
	case "rat":
		return EntityRat, true
	case "boss":
		return EntityBoss, true
	default:
		return EntityUnknown, false
	}
}
