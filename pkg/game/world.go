package game

import (
	"fmt"

	"github.com/gonewx/last12h/pkg/components"
	"github.com/gonewx/last12h/pkg/config"
	"github.com/gonewx/last12h/pkg/ecs"
	"github.com/gonewx/last12h/pkg/entities"
	"github.com/gonewx/last12h/pkg/event"
	"github.com/gonewx/last12h/pkg/logger"
	"github.com/gonewx/last12h/pkg/systems"
	"github.com/gonewx/last12h/pkg/types"
	"github.com/gonewx/last12h/pkg/utils"
)

// World 游戏世界
//
// 持有实体管理器、事件分发器、调度器和所有系统，每帧按固定顺序更新：
// 调度器 → 敌人 AI → 实体 Tick → 物理 → 子弹 → 交互 → 瞄准 → 生命周期 → 清理
type World struct {
	EM         *ecs.EntityManager
	Dispatcher *event.Dispatcher
	Scheduler  *Scheduler
	Stats      *config.EntityStatsConfig
	Player     *entities.Player

	Interaction *systems.InteractionSystem

	ai         *systems.EnemyAISystem
	lifecycle  *systems.EntitySystem
	physics    *systems.PhysicsSystem
	projectile *systems.ProjectileSystem
	aim        *systems.AimSystem
	lifetime   *systems.LifetimeSystem
}

// NewWorld 创建游戏世界并生成玩家
//
// 参数：
//   - stats: 实体属性配置，必须包含玩家属性
//
// 返回：
//   - *World: 游戏世界
//   - error: 缺少玩家属性时返回错误
func NewWorld(stats *config.EntityStatsConfig) (*World, error) {
	if stats == nil {
		return nil, fmt.Errorf("entity stats cannot be nil")
	}
	playerStats, ok := stats.Get(types.EntityPlayer)
	if !ok {
		return nil, fmt.Errorf("player stats not found")
	}

	em := ecs.NewEntityManager()
	w := &World{
		EM:         em,
		Dispatcher: event.NewDispatcher(),
		Scheduler:  NewScheduler(),
		Stats:      stats,
		ai:         systems.NewEnemyAISystem(em),
		lifecycle:  systems.NewEntitySystem(em),
		physics:    systems.NewPhysicsSystem(em),
		projectile: systems.NewProjectileSystem(em),
		aim:        systems.NewAimSystem(em),
		lifetime:   systems.NewLifetimeSystem(em),
	}

	player, err := entities.NewPlayer(em, playerStats, utils.Zero)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	if err := player.Init(); err != nil {
		return nil, err
	}
	player.BindEvents(w.Dispatcher)
	w.Player = player

	return w, nil
}

// SetLevelChanger 创建交互系统，门和出口通过 levels 切换关卡
func (w *World) SetLevelChanger(levels systems.LevelChanger) {
	w.Interaction = systems.NewInteractionSystem(w.EM, levels, w.Scheduler, w.Dispatcher)
	w.Interaction.SetPlayer(w.Player)
}

// Update 更新一帧
func (w *World) Update(deltaTime float64) {
	w.Scheduler.Update(deltaTime)
	w.ai.Update(deltaTime)
	w.lifecycle.Update(deltaTime)
	w.physics.Update(deltaTime)
	w.projectile.Update(deltaTime)
	if w.Interaction != nil {
		w.Interaction.Update(deltaTime)
	}
	w.aim.Update(deltaTime)
	w.lifetime.Update(deltaTime)
	w.EM.RemoveMarkedEntities()
}

// SpawnEnemy 生成敌人，目标为玩家
func (w *World) SpawnEnemy(kind types.EntityKind, pos utils.Vec2) (*entities.Entity, error) {
	stats, ok := w.Stats.Get(kind)
	if !ok {
		return nil, fmt.Errorf("stats for %s not found", kind)
	}

	var (
		e   *entities.Entity
		err error
	)
	switch kind {
	case types.EntityRat:
		e, err = entities.NewRat(w.EM, stats, pos, w.Player)
	case types.EntityBoss:
		bulletStats, ok := w.Stats.Get(types.EntityBullet)
		if !ok {
			return nil, fmt.Errorf("stats for %s not found", types.EntityBullet)
		}
		e, err = entities.NewBoss(w.EM, stats, bulletStats, pos, w.Player)
	default:
		return nil, fmt.Errorf("%s is not an enemy", kind)
	}
	if err != nil {
		return nil, err
	}
	e.BindEvents(w.Dispatcher)
	return e, nil
}

// SpawnPickup 生成地上的物品
func (w *World) SpawnPickup(item components.Item, pos utils.Vec2) (*entities.Entity, error) {
	return entities.NewItemPickup(w.EM, item, pos)
}

// SpawnDoor 生成门
func (w *World) SpawnDoor(pos utils.Vec2, nextLevel int, required types.ItemType) (*entities.Entity, error) {
	return entities.NewDoor(w.EM, pos, nextLevel, required)
}

// SpawnSwitch 生成开关
func (w *World) SpawnSwitch(pos utils.Vec2, solid, changeCollision bool) (*entities.Entity, error) {
	return entities.NewSwitch(w.EM, pos, solid, changeCollision)
}

// SpawnExit 生成出口
func (w *World) SpawnExit(pos utils.Vec2, nextLevel int, delay float64) (*entities.Entity, error) {
	return entities.NewExit(w.EM, pos, nextLevel, delay)
}

// ClearLevel 卸载当前关卡：销毁玩家以外的所有实体，丢弃未执行的延迟回调
func (w *World) ClearLevel() {
	for _, id := range ecs.GetEntitiesWith1[*entities.Entity](w.EM) {
		if id == w.Player.ID {
			continue
		}
		e, _ := entities.Get(w.EM, id)
		e.Dispose()
	}
	w.Scheduler.Clear()
	removed := w.EM.RemoveMarkedEntities()
	logger.For("World").WithField("removed", len(removed)).Debug("level cleared")
}

// Nearby 返回 pos 周围 distance 以内的实体，按距离从近到远排序
func (w *World) Nearby(pos utils.Vec2, distance float64) []*entities.Entity {
	return entities.Nearby(w.EM, pos, distance, 0)
}

// Entities 返回当前所有实体，按创建顺序
func (w *World) Entities() []*entities.Entity {
	ids := ecs.GetEntitiesWith1[*entities.Entity](w.EM)
	result := make([]*entities.Entity, 0, len(ids))
	for _, id := range ids {
		if e, ok := entities.Get(w.EM, id); ok {
			result = append(result, e)
		}
	}
	return result
}
