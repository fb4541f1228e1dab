package systems

import (
	"github.com/gonewx/last12h/pkg/components"
	"github.com/gonewx/last12h/pkg/ecs"
	"github.com/gonewx/last12h/pkg/entities"
	"github.com/gonewx/last12h/pkg/event"
	"github.com/gonewx/last12h/pkg/logger"
	"github.com/sirupsen/logrus"
)

// LevelChanger 切换到指定关卡
type LevelChanger interface {
	ChangeLevel(level int) error
}

// DelayScheduler 延迟执行回调（游戏时间，秒）
type DelayScheduler interface {
	DelayCallback(delay float64, fn func())
}

// InteractionSystem 玩家与场景物体的交互
//
// 每帧高亮交互距离内最近的物体；玩家按下交互键时由外部调用 Interact。
type InteractionSystem struct {
	em         *ecs.EntityManager
	player     *entities.Player
	levels     LevelChanger
	scheduler  DelayScheduler
	dispatcher *event.Dispatcher
}

// NewInteractionSystem 创建交互系统
//
// 参数:
//   - em: 实体管理器
//   - levels: 关卡切换（门、出口使用）
//   - scheduler: 延迟回调（出口使用）
//   - dispatcher: 事件分发器，可为 nil
func NewInteractionSystem(em *ecs.EntityManager, levels LevelChanger, scheduler DelayScheduler, dispatcher *event.Dispatcher) *InteractionSystem {
	return &InteractionSystem{
		em:         em,
		levels:     levels,
		scheduler:  scheduler,
		dispatcher: dispatcher,
	}
}

// SetPlayer 设置交互的玩家
func (s *InteractionSystem) SetPlayer(p *entities.Player) {
	s.player = p
}

// Update 更新高亮状态
func (s *InteractionSystem) Update(deltaTime float64) {
	nearest := s.nearest()
	for _, id := range ecs.GetEntitiesWith1[*components.InteractableComponent](s.em) {
		ic, _ := ecs.GetComponent[*components.InteractableComponent](s.em, id)
		ic.Highlighted = nearest != nil && nearest.ID == id
	}
}

// nearest 交互距离内最近的可交互物体
func (s *InteractionSystem) nearest() *entities.Entity {
	if s.player == nil || !s.player.IsAlive() {
		return nil
	}
	for _, e := range s.player.Nearby(components.InteractDistance) {
		if ecs.HasComponent[*components.InteractableComponent](s.em, e.ID) {
			return e
		}
	}
	return nil
}

// Interact 与最近的物体交互
//
// 返回:
//   - bool: 是否产生了效果（上锁的门、已使用的出口返回 false）
func (s *InteractionSystem) Interact() bool {
	target := s.nearest()
	if target == nil {
		return false
	}
	ic, _ := ecs.GetComponent[*components.InteractableComponent](s.em, target.ID)
	log := logger.For("InteractionSystem").WithFields(logrus.Fields{
		"entity": target.ID,
		"kind":   ic.Kind.String(),
	})

	switch ic.Kind {
	case components.InteractItem:
		ic.Interact()
		s.player.Inventory.Add(ic.Item)
		target.Dispose()
		s.dispatch(event.ItemPickedUp, ic.Item)
		log.WithField("item", ic.Item.Type.String()).Info("item picked up")
		return true

	case components.InteractChangeLevel:
		if !ic.CanPass(s.player.Inventory) {
			log.WithField("requires", ic.RequiredItem.String()).Info("door is locked")
			return false
		}
		ic.Interact()
		if err := s.levels.ChangeLevel(ic.NextLevel); err != nil {
			log.WithError(err).Error("change level failed")
			return false
		}
		return true

	case components.InteractBool:
		ic.Interact()
		if ic.ChangeCollision {
			if col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, target.ID); ok {
				col.Solid = !col.Solid
			}
		}
		log.WithField("on", ic.IsInteracting).Debug("switch toggled")
		return true

	case components.InteractScene:
		if !ic.Consume() {
			return false
		}
		ic.Interact()
		s.player.Movement.CanMove = false
		next := ic.NextLevel
		player := s.player
		s.scheduler.DelayCallback(ic.Delay, func() {
			// 等待期间死亡则不再换关
			if !player.IsAlive() {
				log.Info("player died before leaving, exit cancelled")
				return
			}
			if err := s.levels.ChangeLevel(next); err != nil {
				log.WithError(err).Error("change level failed")
			}
		})
		return true
	}
	return false
}

func (s *InteractionSystem) dispatch(t event.EventType, data interface{}) {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Dispatch(event.Event{Type: t, SourceID: uint64(s.player.ID), Data: data})
}
