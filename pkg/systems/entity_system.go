package systems

import (
	"errors"

	"github.com/gonewx/last12h/pkg/components"
	"github.com/gonewx/last12h/pkg/ecs"
	"github.com/gonewx/last12h/pkg/entities"
	"github.com/gonewx/last12h/pkg/logger"
	"github.com/sirupsen/logrus"
)

// EntitySystem 驱动实体生命周期
// 新创建的实体在第一次更新时 Init，之后每帧按 ID 顺序 Tick
type EntitySystem struct {
	em *ecs.EntityManager
}

// NewEntitySystem 创建实体生命周期系统
func NewEntitySystem(em *ecs.EntityManager) *EntitySystem {
	return &EntitySystem{em: em}
}

// Update 初始化新实体并更新所有实体
// 单个实体出错只跳过该实体本帧的更新，不影响其他实体
func (s *EntitySystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*entities.Entity](s.em) {
		e, ok := entities.Get(s.em, id)
		if !ok || e.Disposed() {
			continue
		}

		if !e.Initialized() {
			if err := e.Init(); err != nil {
				logger.For("EntitySystem").WithError(err).Warn("init failed")
				continue
			}
		}

		if err := e.Tick(deltaTime); err != nil {
			entry := logger.For("EntitySystem").WithFields(logrus.Fields{
				"entity": id,
				"kind":   e.Kind.String(),
			}).WithError(err)
			if errors.Is(err, components.ErrNilMovement) {
				entry.Error("invalid movement intent, entity skipped this tick")
			} else {
				entry.Warn("tick failed")
			}
		}
	}
}
