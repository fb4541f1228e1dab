package systems

import (
	"github.com/gonewx/last12h/pkg/components"
	"github.com/gonewx/last12h/pkg/ecs"
	"github.com/gonewx/last12h/pkg/entities"
	"github.com/gonewx/last12h/pkg/utils"
)

// EnemyAISystem 敌人决策
//
// 每帧为每个敌人决定移动意图并尝试攻击：
//   - 目标在攻击距离内：停下并攻击（受冷却限制）
//   - 目标在视野内：追踪（寻路模式交给后端，直线模式朝目标移动）
//   - 其他情况：原地待命
//
// 意图在 EntitySystem 的 Tick 中生效，所以本系统必须在它之前运行。
type EnemyAISystem struct {
	em *ecs.EntityManager
}

// NewEnemyAISystem 创建敌人 AI 系统
func NewEnemyAISystem(em *ecs.EntityManager) *EnemyAISystem {
	return &EnemyAISystem{em: em}
}

// Update 更新所有敌人的决策
func (s *EnemyAISystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *entities.Entity](s.em) {
		e, _ := entities.Get(s.em, id)
		if !e.IsAlive() || e.Combat == nil || e.Movement == nil {
			continue
		}
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, id)

		pos := e.Position()
		zero := utils.Zero

		switch {
		case e.Combat.InAttackRange(pos, enemy.Target):
			e.SetIntent(&zero)
			e.TryAttack()

		case e.Combat.InVision(pos, enemy.Target) && e.Movement.Speed > 0:
			if e.Movement.Mode() == components.MovementPathFollowing {
				e.SetIntent(nil)
			} else {
				dir := components.DirectionTo(pos, enemy.Target)
				e.SetIntent(&dir)
			}

		default:
			e.SetIntent(&zero)
		}
	}
}
