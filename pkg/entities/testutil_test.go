package entities

import (
	"github.com/gonewx/last12h/pkg/config"
	"github.com/gonewx/last12h/pkg/utils"
)

func playerStats() *config.EntityStats {
	return &config.EntityStats{MaxHealth: 3, Attack: 1, Speed: 4, AttackRange: 1.5, AttackCooldown: 0.5, Width: 0.8, Height: 0.8}
}

func ratStats(pathfinding bool) *config.EntityStats {
	return &config.EntityStats{MaxHealth: 2, Attack: 1, VisionDistance: 6, Speed: 2.5, AttackRange: 1, AttackCooldown: 1, UsePathfinding: pathfinding, Width: 0.6, Height: 0.4}
}

func bossStats() *config.EntityStats {
	return &config.EntityStats{MaxHealth: 12, Attack: 1, VisionDistance: 12, AttackRange: 8, AttackCooldown: 1.5, Width: 2, Height: 2}
}

func bulletStats() *config.EntityStats {
	return &config.EntityStats{Attack: 1, Speed: 10, Width: 0.25, Height: 0.25}
}

func at(x, y float64) utils.Vec2 {
	return utils.Vec2{X: x, Y: y}
}
