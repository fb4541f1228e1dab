package game

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/gonewx/last12h/pkg/config"
	"github.com/gonewx/last12h/pkg/logger"
	"github.com/quasilyte/gdata/v2"
)

func TestMain(m *testing.M) {
	logger.Silence()
	os.Exit(m.Run())
}

// newTestStats 测试用实体属性
func newTestStats() *config.EntityStatsConfig {
	return &config.EntityStatsConfig{
		Entities: map[string]config.EntityStats{
			"player": {MaxHealth: 3, Attack: 1, Speed: 4, AttackRange: 1.5, AttackCooldown: 0.4, Width: 0.8, Height: 0.8},
			"rat":    {MaxHealth: 2, Attack: 1, VisionDistance: 6, Speed: 2.5, AttackRange: 0.9, AttackCooldown: 1, UsePathfinding: true, Width: 0.6, Height: 0.4},
			"boss":   {MaxHealth: 12, Attack: 1, VisionDistance: 12, AttackRange: 8, AttackCooldown: 1.5, Width: 2, Height: 2},
			"bullet": {Attack: 1, Speed: 10, Width: 0.25, Height: 0.25},
		},
	}
}

// newTestLevels 测试用关卡：第一关有物品、开关和上锁的门，第二关有敌人和出口
func newTestLevels() *config.LevelsConfig {
	return &config.LevelsConfig{
		Levels: []config.LevelConfig{
			{
				ID:          1,
				Name:        "Bedroom",
				PlayerSpawn: config.Point{X: 2, Y: 2},
				Items: []config.ItemSpawnConfig{
					{Type: "flashlight", Amount: 1, Point: config.Point{X: 3, Y: 2}},
					{Type: "bandage", Amount: 2, Point: config.Point{X: 7, Y: 6}},
				},
				Switches: []config.SwitchConfig{
					{Solid: true, ChangeCollision: true, Point: config.Point{X: 9, Y: 2}},
				},
				Doors: []config.DoorConfig{
					{NextLevel: 2, Requires: "flashlight", Point: config.Point{X: 12, Y: 5}},
				},
			},
			{
				ID:          2,
				Name:        "Hallway",
				PlayerSpawn: config.Point{X: 1, Y: 5},
				Enemies: []config.SpawnConfig{
					{Kind: "rat", Point: config.Point{X: 8, Y: 4}},
					{Kind: "boss", Point: config.Point{X: 14, Y: 4}},
				},
				Exits: []config.ExitConfig{
					{NextLevel: 1, Delay: 1.5, Point: config.Point{X: 1, Y: 6}},
				},
			},
		},
	}
}

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := NewWorld(newTestStats())
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}
	return w
}

// openTestGdata 在临时目录中打开 gdata，无法打开时跳过测试
func openTestGdata(t *testing.T) *gdata.Manager {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)

	m, err := gdata.Open(gdata.Config{
		AppName: fmt.Sprintf("last12h_test_%d", time.Now().UnixNano()),
	})
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}
	return m
}
