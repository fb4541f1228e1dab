// Package app 把游戏世界接入 ebiten 的主循环
package app

import (
	"fmt"

	"github.com/gonewx/last12h/pkg/config"
	"github.com/gonewx/last12h/pkg/game"
	"github.com/gonewx/last12h/pkg/logger"
	"github.com/hajimehoshi/ebiten/v2"
)

// 屏幕参数
const (
	ScreenWidth   = 800
	ScreenHeight  = 600
	pixelsPerUnit = 40.0 // 1 个世界单位对应的像素数
)

// Options 启动参数
type Options struct {
	StartLevel int  // 大于 0 时跳过菜单直接进入该关卡
	Debug      bool // 显示碰撞盒和调试信息
}

// Game 实现 ebiten.Game
type Game struct {
	world  *game.World
	levels *game.LevelManager
	hud    *HUD
	opts   Options

	// readControls 可替换，便于在没有窗口的环境下驱动
	readControls func() Controls
}

// NewGame 创建游戏
//
// 参数：
//   - stats: 实体属性配置
//   - levels: 关卡配置
//   - checkpoints: 存档管理器，可为 nil
//   - opts: 启动参数
func NewGame(stats *config.EntityStatsConfig, levels *config.LevelsConfig, checkpoints *game.CheckpointStore, opts Options) (*Game, error) {
	world, err := game.NewWorld(stats)
	if err != nil {
		return nil, fmt.Errorf("failed to create world: %w", err)
	}
	lm, err := game.NewLevelManager(world, levels, checkpoints)
	if err != nil {
		return nil, fmt.Errorf("failed to create level manager: %w", err)
	}

	g := &Game{
		world:        world,
		levels:       lm,
		hud:          NewHUD(world.Dispatcher, uint64(world.Player.ID), world.Player.Health.Health()),
		opts:         opts,
		readControls: ReadControls,
	}

	if opts.StartLevel > 0 {
		if err := lm.LoadLevel(opts.StartLevel); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Update 每个 tick 调用一次
func (g *Game) Update() error {
	deltaTime := 1.0 / float64(ebiten.TPS())
	g.step(g.readControls(), deltaTime)
	return nil
}

// step 处理一帧的输入并更新世界
func (g *Game) step(c Controls, deltaTime float64) {
	log := logger.For("Game")

	switch g.levels.State() {
	case game.StateMenu:
		var err error
		switch {
		case c.Start:
			err = g.levels.StartGame()
		case c.Continue:
			err = g.levels.ContinueGame()
		}
		if err != nil {
			log.WithError(err).Error("failed to start game")
		}
		return

	case game.StateGameOver:
		var err error
		switch {
		case c.Restart:
			err = g.levels.RestartLevel()
		case c.Start:
			err = g.levels.StartGame()
		}
		if err != nil {
			log.WithError(err).Error("failed to restart")
		}

	case game.StatePlaying:
		player := g.world.Player
		intent := c.Intent()
		player.SetIntent(&intent)
		if c.Attack {
			player.TryAttack()
		}
		if c.Heal {
			player.UseBandage()
		}
		if c.Interact {
			g.world.Interaction.Interact()
		}
	}

	g.world.Update(deltaTime)
	g.hud.Update(deltaTime)
}

// Layout 逻辑屏幕尺寸
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
