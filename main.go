package main

import (
	"flag"

	"github.com/gonewx/last12h/pkg/app"
	"github.com/gonewx/last12h/pkg/config"
	"github.com/gonewx/last12h/pkg/embedded"
	"github.com/gonewx/last12h/pkg/game"
	"github.com/gonewx/last12h/pkg/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
	"github.com/sirupsen/logrus"
)

var (
	verbose = flag.Bool("verbose", false, "显示详细调试日志")
	debug   = flag.Bool("debug", false, "显示碰撞盒和调试信息")
	level   = flag.Int("level", 0, "跳过菜单直接进入指定关卡")
	appName = flag.String("app-name", "last12h", "存档目录使用的应用名")
)

func main() {
	flag.Parse()

	logger.Init()
	if *verbose {
		logger.Get().SetLevel(logrus.DebugLevel)
	}
	log := logger.For("Main")

	// 嵌入的数据文件必须在加载配置之前注册
	embedded.Init(dataFS)

	stats, err := config.LoadEntityStats(config.EntityStatsPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load entity stats")
	}
	levels, err := config.LoadLevels(config.LevelsPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load levels")
	}

	// 存档目录不可用时降级为内存存档，游戏仍可运行
	gdataManager, err := gdata.Open(gdata.Config{AppName: *appName})
	if err != nil {
		log.WithError(err).Warn("gdata unavailable, checkpoints will not be persisted")
		gdataManager = nil
	}

	g, err := app.NewGame(stats, levels, game.NewCheckpointStore(gdataManager), app.Options{
		StartLevel: *level,
		Debug:      *debug,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to create game")
	}

	ebiten.SetWindowSize(app.ScreenWidth, app.ScreenHeight)
	ebiten.SetWindowTitle("Last 12 Hours")

	if err := ebiten.RunGame(g); err != nil {
		log.WithError(err).Fatal("game loop exited with error")
	}
}
