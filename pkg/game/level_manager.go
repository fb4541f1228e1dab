package game

import (
	"errors"
	"fmt"

	"github.com/gonewx/last12h/pkg/components"
	"github.com/gonewx/last12h/pkg/config"
	"github.com/gonewx/last12h/pkg/ecs"
	"github.com/gonewx/last12h/pkg/entities"
	"github.com/gonewx/last12h/pkg/event"
	"github.com/gonewx/last12h/pkg/logger"
	"github.com/gonewx/last12h/pkg/types"
	"github.com/sirupsen/logrus"
)

var (
	// ErrLevelNotFound 关卡配置中没有指定的关卡
	ErrLevelNotFound = errors.New("level not found")
	// ErrPlayerDead 玩家已死亡，门和出口不能再切换关卡
	ErrPlayerDead = errors.New("player is dead")
)

// GameState 游戏流程状态
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StateGameOver
)

// String 返回状态名
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// LevelManager 关卡流程管理
//
// 负责开始游戏、加载关卡、重试、继续游戏和游戏结束。
// 门和出口通过 ChangeLevel 请求切换关卡。
type LevelManager struct {
	world       *World
	levels      *config.LevelsConfig
	checkpoints *CheckpointStore
	state       GameState
	current     int
}

// NewLevelManager 创建关卡管理器并接管玩家死亡事件
//
// 参数：
//   - world: 游戏世界
//   - levels: 关卡配置
//   - checkpoints: 存档管理器，可为 nil（不记录存档）
func NewLevelManager(world *World, levels *config.LevelsConfig, checkpoints *CheckpointStore) (*LevelManager, error) {
	if world == nil {
		return nil, fmt.Errorf("world cannot be nil")
	}
	if levels == nil {
		return nil, fmt.Errorf("levels config cannot be nil")
	}

	lm := &LevelManager{
		world:       world,
		levels:      levels,
		checkpoints: checkpoints,
		state:       StateMenu,
	}
	world.SetLevelChanger(lm)
	world.Player.Health.OnDeath.Subscribe(func(struct{}) { lm.gameOver() })
	return lm, nil
}

// State 当前流程状态
func (lm *LevelManager) State() GameState {
	return lm.state
}

// CurrentLevel 当前关卡号，尚未加载任何关卡时为 0
func (lm *LevelManager) CurrentLevel() int {
	return lm.current
}

// CurrentLevelConfig 当前关卡配置
func (lm *LevelManager) CurrentLevelConfig() (*config.LevelConfig, bool) {
	return lm.levels.GetLevel(lm.current)
}

// StartGame 开始新游戏：满血、清空背包，从第一关开始
func (lm *LevelManager) StartGame() error {
	lm.world.Player.ResetInfo(true)
	return lm.LoadLevel(1)
}

// RestartLevel 重试当前关卡，只恢复生命值，保留背包
func (lm *LevelManager) RestartLevel() error {
	level := lm.current
	if level == 0 {
		level = 1
	}
	// 先恢复生命值，进入关卡时记录的存档才是满血状态
	lm.world.Player.ResetInfo(false)
	return lm.LoadLevel(level)
}

// ContinueGame 从存档继续，没有存档时开始新游戏
func (lm *LevelManager) ContinueGame() error {
	if lm.checkpoints == nil {
		return lm.StartGame()
	}
	cp, err := lm.checkpoints.Load()
	if err != nil {
		logger.For("LevelManager").WithError(err).Warn("failed to load checkpoint, starting new game")
		return lm.StartGame()
	}
	if cp == nil {
		return lm.StartGame()
	}
	if _, ok := lm.levels.GetLevel(cp.Level); !ok {
		logger.For("LevelManager").WithField("level", cp.Level).Warn("checkpoint level missing, starting new game")
		return lm.StartGame()
	}

	lm.world.Player.ResetInfo(true)
	cp.Restore(lm.world.Player)
	if lm.world.Player.Health.IsDead() {
		lm.world.Player.ResetInfo(false)
	}
	return lm.LoadLevel(cp.Level)
}

// ChangeLevel 实现 systems.LevelChanger
// 玩家死亡后只能通过 RestartLevel / StartGame 离开当前关卡
func (lm *LevelManager) ChangeLevel(level int) error {
	if lm.state == StateGameOver || !lm.world.Player.IsAlive() {
		return fmt.Errorf("change to level %d: %w", level, ErrPlayerDead)
	}
	return lm.LoadLevel(level)
}

// LoadLevel 卸载当前关卡并加载指定关卡
//
// 加载期间玩家免疫攻击，进入关卡后解除。
func (lm *LevelManager) LoadLevel(id int) error {
	cfg, ok := lm.levels.GetLevel(id)
	if !ok {
		return fmt.Errorf("load level %d: %w", id, ErrLevelNotFound)
	}
	log := logger.For("LevelManager").WithFields(logrus.Fields{
		"level": id,
		"name":  cfg.Name,
	})

	// 先检查再卸载，失败时当前关卡保持原样
	if err := lm.check(cfg); err != nil {
		return fmt.Errorf("load level %d: %w", id, err)
	}

	player := lm.world.Player
	player.Combat.ImmuneAttack = true
	lm.world.ClearLevel()

	if err := lm.build(cfg); err != nil {
		player.Combat.ImmuneAttack = false
		return fmt.Errorf("load level %d: %w", id, err)
	}

	lm.enterLevel(cfg)
	log.Info("level loaded")
	return nil
}

// check 确认关卡中的实体都能生成
func (lm *LevelManager) check(cfg *config.LevelConfig) error {
	stats := lm.world.Stats
	for _, s := range cfg.Enemies {
		kind, ok := types.ParseEnemyKind(s.Kind)
		if !ok {
			return fmt.Errorf("unknown enemy kind %q", s.Kind)
		}
		if _, ok := stats.Get(kind); !ok {
			return fmt.Errorf("stats for %s not found", kind)
		}
		if kind == types.EntityBoss {
			if _, ok := stats.Get(types.EntityBullet); !ok {
				return fmt.Errorf("stats for %s not found", types.EntityBullet)
			}
		}
	}
	for _, it := range cfg.Items {
		if it.ItemType() == types.ItemUndefined {
			return fmt.Errorf("item type %q is not valid", it.Type)
		}
	}
	return nil
}

// build 根据配置生成关卡中的实体
func (lm *LevelManager) build(cfg *config.LevelConfig) error {
	w := lm.world
	for _, s := range cfg.Enemies {
		kind, ok := types.ParseEnemyKind(s.Kind)
		if !ok {
			return fmt.Errorf("unknown enemy kind %q", s.Kind)
		}
		if _, err := w.SpawnEnemy(kind, s.Vec()); err != nil {
			return err
		}
	}
	for _, it := range cfg.Items {
		if _, err := w.SpawnPickup(components.NewItem(it.ItemType(), it.Amount), it.Vec()); err != nil {
			return err
		}
	}
	for _, d := range cfg.Doors {
		if _, err := w.SpawnDoor(d.Vec(), d.NextLevel, d.RequiredItem()); err != nil {
			return err
		}
	}
	for _, s := range cfg.Switches {
		if _, err := w.SpawnSwitch(s.Vec(), s.Solid, s.ChangeCollision); err != nil {
			return err
		}
	}
	for _, e := range cfg.Exits {
		if _, err := w.SpawnExit(e.Vec(), e.NextLevel, e.Delay); err != nil {
			return err
		}
	}
	return nil
}

// enterLevel 玩家进入关卡
//
// 已经拥有的装备不会在地图上再次出现。
func (lm *LevelManager) enterLevel(cfg *config.LevelConfig) {
	w := lm.world
	player := w.Player
	player.EnterLevel(cfg.ID, cfg.PlayerSpawn.Vec())
	lm.current = cfg.ID
	lm.state = StatePlaying

	for _, id := range ecs.GetEntitiesWith1[*components.InteractableComponent](w.EM) {
		ic, _ := ecs.GetComponent[*components.InteractableComponent](w.EM, id)
		if ic.Kind != components.InteractItem || !ic.Item.IsEquipment() {
			continue
		}
		if !player.Inventory.ContainsType(ic.Item.Type) {
			continue
		}
		if e, ok := entities.Get(w.EM, id); ok {
			e.Dispose()
		}
	}
	w.EM.RemoveMarkedEntities()

	w.Dispatcher.Dispatch(event.Event{Type: event.LevelEntered, Data: cfg.ID})

	if lm.checkpoints != nil {
		if err := lm.checkpoints.Save(CheckpointFromPlayer(player)); err != nil {
			logger.For("LevelManager").WithError(err).Warn("failed to save checkpoint")
		}
	}
}

// gameOver 玩家死亡
func (lm *LevelManager) gameOver() {
	if lm.state == StateGameOver {
		return
	}
	lm.state = StateGameOver
	lm.world.Player.Movement.CanMove = false
	// 出口等尚未执行的延迟换关随之作废
	lm.world.Scheduler.Clear()
	lm.world.Dispatcher.Dispatch(event.Event{Type: event.GameOver, Data: lm.current})
	logger.For("LevelManager").WithField("level", lm.current).Info("player died, game over")
}
