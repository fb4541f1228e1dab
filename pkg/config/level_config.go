package config

import (
	"fmt"

	"github.com/gonewx/last12h/pkg/embedded"
	"github.com/gonewx/last12h/pkg/types"
	"github.com/gonewx/last12h/pkg/utils"
	"gopkg.in/yaml.v3"
)

// LevelsPath 关卡配置文件路径
const LevelsPath = "data/levels.yaml"

// Point 世界坐标
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vec 转换为向量
func (p Point) Vec() utils.Vec2 {
	return utils.Vec2{X: p.X, Y: p.Y}
}

// SpawnConfig 敌人出生点
type SpawnConfig struct {
	Kind  string `yaml:"kind"` // rat / boss
	Point `yaml:",inline"`
}

// ItemSpawnConfig 地上的物品
type ItemSpawnConfig struct {
	Type   string `yaml:"type"`
	Amount int    `yaml:"amount"`
	Point  `yaml:",inline"`
}

// ItemType 物品类型（已通过校验，解析不会失败）
func (c ItemSpawnConfig) ItemType() types.ItemType {
	t, _ := types.ParseItemType(c.Type)
	return t
}

// DoorConfig 通往其他关卡的门
type DoorConfig struct {
	NextLevel int    `yaml:"nextLevel"`
	Requires  string `yaml:"requires"` // 需要的物品，留空表示无需物品
	Point     `yaml:",inline"`
}

// RequiredItem 需要的物品类型
func (c DoorConfig) RequiredItem() types.ItemType {
	t, _ := types.ParseItemType(c.Requires)
	return t
}

// SwitchConfig 开关
type SwitchConfig struct {
	Solid           bool `yaml:"solid"`           // 初始是否阻挡
	ChangeCollision bool `yaml:"changeCollision"` // 切换时是否同时切换阻挡
	Point           `yaml:",inline"`
}

// ExitConfig 关卡出口（一次性）
type ExitConfig struct {
	NextLevel int     `yaml:"nextLevel"`
	Delay     float64 `yaml:"delay"` // 触发后延迟多少秒进入下一关
	Point     `yaml:",inline"`
}

// LevelConfig 单个关卡的布局
type LevelConfig struct {
	ID          int               `yaml:"id"`
	Name        string            `yaml:"name"`
	PlayerSpawn Point             `yaml:"playerSpawn"`
	Enemies     []SpawnConfig     `yaml:"enemies"`
	Items       []ItemSpawnConfig `yaml:"items"`
	Doors       []DoorConfig      `yaml:"doors"`
	Switches    []SwitchConfig    `yaml:"switches"`
	Exits       []ExitConfig      `yaml:"exits"`
}

// LevelsConfig 关卡配置文件结构
type LevelsConfig struct {
	Levels []LevelConfig `yaml:"levels"`
}

// LoadLevels 从 YAML 文件加载所有关卡
// 参数：
//
//	filepath - 配置文件路径（必须以 data/ 开头）
//
// 返回：
//
//	*LevelsConfig - 解析后的配置对象
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadLevels(filepath string) (*LevelsConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read levels file %s: %w", filepath, err)
	}
	return ParseLevels(data, filepath)
}

// ParseLevels 解析并校验关卡配置
func ParseLevels(data []byte, source string) (*LevelsConfig, error) {
	var config LevelsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse levels YAML from %s: %w", source, err)
	}

	if err := validateLevels(&config); err != nil {
		return nil, fmt.Errorf("invalid levels in %s: %w", source, err)
	}

	return &config, nil
}

// validateLevels 验证关卡配置
func validateLevels(config *LevelsConfig) error {
	if len(config.Levels) == 0 {
		return fmt.Errorf("at least one level is required")
	}

	ids := make(map[int]bool, len(config.Levels))
	for _, level := range config.Levels {
		if level.ID < 1 {
			return fmt.Errorf("level id must be at least 1, got %d", level.ID)
		}
		if ids[level.ID] {
			return fmt.Errorf("duplicate level id %d", level.ID)
		}
		ids[level.ID] = true
	}

	for _, level := range config.Levels {
		for i, enemy := range level.Enemies {
			if _, ok := types.ParseEnemyKind(enemy.Kind); !ok {
				return fmt.Errorf("level %d enemy %d: unknown kind %q", level.ID, i, enemy.Kind)
			}
		}

		for i, item := range level.Items {
			t, err := types.ParseItemType(item.Type)
			if err != nil {
				return fmt.Errorf("level %d item %d: %w", level.ID, i, err)
			}
			if t == types.ItemUndefined {
				return fmt.Errorf("level %d item %d: type is required", level.ID, i)
			}
			if item.Amount < 0 {
				return fmt.Errorf("level %d item %d: amount cannot be negative, got %d", level.ID, i, item.Amount)
			}
		}

		for i, door := range level.Doors {
			if !ids[door.NextLevel] {
				return fmt.Errorf("level %d door %d: next level %d does not exist", level.ID, i, door.NextLevel)
			}
			if _, err := types.ParseItemType(door.Requires); err != nil {
				return fmt.Errorf("level %d door %d: %w", level.ID, i, err)
			}
		}

		for i, exit := range level.Exits {
			if !ids[exit.NextLevel] {
				return fmt.Errorf("level %d exit %d: next level %d does not exist", level.ID, i, exit.NextLevel)
			}
			if exit.Delay < 0 {
				return fmt.Errorf("level %d exit %d: delay cannot be negative, got %.2f", level.ID, i, exit.Delay)
			}
		}
	}

	return nil
}

// GetLevel 按 ID 查找关卡
// 如果关卡不存在，返回 nil 和 false
func (c *LevelsConfig) GetLevel(id int) (*LevelConfig, bool) {
	for i := range c.Levels {
		if c.Levels[i].ID == id {
			return &c.Levels[i], true
		}
	}
	return nil, false
}
