package config

import (
	"fmt"

	"github.com/gonewx/last12h/pkg/embedded"
	"github.com/gonewx/last12h/pkg/types"
	"gopkg.in/yaml.v3"
)

// EntityStatsPath 实体属性配置文件路径
const EntityStatsPath = "data/entity_stats.yaml"

// EntityStats 单种实体的属性配置
type EntityStats struct {
	MaxHealth      int     `yaml:"maxHealth"`      // 最大生命值
	Attack         int     `yaml:"attack"`         // 攻击力
	VisionDistance float64 `yaml:"visionDistance"` // 视野距离（世界单位）
	Speed          float64 `yaml:"speed"`          // 移动速度（世界单位/秒）
	AttackRange    float64 `yaml:"attackRange"`    // 攻击距离（世界单位）
	AttackCooldown float64 `yaml:"attackCooldown"` // 攻击冷却（秒）
	UsePathfinding bool    `yaml:"usePathfinding"` // 是否使用寻路移动
	Width          float64 `yaml:"width"`          // 碰撞盒宽度
	Height         float64 `yaml:"height"`         // 碰撞盒高度
}

// EntityStatsConfig 实体属性配置文件结构
type EntityStatsConfig struct {
	Entities map[string]EntityStats `yaml:"entities"` // 实体种类（player/rat/boss/bullet）到属性的映射
}

// LoadEntityStats 从 YAML 文件加载实体属性配置
// 参数：
//
//	filepath - 配置文件路径（必须以 data/ 开头）
//
// 返回：
//
//	*EntityStatsConfig - 解析后的配置对象
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadEntityStats(filepath string) (*EntityStatsConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read entity stats file %s: %w", filepath, err)
	}
	return ParseEntityStats(data, filepath)
}

// ParseEntityStats 解析并校验实体属性配置
func ParseEntityStats(data []byte, source string) (*EntityStatsConfig, error) {
	var config EntityStatsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse entity stats YAML from %s: %w", source, err)
	}

	if err := validateEntityStats(&config); err != nil {
		return nil, fmt.Errorf("invalid entity stats in %s: %w", source, err)
	}

	return &config, nil
}

// validateEntityStats 验证实体属性配置的完整性和合法性
func validateEntityStats(config *EntityStatsConfig) error {
	if _, ok := config.Entities[types.EntityPlayer.String()]; !ok {
		return fmt.Errorf("player stats are required")
	}

	for name, stats := range config.Entities {
		if stats.MaxHealth < 0 {
			return fmt.Errorf("entity %s: maxHealth cannot be negative, got %d", name, stats.MaxHealth)
		}
		if stats.Attack < 0 {
			return fmt.Errorf("entity %s: attack cannot be negative, got %d", name, stats.Attack)
		}
		if stats.Speed < 0 {
			return fmt.Errorf("entity %s: speed cannot be negative, got %.2f", name, stats.Speed)
		}
		if stats.VisionDistance < 0 || stats.AttackRange < 0 {
			return fmt.Errorf("entity %s: distances cannot be negative", name)
		}
		if stats.AttackCooldown < 0 {
			return fmt.Errorf("entity %s: attackCooldown cannot be negative, got %.2f", name, stats.AttackCooldown)
		}
		if stats.Width <= 0 || stats.Height <= 0 {
			return fmt.Errorf("entity %s: collision size must be positive, got %.2fx%.2f", name, stats.Width, stats.Height)
		}
	}

	return nil
}

// Get 获取指定实体种类的属性
// 如果种类不存在，返回 nil 和 false
func (c *EntityStatsConfig) Get(kind types.EntityKind) (*EntityStats, bool) {
	stats, ok := c.Entities[kind.String()]
	if !ok {
		return nil, false
	}
	return &stats, true
}
