package game

import (
	"fmt"

	"github.com/gonewx/last12h/pkg/components"
	"github.com/gonewx/last12h/pkg/entities"
	"github.com/gonewx/last12h/pkg/logger"
	"github.com/gonewx/last12h/pkg/types"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 存储路径常量
const (
	checkpointObject   = "checkpoint"
	checkpointProperty = "last"
)

// CheckpointItem 存档中的一种物品
type CheckpointItem struct {
	Type   string `yaml:"type"`
	Amount int    `yaml:"amount"`
}

// Checkpoint 进入关卡时记录的存档
type Checkpoint struct {
	Level  int              `yaml:"level"`
	Health int              `yaml:"health"`
	Items  []CheckpointItem `yaml:"items"`
}

// CheckpointFromPlayer 根据玩家当前状态生成存档
func CheckpointFromPlayer(p *entities.Player) *Checkpoint {
	cp := &Checkpoint{
		Level:  p.Level(),
		Health: p.Health.Health(),
	}
	for _, item := range p.Inventory.Items() {
		cp.Items = append(cp.Items, CheckpointItem{Type: item.Type.String(), Amount: item.Amount})
	}
	return cp
}

// Restore 把存档中的生命值和物品恢复到玩家身上
// 无法识别的物品类型会被跳过
func (cp *Checkpoint) Restore(p *entities.Player) {
	p.Inventory.Clear()
	for _, item := range cp.Items {
		t, err := types.ParseItemType(item.Type)
		if err != nil || t == types.ItemUndefined {
			logger.For("CheckpointStore").WithField("type", item.Type).Warn("skipping unknown item in checkpoint")
			continue
		}
		p.Inventory.Add(components.NewItem(t, item.Amount))
	}
	p.Health.SetHealth(cp.Health)
	p.Tag.Level = cp.Level
}

// CheckpointStore 存档管理器
//
// 存档以 YAML 格式保存在 gdata 中。gdataManager 为 nil 时进入降级模式：
// 存档只保存在内存中，不报错。
type CheckpointStore struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	memory       *Checkpoint
}

// NewCheckpointStore 创建存档管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存存档）
func NewCheckpointStore(gdataManager *gdata.Manager) *CheckpointStore {
	return &CheckpointStore{gdataManager: gdataManager}
}

// Persistent 存档是否会写入磁盘
func (cs *CheckpointStore) Persistent() bool {
	return cs.gdataManager != nil
}

// Save 保存存档
//
// 返回：
//   - error: 序列化或写入失败时返回错误
func (cs *CheckpointStore) Save(cp *Checkpoint) error {
	if cp == nil {
		return fmt.Errorf("checkpoint cannot be nil")
	}
	copied := *cp
	copied.Items = append([]CheckpointItem(nil), cp.Items...)
	cs.memory = &copied

	// 降级模式：无法持久化，但不报错
	if cs.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(cp)
	if err != nil {
		return fmt.Errorf("failed to marshal checkpoint: %w", err)
	}
	if err := cs.gdataManager.SaveObjectProp(checkpointObject, checkpointProperty, data); err != nil {
		return fmt.Errorf("failed to save checkpoint: %w", err)
	}

	logger.For("CheckpointStore").WithField("level", cp.Level).Debug("checkpoint saved")
	return nil
}

// Exists 是否有可用的存档
func (cs *CheckpointStore) Exists() bool {
	if cs.gdataManager == nil {
		return cs.memory != nil
	}
	return cs.gdataManager.ObjectPropExists(checkpointObject, checkpointProperty)
}

// Load 读取存档
//
// 返回：
//   - *Checkpoint: 存档，不存在时为 nil
//   - error: 读取或反序列化失败时返回错误
func (cs *CheckpointStore) Load() (*Checkpoint, error) {
	if cs.gdataManager == nil {
		if cs.memory == nil {
			return nil, nil
		}
		copied := *cs.memory
		copied.Items = append([]CheckpointItem(nil), cs.memory.Items...)
		return &copied, nil
	}

	if !cs.gdataManager.ObjectPropExists(checkpointObject, checkpointProperty) {
		return nil, nil
	}

	data, err := cs.gdataManager.LoadObjectProp(checkpointObject, checkpointProperty)
	if err != nil {
		return nil, fmt.Errorf("failed to load checkpoint: %w", err)
	}

	var cp Checkpoint
	if err := yaml.Unmarshal(data, &cp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal checkpoint: %w", err)
	}
	if cp.Level < 1 {
		return nil, fmt.Errorf("invalid checkpoint level %d", cp.Level)
	}
	return &cp, nil
}
