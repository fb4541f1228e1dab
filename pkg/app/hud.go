package app

import (
	"fmt"

	"github.com/gonewx/last12h/pkg/components"
	"github.com/gonewx/last12h/pkg/event"
	"github.com/gonewx/last12h/pkg/types"
)

// 提示消息参数
const (
	maxMessages     = 5
	messageLifetime = 3.0 // 秒
)

type hudMessage struct {
	text string
	age  float64
}

// HUD 抬头显示
//
// 订阅事件分发器，把玩家相关的事件转成屏幕上的提示文字。
// 只保存文字和玩家状态快照，不依赖 ebiten，方便测试。
type HUD struct {
	playerID uint64
	health   int
	messages []hudMessage
}

// NewHUD 创建 HUD 并订阅事件
func NewHUD(d *event.Dispatcher, playerID uint64, health int) *HUD {
	h := &HUD{playerID: playerID, health: health}
	d.Subscribe(event.HealthChanged, h)
	d.Subscribe(event.Attacked, h)
	d.Subscribe(event.Died, h)
	d.Subscribe(event.ItemPickedUp, h)
	d.Subscribe(event.ItemRemoved, h)
	d.Subscribe(event.LevelEntered, h)
	d.Subscribe(event.GameOver, h)
	return h
}

// OnEvent 实现 event.Listener
func (h *HUD) OnEvent(e event.Event) {
	switch e.Type {
	case event.HealthChanged:
		if e.SourceID == h.playerID {
			h.health, _ = e.Data.(int)
		}
	case event.Attacked:
		if info, ok := e.Data.(components.AttackInfo); ok && e.SourceID == h.playerID {
			h.push(fmt.Sprintf("Ouch! -%d", info.Damage))
		}
	case event.Died:
		if kind, ok := e.Data.(types.EntityKind); ok && e.SourceID != h.playerID {
			h.push(fmt.Sprintf("The %s is dead", kind))
		}
	case event.ItemPickedUp:
		if item, ok := e.Data.(components.Item); ok {
			h.push(fmt.Sprintf("Picked up %s x%d", item.Type, item.Amount))
		}
	case event.ItemRemoved:
		if item, ok := e.Data.(components.Item); ok && item.Type == types.ItemAmmo {
			h.push("Out of ammo")
		}
	case event.LevelEntered:
		h.messages = nil
		h.push(fmt.Sprintf("Level %v", e.Data))
	case event.GameOver:
		h.push("You died. Press R to retry")
	}
}

// push 追加一条提示，超出上限时丢弃最旧的
func (h *HUD) push(text string) {
	h.messages = append(h.messages, hudMessage{text: text})
	if len(h.messages) > maxMessages {
		h.messages = h.messages[len(h.messages)-maxMessages:]
	}
}

// Update 让提示逐渐过期
func (h *HUD) Update(deltaTime float64) {
	kept := h.messages[:0]
	for _, m := range h.messages {
		m.age += deltaTime
		if m.age < messageLifetime {
			kept = append(kept, m)
		}
	}
	h.messages = kept
}

// Health 最近一次收到的玩家生命值
func (h *HUD) Health() int {
	return h.health
}

// Messages 当前显示的提示，从旧到新
func (h *HUD) Messages() []string {
	result := make([]string, len(h.messages))
	for i, m := range h.messages {
		result[i] = m.text
	}
	return result
}
