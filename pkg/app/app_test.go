package app

import (
	"math"
	"os"
	"testing"

	"github.com/gonewx/last12h/pkg/components"
	"github.com/gonewx/last12h/pkg/config"
	"github.com/gonewx/last12h/pkg/event"
	"github.com/gonewx/last12h/pkg/game"
	"github.com/gonewx/last12h/pkg/logger"
	"github.com/gonewx/last12h/pkg/types"
	"github.com/gonewx/last12h/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Silence()
	os.Exit(m.Run())
}

func newTestGame(t *testing.T, opts Options) *Game {
	t.Helper()
	stats := &config.EntityStatsConfig{Entities: map[string]config.EntityStats{
		"player": {MaxHealth: 3, Attack: 1, Speed: 4, AttackRange: 1.5, AttackCooldown: 0.4, Width: 0.8, Height: 0.8},
	}}
	levels := &config.LevelsConfig{Levels: []config.LevelConfig{
		{
			ID:          1,
			PlayerSpawn: config.Point{X: 2, Y: 2},
			Items: []config.ItemSpawnConfig{
				{Type: "bandage", Amount: 1, Point: config.Point{X: 3, Y: 2}},
			},
		},
	}}
	g, err := NewGame(stats, levels, nil, opts)
	require.NoError(t, err)
	return g
}

func TestControlsIntent(t *testing.T) {
	tests := []struct {
		name     string
		controls Controls
		expected utils.Vec2
	}{
		{"无输入", Controls{}, utils.Zero},
		{"向右", Controls{Right: true}, utils.Vec2{X: 1}},
		{"向上", Controls{Up: true}, utils.Vec2{Y: -1}},
		{"左右抵消", Controls{Left: true, Right: true}, utils.Zero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.controls.Intent())
		})
	}

	diag := Controls{Down: true, Right: true}.Intent()
	assert.InDelta(t, 1.0, diag.Len(), 1e-9)
	assert.InDelta(t, math.Sqrt2/2, diag.X, 1e-9)
}

func TestGameMenuFlow(t *testing.T) {
	g := newTestGame(t, Options{})
	assert.Equal(t, game.StateMenu, g.levels.State())

	g.step(Controls{}, 0.1)
	assert.Equal(t, game.StateMenu, g.levels.State())

	g.step(Controls{Start: true}, 0.1)
	assert.Equal(t, game.StatePlaying, g.levels.State())
	assert.Equal(t, 1, g.levels.CurrentLevel())
}

func TestGameStartLevelOption(t *testing.T) {
	g := newTestGame(t, Options{StartLevel: 1})
	assert.Equal(t, game.StatePlaying, g.levels.State())

	stats := &config.EntityStatsConfig{Entities: map[string]config.EntityStats{
		"player": {MaxHealth: 3, Speed: 4, Width: 1, Height: 1},
	}}
	_, err := NewGame(stats, &config.LevelsConfig{Levels: []config.LevelConfig{{ID: 1}}}, nil, Options{StartLevel: 5})
	assert.Error(t, err)
}

func TestGamePlayerMovesAndInteracts(t *testing.T) {
	g := newTestGame(t, Options{StartLevel: 1})
	player := g.world.Player

	g.step(Controls{Interact: true}, 0.1)
	assert.Equal(t, 1, player.Inventory.Amount(types.ItemBandage))
	assert.Contains(t, g.hud.Messages(), "Picked up Bandage x1")

	start := player.Position()
	g.step(Controls{Down: true}, 0.25)
	assert.InDelta(t, start.Y+1.0, player.Position().Y, 1e-9)
	assert.InDelta(t, start.X, player.Position().X, 1e-9)
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(t, Options{StartLevel: 1})
	player := g.world.Player

	player.ReceiveAttack(0, 10)
	assert.Equal(t, game.StateGameOver, g.levels.State())
	assert.Contains(t, g.hud.Messages(), "You died. Press R to retry")

	g.step(Controls{Right: true}, 0.1)
	assert.Equal(t, game.StateGameOver, g.levels.State())

	g.step(Controls{Restart: true}, 0.1)
	assert.Equal(t, game.StatePlaying, g.levels.State())
	assert.Equal(t, 3, g.hud.Health())
}

func TestHUD(t *testing.T) {
	d := event.NewDispatcher()
	h := NewHUD(d, 1, 3)

	t.Run("玩家受伤", func(t *testing.T) {
		d.Dispatch(event.Event{Type: event.HealthChanged, SourceID: 1, Data: 2})
		d.Dispatch(event.Event{Type: event.Attacked, SourceID: 1, Data: components.AttackInfo{SourceID: 7, Damage: 1}})
		assert.Equal(t, 2, h.Health())
		assert.Equal(t, []string{"Ouch! -1"}, h.Messages())
	})

	t.Run("其他实体的生命值不影响显示", func(t *testing.T) {
		d.Dispatch(event.Event{Type: event.HealthChanged, SourceID: 7, Data: 0})
		d.Dispatch(event.Event{Type: event.Died, SourceID: 7, Data: types.EntityRat})
		assert.Equal(t, 2, h.Health())
		assert.Equal(t, "The rat is dead", h.Messages()[1])
	})

	t.Run("消息数量上限", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			d.Dispatch(event.Event{Type: event.ItemPickedUp, SourceID: 1, Data: components.NewItem(types.ItemAmmo, i+1)})
		}
		msgs := h.Messages()
		require.Len(t, msgs, maxMessages)
		assert.Equal(t, "Picked up Ammo x10", msgs[len(msgs)-1])
	})

	t.Run("消息过期", func(t *testing.T) {
		h.Update(messageLifetime / 2)
		assert.Len(t, h.Messages(), maxMessages)
		h.Update(messageLifetime)
		assert.Empty(t, h.Messages())
	})

	t.Run("进入关卡清空旧消息", func(t *testing.T) {
		d.Dispatch(event.Event{Type: event.GameOver})
		d.Dispatch(event.Event{Type: event.LevelEntered, Data: 2})
		assert.Equal(t, []string{"Level 2"}, h.Messages())
	})
}
