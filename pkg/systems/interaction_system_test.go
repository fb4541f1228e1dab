package systems

import (
	"errors"
	"testing"

	"github.com/gonewx/last12h/pkg/components"
	"github.com/gonewx/last12h/pkg/ecs"
	"github.com/gonewx/last12h/pkg/entities"
	"github.com/gonewx/last12h/pkg/event"
	"github.com/gonewx/last12h/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type interactionFixture struct {
	em        *ecs.EntityManager
	player    *entities.Player
	levels    *fakeLevels
	scheduler *fakeScheduler
	events    []event.Event
	system    *InteractionSystem
}

func newInteractionFixture(t *testing.T) *interactionFixture {
	t.Helper()
	f := &interactionFixture{
		em:        ecs.NewEntityManager(),
		levels:    &fakeLevels{},
		scheduler: &fakeScheduler{},
	}
	d := event.NewDispatcher()
	d.Subscribe(event.ItemPickedUp, event.ListenerFunc(func(e event.Event) { f.events = append(f.events, e) }))

	f.player = newTestPlayer(t, f.em, at(0, 0))
	f.system = NewInteractionSystem(f.em, f.levels, f.scheduler, d)
	f.system.SetPlayer(f.player)
	return f
}

func (f *interactionFixture) interactable(id ecs.EntityID) *components.InteractableComponent {
	ic, _ := ecs.GetComponent[*components.InteractableComponent](f.em, id)
	return ic
}

func TestInteractNothingNearby(t *testing.T) {
	f := newInteractionFixture(t)
	_, err := entities.NewItemPickup(f.em, components.NewItem(types.ItemKnife, 1), at(5, 0))
	require.NoError(t, err)

	assert.False(t, f.system.Interact())
}

func TestInteractHighlightsNearest(t *testing.T) {
	f := newInteractionFixture(t)
	far, _ := entities.NewItemPickup(f.em, components.NewItem(types.ItemKnife, 1), at(1.5, 0))
	near, _ := entities.NewItemPickup(f.em, components.NewItem(types.ItemAmmo, 1), at(0.5, 0))
	out, _ := entities.NewItemPickup(f.em, components.NewItem(types.ItemGun, 1), at(3, 0))

	f.system.Update(0.016)

	assert.True(t, f.interactable(near.ID).Highlighted)
	assert.False(t, f.interactable(far.ID).Highlighted)
	assert.False(t, f.interactable(out.ID).Highlighted)
}

func TestInteractPickup(t *testing.T) {
	f := newInteractionFixture(t)
	pickup, _ := entities.NewItemPickup(f.em, components.NewItem(types.ItemBandage, 2), at(1, 0))

	require.True(t, f.system.Interact())

	assert.Equal(t, 2, f.player.Inventory.Amount(types.ItemBandage))
	assert.True(t, pickup.Disposed())
	require.Len(t, f.events, 1)
	assert.Equal(t, components.NewItem(types.ItemBandage, 2), f.events[0].Data)

	assert.False(t, f.system.Interact(), "pickup is gone")
}

func TestInteractLockedDoor(t *testing.T) {
	f := newInteractionFixture(t)
	door, _ := entities.NewDoor(f.em, at(1, 0), 2, types.ItemFlashlight)

	assert.False(t, f.system.Interact())
	assert.Empty(t, f.levels.changes)
	assert.False(t, f.interactable(door.ID).IsInteracting)

	f.player.Inventory.Add(components.NewItem(types.ItemFlashlight, 1))
	assert.True(t, f.system.Interact())
	assert.Equal(t, []int{2}, f.levels.changes)
}

func TestInteractDoorChangeFails(t *testing.T) {
	f := newInteractionFixture(t)
	f.levels.err = errors.New("boom")
	_, _ = entities.NewDoor(f.em, at(1, 0), 9, types.ItemUndefined)

	assert.False(t, f.system.Interact())
}

func TestInteractSwitch(t *testing.T) {
	f := newInteractionFixture(t)
	sw, _ := entities.NewSwitch(f.em, at(1, 0), true, true)
	col, _ := ecs.GetComponent[*components.CollisionComponent](f.em, sw.ID)

	require.True(t, f.system.Interact())
	assert.True(t, f.interactable(sw.ID).IsInteracting)
	assert.False(t, col.Solid)

	require.True(t, f.system.Interact())
	assert.False(t, f.interactable(sw.ID).IsInteracting)
	assert.True(t, col.Solid)
}

func TestInteractSwitchWithoutCollisionChange(t *testing.T) {
	f := newInteractionFixture(t)
	sw, _ := entities.NewSwitch(f.em, at(1, 0), true, false)
	col, _ := ecs.GetComponent[*components.CollisionComponent](f.em, sw.ID)

	require.True(t, f.system.Interact())
	assert.True(t, col.Solid)
}

func TestInteractExitOnce(t *testing.T) {
	f := newInteractionFixture(t)
	_, _ = entities.NewExit(f.em, at(1, 0), 3, 1.5)

	require.True(t, f.system.Interact())
	assert.False(t, f.system.Interact(), "exit is one-shot")
	assert.False(t, f.player.Movement.CanMove)
	assert.Equal(t, []float64{1.5}, f.scheduler.delays)
	assert.Empty(t, f.levels.changes, "level changes after the delay")

	f.scheduler.runAll()
	assert.Equal(t, []int{3}, f.levels.changes)
}

func TestInteractExitCancelledByDeath(t *testing.T) {
	f := newInteractionFixture(t)
	_, _ = entities.NewExit(f.em, at(1, 0), 3, 1.5)

	require.True(t, f.system.Interact())
	f.player.ReceiveAttack(0, 10)
	require.False(t, f.player.IsAlive())

	f.scheduler.runAll()
	assert.Empty(t, f.levels.changes, "a dead player never leaves through the exit")
}

func TestInteractDeadPlayer(t *testing.T) {
	f := newInteractionFixture(t)
	_, _ = entities.NewItemPickup(f.em, components.NewItem(types.ItemKnife, 1), at(1, 0))
	f.player.ReceiveAttack(0, 10)

	assert.False(t, f.system.Interact())
}
