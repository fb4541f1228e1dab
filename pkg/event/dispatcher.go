package event

// EventType 事件类型
type EventType string

const (
	HealthChanged    EventType = "HealthChanged"    // 生命值被赋值（包括未变化的赋值）
	StartMoving      EventType = "StartMoving"      // 实体开始移动
	StopMoving       EventType = "StopMoving"       // 实体停止移动
	Attacked         EventType = "Attacked"         // 实体受到攻击
	Died             EventType = "Died"             // 实体死亡
	Attack           EventType = "Attack"           // 实体发动了攻击
	ItemAdded        EventType = "ItemAdded"        // 背包新增物品堆
	ItemRemoved      EventType = "ItemRemoved"      // 背包移除物品堆
	ItemUpdated      EventType = "ItemUpdated"      // 背包物品数量变化
	InventoryChanged EventType = "InventoryChanged" // 背包任意变化
	ItemPickedUp     EventType = "ItemPickedUp"     // 拾取地图上的物品
	LevelEntered     EventType = "LevelEntered"     // 玩家进入关卡
	GameOver         EventType = "GameOver"         // 玩家死亡，游戏结束
)

// Event 事件
type Event struct {
	Type     EventType
	SourceID uint64 // 产生事件的实体 ID，0 表示全局事件
	Data     interface{}
}

// Listener 事件监听者
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc 函数适配为 Listener
type ListenerFunc func(event Event)

// OnEvent 实现 Listener
func (f ListenerFunc) OnEvent(event Event) {
	f(event)
}

// Dispatcher 事件分发器
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher 创建事件分发器
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe 订阅指定类型的事件
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe 取消订阅
// ListenerFunc 不可比较，只能通过指针类型的 Listener 取消订阅
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if _, isFunc := listener.(ListenerFunc); isFunc {
		return
	}
	listeners, exists := d.listeners[eventType]
	if !exists {
		return
	}
	for i, l := range listeners {
		if l == listener {
			updated := make([]Listener, 0, len(listeners)-1)
			updated = append(updated, listeners[:i]...)
			updated = append(updated, listeners[i+1:]...)
			d.listeners[eventType] = updated
			return
		}
	}
}

// Dispatch 将事件同步分发给所有订阅者
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// ListenerCount 指定事件类型的订阅者数量
func (d *Dispatcher) ListenerCount(eventType EventType) int {
	return len(d.listeners[eventType])
}
