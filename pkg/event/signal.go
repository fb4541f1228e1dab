// Package event 提供实体模型与表现层之间的通知机制
//
// 两层结构：
//   - Signal[T]：单一事件类型的订阅者列表，由模型（生命值、移动、背包）直接持有
//   - Dispatcher：按 EventType 分发的总线，表现层（HUD、音效、动画）只订阅这一处
//
// 所有通知都是同步的：Emit/Dispatch 返回前，所有订阅者已按订阅顺序执行完毕。
// 整个游戏只在 ebiten 的 Update 线程中运行，因此不需要加锁。
package event

// SubscriptionID 订阅标识，用于取消订阅
type SubscriptionID uint64

type subscription[T any] struct {
	id      SubscriptionID
	handler func(T)
}

// Signal 单一事件类型的订阅者列表
// 零值可直接使用
type Signal[T any] struct {
	nextID   SubscriptionID
	handlers []subscription[T]
}

// Subscribe 订阅事件，返回订阅 ID
// handler 为 nil 时忽略并返回 0
func (s *Signal[T]) Subscribe(handler func(T)) SubscriptionID {
	if handler == nil {
		return 0
	}
	s.nextID++
	s.handlers = append(s.handlers, subscription[T]{id: s.nextID, handler: handler})
	return s.nextID
}

// Unsubscribe 取消订阅
// 返回是否找到并移除了该订阅
func (s *Signal[T]) Unsubscribe(id SubscriptionID) bool {
	for i, sub := range s.handlers {
		if sub.id == id {
			// 复制新切片，避免 Emit 遍历中途被修改
			handlers := make([]subscription[T], 0, len(s.handlers)-1)
			handlers = append(handlers, s.handlers[:i]...)
			handlers = append(handlers, s.handlers[i+1:]...)
			s.handlers = handlers
			return true
		}
	}
	return false
}

// Emit 按订阅顺序同步通知所有订阅者
// 在 Emit 期间新增的订阅者不会收到本次事件
func (s *Signal[T]) Emit(value T) {
	handlers := s.handlers
	for _, sub := range handlers {
		sub.handler(value)
	}
}

// Len 当前订阅者数量
func (s *Signal[T]) Len() int {
	return len(s.handlers)
}

// Clear 移除所有订阅者
func (s *Signal[T]) Clear() {
	s.handlers = nil
}

// Notify 无参数事件的订阅者列表（OnDeath、OnStartMoving 等）
type Notify = Signal[struct{}]

// Fire 触发无参数事件
func Fire(n *Notify) {
	n.Emit(struct{}{})
}
