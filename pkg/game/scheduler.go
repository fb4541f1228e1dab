package game

// Scheduler 延迟回调调度器
//
// 以游戏时间（每帧累加的 deltaTime）计时。待执行的回调保存在无序列表中，
// 每帧扫描一遍，到期的回调按发现顺序执行并移除；不保证按到期时间排序。
// 回调中新增的回调会追加到列表末尾，并在同一次扫描中被检查。
type Scheduler struct {
	now     float64
	pending []delayedCallback
}

type delayedCallback struct {
	at float64
	fn func()
}

// NewScheduler 创建调度器
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now 当前游戏时间（秒）
func (s *Scheduler) Now() float64 {
	return s.now
}

// DelayCallback 在 delay 秒后执行 fn
// delay 小于 0 按 0 处理；fn 为 nil 时忽略
func (s *Scheduler) DelayCallback(delay float64, fn func()) {
	if fn == nil {
		return
	}
	if delay < 0 {
		delay = 0
	}
	s.pending = append(s.pending, delayedCallback{at: s.now + delay, fn: fn})
}

// Pending 等待执行的回调数量
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Clear 丢弃所有等待执行的回调
func (s *Scheduler) Clear() {
	s.pending = nil
}

// Update 推进时间并执行到期的回调
func (s *Scheduler) Update(deltaTime float64) {
	s.now += deltaTime

	for i := 0; i < len(s.pending); {
		cb := s.pending[i]
		if cb.at > s.now {
			i++
			continue
		}
		s.pending = append(s.pending[:i], s.pending[i+1:]...)
		cb.fn()
	}
}
