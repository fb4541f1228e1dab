package components

// TimerComponent 通用计时器组件
// 用于处理需要时间延迟的行为（如攻击冷却）
type TimerComponent struct {
	Name        string  // 计时器名称，如 "attack_cooldown"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	IsReady     bool    // 计时器是否已完成
}

// NewCooldown 创建一个初始即就绪的冷却计时器
func NewCooldown(name string, seconds float64) *TimerComponent {
	return &TimerComponent{
		Name:        name,
		TargetTime:  seconds,
		CurrentTime: seconds,
		IsReady:     true,
	}
}

// Tick 推进计时器
func (t *TimerComponent) Tick(dt float64) {
	if t.IsReady {
		return
	}
	t.CurrentTime += dt
	if t.CurrentTime >= t.TargetTime {
		t.IsReady = true
	}
}

// Reset 重新开始计时
func (t *TimerComponent) Reset() {
	t.CurrentTime = 0
	t.IsReady = t.TargetTime <= 0
}
