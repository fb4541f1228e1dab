package components

// AimComponent Boss 手臂的瞄准状态，由 AimSystem 每帧更新，表现层只读
type AimComponent struct {
	HandVisible bool    // 目标在攻击距离内时显示手臂
	Angle       float64 // 瞄准角度（度，atan2）
}
