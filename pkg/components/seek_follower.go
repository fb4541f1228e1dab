package components

import "github.com/gonewx/last12h/pkg/utils"

// SeekFollower 直线追踪的寻路后端，实现 PathFollower
//
// 不做障碍规避，每帧直接朝目标方向以最大速度移动，
// 距离目标小于 StopDistance 时停下。位置积分由 PhysicsSystem 完成。
type SeekFollower struct {
	StopDistance float64

	pos      *PositionComponent
	target   TargetHandle
	maxSpeed float64
	canMove  bool
}

// NewSeekFollower 创建追踪后端
func NewSeekFollower(pos *PositionComponent, stopDistance float64) *SeekFollower {
	return &SeekFollower{
		StopDistance: stopDistance,
		pos:          pos,
	}
}

// SetCanMove 实现 PathFollower
func (f *SeekFollower) SetCanMove(canMove bool) {
	f.canMove = canMove
}

// CanMove 当前是否在追踪
func (f *SeekFollower) CanMove() bool {
	return f.canMove
}

// SetMaxSpeed 实现 PathFollower
func (f *SeekFollower) SetMaxSpeed(speed float64) {
	f.maxSpeed = speed
}

// SetTarget 实现 PathFollower
func (f *SeekFollower) SetTarget(target TargetHandle) {
	f.target = target
}

// Velocity 实现 PathFollower，返回当前期望速度
func (f *SeekFollower) Velocity() utils.Vec2 {
	if !f.canMove || f.pos == nil || !targetAlive(f.target) {
		return utils.Zero
	}
	delta := f.target.Position().Sub(f.pos.Vec())
	if delta.Len() <= f.StopDistance {
		return utils.Zero
	}
	return delta.Normalize().Scale(f.maxSpeed)
}
