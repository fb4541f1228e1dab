package components

import "github.com/gonewx/last12h/pkg/utils"

// PositionComponent 实体在世界坐标系中的位置（世界单位，Y 轴向下）
type PositionComponent struct {
	X float64
	Y float64
}

// Vec 以向量形式返回位置
func (p *PositionComponent) Vec() utils.Vec2 {
	return utils.Vec2{X: p.X, Y: p.Y}
}

// Set 设置位置
func (p *PositionComponent) Set(v utils.Vec2) {
	p.X, p.Y = v.X, v.Y
}

// VelocityComponent 直线运动实体的速度（世界单位/秒）
// 实现 Body 接口，由 PhysicsSystem 积分到位置上
type VelocityComponent struct {
	VX float64
	VY float64
}

// SetVelocity 实现 Body 接口
func (v *VelocityComponent) SetVelocity(vel utils.Vec2) {
	v.VX, v.VY = vel.X, vel.Y
}

// Vec 以向量形式返回速度
func (v *VelocityComponent) Vec() utils.Vec2 {
	return utils.Vec2{X: v.VX, Y: v.VY}
}
