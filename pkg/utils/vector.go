package utils

import "math"

// Vec2 二维向量
// 同时用于位置（世界坐标）、速度和移动意图
type Vec2 struct {
	X float64
	Y float64
}

// Zero 零向量
var Zero = Vec2{}

// NewVec2 创建向量
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add 向量相加
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 向量相减
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale 向量数乘
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len 向量长度（magnitude）
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero 是否为零向量
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize 返回单位向量
// 零向量返回零向量（而不是 NaN）
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Zero
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// DistanceTo 两点之间的距离
func (v Vec2) DistanceTo(o Vec2) float64 {
	return o.Sub(v).Len()
}

// Angle 向量相对 X 轴正方向的角度（度）
// 范围 (-180, 180]，与 atan2 一致
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}
