package components

import "github.com/gonewx/last12h/pkg/utils"

// CollisionComponent 定义实体的碰撞检测边界框
// 碰撞盒以实体位置为中心，用于子弹命中检测和阻挡移动
type CollisionComponent struct {
	Width   float64 // 碰撞盒宽度（世界单位）
	Height  float64 // 碰撞盒高度（世界单位）
	OffsetX float64 // 碰撞盒中心相对于实体位置的X偏移量，正值向右偏移
	OffsetY float64 // 碰撞盒中心相对于实体位置的Y偏移量，正值向下偏移
	Solid   bool    // 是否阻挡其他实体移动（false 时只作为触发器）
}

// Bounds 返回以 pos 为实体位置时的碰撞盒（左上角、右下角）
func (c *CollisionComponent) Bounds(pos utils.Vec2) (minX, minY, maxX, maxY float64) {
	cx := pos.X + c.OffsetX
	cy := pos.Y + c.OffsetY
	return cx - c.Width/2, cy - c.Height/2, cx + c.Width/2, cy + c.Height/2
}

// Overlaps 两个碰撞盒是否重叠（AABB）
func Overlaps(a *CollisionComponent, posA utils.Vec2, b *CollisionComponent, posB utils.Vec2) bool {
	aMinX, aMinY, aMaxX, aMaxY := a.Bounds(posA)
	bMinX, bMinY, bMaxX, bMaxY := b.Bounds(posB)
	return aMinX < bMaxX && aMaxX > bMinX && aMinY < bMaxY && aMaxY > bMinY
}
