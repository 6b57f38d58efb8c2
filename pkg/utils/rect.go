// Package utils 提供游戏开发中常用的工具函数
package utils

// Rect 轴对齐矩形（左上角锚点）
//
// 坐标系统：
//   - 原点为画布左上角，X 向右，Y 向下
//   - (X, Y) 为矩形左上角
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Left 返回左边界
func (r Rect) Left() float64 { return r.X }

// Right 返回右边界
func (r Rect) Right() float64 { return r.X + r.Width }

// Top 返回上边界
func (r Rect) Top() float64 { return r.Y }

// Bottom 返回下边界
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// CenterX 返回水平中心
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY 返回垂直中心
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Intersects AABB 重叠检测
// 边缘恰好相接不算碰撞
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.Width &&
		o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height &&
		o.Y < r.Y+r.Height
}

// ClampX 将矩形水平方向限制在 [minX, maxX] 内，返回修正后的 X
func (r Rect) ClampX(minX, maxX float64) float64 {
	if r.X < minX {
		return minX
	}
	if r.X+r.Width > maxX {
		return maxX - r.Width
	}
	return r.X
}
