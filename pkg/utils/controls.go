package utils

// Controls 一帧内的逻辑输入状态
//
// 每个字段表示"本帧该键是否处于按下状态"（电平语义）。
// 射击的边沿触发由 InputSystem 根据前后两帧的 Fire 状态判断，
// 不同宿主（Ebitengine 键盘、终端按键）只需如实报告按键是否按下。
type Controls struct {
	MoveLeft  bool // 向左移动
	MoveRight bool // 向右移动
	Fire      bool // 射击
	Restart   bool // 游戏结束后重新开始
}

// Merge 合并两个输入源：任一来源按下即视为按下
func (c Controls) Merge(o Controls) Controls {
	return Controls{
		MoveLeft:  c.MoveLeft || o.MoveLeft,
		MoveRight: c.MoveRight || o.MoveRight,
		Fire:      c.Fire || o.Fire,
		Restart:   c.Restart || o.Restart,
	}
}
