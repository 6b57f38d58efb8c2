package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// 键位映射：方向键为主，WASD/空格为备用
var (
	moveLeftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	moveRightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	fireKeys      = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeySpace}
	restartKeys   = []ebiten.Key{ebiten.KeyR}
)

// ReadControls 读取当前帧的键盘和触摸输入并合并
// 只在 Ebitengine 的 Update 中调用
//
// 参数:
//   - screenWidth: 逻辑画布宽度，用于划分触摸区域
func ReadControls(screenWidth int) Controls {
	return ReadKeyboardControls().Merge(ReadTouchControls(screenWidth))
}

// ReadKeyboardControls 读取当前帧的键盘状态
func ReadKeyboardControls() Controls {
	return Controls{
		MoveLeft:  anyKeyPressed(moveLeftKeys),
		MoveRight: anyKeyPressed(moveRightKeys),
		Fire:      anyKeyPressed(fireKeys),
		Restart:   anyKeyPressed(restartKeys),
	}
}

// ReadTouchControls 读取当前帧所有活动触点
// 触点坐标已是逻辑画布坐标（Layout 返回的尺寸）
func ReadTouchControls(screenWidth int) Controls {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) == 0 {
		return Controls{}
	}
	xs := make([]int, 0, len(touchIDs))
	for _, id := range touchIDs {
		x, _ := ebiten.TouchPosition(id)
		xs = append(xs, x)
	}
	return TouchControls(xs, screenWidth)
}

// TouchControls 按触点横坐标划分触摸区域
//
// 画面左三分之一按住左移，右三分之一按住右移，中间按下射击。
// 任意触点同时算作重开键，重开只在结算阶段生效。
func TouchControls(touchXs []int, screenWidth int) Controls {
	var c Controls
	if screenWidth <= 0 {
		return c
	}
	third := screenWidth / 3
	for _, x := range touchXs {
		switch {
		case x < third:
			c.MoveLeft = true
		case x >= screenWidth-third:
			c.MoveRight = true
		default:
			c.Fire = true
		}
		c.Restart = true
	}
	return c
}

// anyKeyPressed 检查按键列表中是否有任意一个处于按下状态
func anyKeyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
