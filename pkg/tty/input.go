package tty

import (
	"github.com/decker502/tanksurvive/pkg/utils"
	"github.com/gdamore/tcell/v2"
)

// 终端只报告按下和自动重复，不报告松开。
// 自动重复的首次延迟一般为 250-600ms，之后的间隔为 30-100ms。
const (
	// DefaultHoldFrames 移动键在事件之后视为"仍按住"的帧数
	// 首次重复延迟内移动可能短暂停顿，但松开后坦克很快停下
	DefaultHoldFrames = 8
	// DefaultLatchFrames 射击/重开键在事件之后视为"仍按住"的帧数
	// 须大于首次重复延迟（40 帧约 667ms）
	DefaultLatchFrames = 40
)

type action int

const (
	actionLeft action = iota
	actionRight
	actionFire
	actionRestart
	actionCount
)

// Input 把终端按键事件转换成逐帧的 utils.Controls
//
// 每个按键事件让对应动作保持按下一段时间：移动键 holdFrames 帧，射击和重开键 latchFrames 帧。
// 自动重复的事件会不断续期，所以按住空格只算一次按下，射击仍是边沿触发。
// 两次按键间隔不足 latchFrames 帧时只算一次按下。
type Input struct {
	holdFrames  int
	latchFrames int
	frame       int
	// lastSeen[a] 为动作 a 最近一次事件所在的帧，-1 表示从未出现
	lastSeen [actionCount]int
}

// NewInput 创建终端输入
//
// 参数:
//   - holdFrames: 移动键保持帧数，<= 0 时使用 DefaultHoldFrames
//   - latchFrames: 射击/重开键保持帧数，<= 0 时使用 DefaultLatchFrames
func NewInput(holdFrames, latchFrames int) *Input {
	if holdFrames <= 0 {
		holdFrames = DefaultHoldFrames
	}
	if latchFrames <= 0 {
		latchFrames = DefaultLatchFrames
	}
	in := &Input{holdFrames: holdFrames, latchFrames: latchFrames}
	for i := range in.lastSeen {
		in.lastSeen[i] = -1
	}
	return in
}

// HandleKey 处理一个按键事件
// 返回 true 表示请求退出
func (in *Input) HandleKey(ev *tcell.EventKey) bool {
	return in.Press(ev.Key(), ev.Rune(), ev.Modifiers())
}

// Press 处理一次按键
// 返回 true 表示请求退出（Esc、Ctrl+C、q）
func (in *Input) Press(key tcell.Key, ch rune, mod tcell.ModMask) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		in.mark(actionLeft)
	case tcell.KeyRight:
		in.mark(actionRight)
	case tcell.KeyUp:
		in.mark(actionFire)
	case tcell.KeyRune:
		switch ch {
		case 'q', 'Q':
			return true
		case 'a', 'A':
			in.mark(actionLeft)
		case 'd', 'D':
			in.mark(actionRight)
		case ' ':
			in.mark(actionFire)
		case 'r', 'R':
			in.mark(actionRestart)
		}
	}
	return false
}

func (in *Input) mark(a action) {
	in.lastSeen[a] = in.frame
}

func (in *Input) held(a action) bool {
	window := in.holdFrames
	if a == actionFire || a == actionRestart {
		window = in.latchFrames
	}
	last := in.lastSeen[a]
	return last >= 0 && in.frame-last < window
}

// Controls 返回当前帧的输入状态
func (in *Input) Controls() utils.Controls {
	return utils.Controls{
		MoveLeft:  in.held(actionLeft),
		MoveRight: in.held(actionRight),
		Fire:      in.held(actionFire),
		Restart:   in.held(actionRestart),
	}
}

// Tick 进入下一帧
func (in *Input) Tick() {
	in.frame++
}
