package tty

import (
	"context"
	"log"
	"time"

	"github.com/decker502/tanksurvive/pkg/session"
	"github.com/gdamore/tcell/v2"
)

// Runner 终端帧循环
//
// 一个 goroutine 读取 tcell 事件写入带缓冲的通道，
// 主循环在同一个 select 中处理事件和固定间隔的帧 tick，所有游戏状态只在主循环中修改。
type Runner struct {
	screen   tcell.Screen
	session  *session.Session
	input    *Input
	renderer *Renderer

	frameDelta   float64
	tickInterval time.Duration
}

// NewRunner 创建终端帧循环
//
// 参数:
//   - screen: 已初始化的 tcell 屏幕
//   - sess: 游戏会话
func NewRunner(screen tcell.Screen, sess *session.Session) *Runner {
	frameDelta := sess.Config().FrameDelta()
	return &Runner{
		screen:       screen,
		session:      sess,
		input:        NewInput(DefaultHoldFrames, DefaultLatchFrames),
		renderer:     NewRenderer(screen),
		frameDelta:   frameDelta,
		tickInterval: time.Duration(frameDelta * float64(time.Second)),
	}
}

// HandleEvent 处理一个终端事件
// 返回 false 表示退出
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if r.input.HandleKey(ev) {
			log.Printf("[Runner] Quit requested")
			return false
		}
	case *tcell.EventResize:
		r.screen.Sync()
	}
	return true
}

// Frame 推进并绘制一帧
func (r *Runner) Frame() {
	r.session.Update(r.input.Controls(), r.frameDelta)
	r.input.Tick()
	r.renderer.Draw(r.session)
}

// Run 运行帧循环，直到退出键、ctx 取消或屏幕关闭
func (r *Runner) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(r.tickInterval)
	defer ticker.Stop()

	r.renderer.Draw(r.session)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !r.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			r.Frame()
		}
	}
}
