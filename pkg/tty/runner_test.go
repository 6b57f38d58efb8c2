package tty

import (
	"context"
	"testing"
	"time"

	"github.com/decker502/tanksurvive/pkg/components"
	"github.com/decker502/tanksurvive/pkg/ecs"
	"github.com/gdamore/tcell/v2"
)

func TestRunnerHandleEvent(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRunner(screen, newTestSession(t))

	tests := []struct {
		name     string
		ev       tcell.Event
		wantStay bool
	}{
		{"移动键", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), true},
		{"窗口大小变化", tcell.NewEventResize(100, 30), true},
		{"q 退出", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.HandleEvent(tt.ev); got != tt.wantStay {
				t.Errorf("HandleEvent = %v, want %v", got, tt.wantStay)
			}
		})
	}
}

func TestRunnerFrameMovesPlayer(t *testing.T) {
	screen := newTestScreen(t)
	sess := newTestSession(t)
	r := NewRunner(screen, sess)

	em := sess.EntityManager()
	playerID := sess.State().PlayerID
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, playerID)
	startX := pos.X

	r.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	r.Frame()

	if pos.X <= startX {
		t.Errorf("Expected player to move right, x %.1f -> %.1f", startX, pos.X)
	}
	if hud := rowText(screen, 0); hud == "" {
		t.Error("Frame should draw the HUD")
	}
}

func TestRunnerFireIsEdgeTriggered(t *testing.T) {
	screen := newTestScreen(t)
	sess := newTestSession(t)
	r := NewRunner(screen, sess)
	em := sess.EntityManager()

	// 按住空格：自动重复不断续期，只发射一颗子弹
	for frame := 0; frame < 10; frame++ {
		if frame%2 == 0 {
			r.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
		}
		r.Frame()
	}

	bullets := 0
	for _, id := range ecs.GetEntitiesWith1[*components.BehaviorComponent](em) {
		b, _ := ecs.GetComponent[*components.BehaviorComponent](em, id)
		if b.Type == components.BehaviorPlayerBullet {
			bullets++
		}
	}
	if bullets != 1 {
		t.Errorf("Expected 1 player bullet while holding fire, got %d", bullets)
	}
}

func TestRunnerHeldFireAcrossRepeatDelay(t *testing.T) {
	screen := newTestScreen(t)
	sess := newTestSession(t)
	r := NewRunner(screen, sess)
	em := sess.EntityManager()

	// 第 0 帧按下，约 500ms 后开始每两帧自动重复
	for frame := 0; frame < 60; frame++ {
		if frame == 0 || (frame >= 30 && frame%2 == 0) {
			r.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
		}
		r.Frame()
	}

	bullets := 0
	for _, id := range ecs.GetEntitiesWith1[*components.BehaviorComponent](em) {
		b, _ := ecs.GetComponent[*components.BehaviorComponent](em, id)
		if b.Type == components.BehaviorPlayerBullet {
			bullets++
		}
	}
	if bullets != 1 {
		t.Errorf("Expected 1 player bullet across the repeat delay, got %d", bullets)
	}
}

func TestRunnerRunStopsOnCancel(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRunner(screen, newTestSession(t))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after context cancel")
	}
}
