package systems

import (
	"testing"

	"github.com/decker502/tanksurvive/pkg/components"
	"github.com/decker502/tanksurvive/pkg/config"
	"github.com/decker502/tanksurvive/pkg/utils"
)

func TestInputSystemMovement(t *testing.T) {
	tests := []struct {
		name     string
		startX   float64
		controls utils.Controls
		frames   int
		expected float64
	}{
		{"向左移动", 368, utils.Controls{MoveLeft: true}, 1, 363},
		{"向右移动", 368, utils.Controls{MoveRight: true}, 2, 378},
		{"同时按下左右抵消", 368, utils.Controls{MoveLeft: true, MoveRight: true}, 3, 368},
		{"左边界夹紧", 2, utils.Controls{MoveLeft: true}, 1, 0},
		{"右边界夹紧", 734, utils.Controls{MoveRight: true}, 1, 736},
		{"无输入不动", 100, utils.Controls{}, 5, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			system := NewInputSystem(w.em, w.cfg, w.rs, nil)
			pos := w.position(t, w.rs.PlayerID)
			pos.X = tt.startX

			for i := 0; i < tt.frames; i++ {
				system.Update(tt.controls)
			}

			if pos.X != tt.expected {
				t.Errorf("Expected X=%v, got %v", tt.expected, pos.X)
			}
		})
	}
}

func TestInputSystemFireIsEdgeTriggered(t *testing.T) {
	w := newTestWorld(t)
	sound := &mockSound{}
	system := NewInputSystem(w.em, w.cfg, w.rs, sound)

	// 按住三帧只发射一颗
	for i := 0; i < 3; i++ {
		system.Update(utils.Controls{Fire: true})
	}
	if got := w.countBehavior(components.BehaviorPlayerBullet); got != 1 {
		t.Fatalf("Expected 1 bullet while fire held, got %d", got)
	}

	// 松开再按下，发射第二颗
	system.Update(utils.Controls{})
	system.Update(utils.Controls{Fire: true})
	if got := w.countBehavior(components.BehaviorPlayerBullet); got != 2 {
		t.Fatalf("Expected 2 bullets after re-press, got %d", got)
	}
	if got := sound.count(config.SoundPlayerBullet); got != 2 {
		t.Errorf("Expected 2 fire sounds, got %d", got)
	}
}

func TestInputSystemBulletSpawnPoint(t *testing.T) {
	w := newTestWorld(t)
	system := NewInputSystem(w.em, w.cfg, w.rs, nil)

	system.Update(utils.Controls{Fire: true})

	bullets := entitiesWithBehavior(w.em, components.BehaviorPlayerBullet)
	if len(bullets) != 1 {
		t.Fatalf("Expected 1 bullet, got %d", len(bullets))
	}
	rect, _ := entityRect(w.em, bullets[0])
	player, _ := entityRect(w.em, w.rs.PlayerID)

	if rect.CenterX() != player.CenterX() {
		t.Errorf("Bullet centerX=%v, expected player centerX=%v", rect.CenterX(), player.CenterX())
	}
	if rect.Top() != player.Top() {
		t.Errorf("Bullet top=%v, expected player top=%v", rect.Top(), player.Top())
	}
}

func TestInputSystemWithoutPlayer(t *testing.T) {
	w := newTestWorld(t)
	w.rs.PlayerID = 0
	system := NewInputSystem(w.em, w.cfg, w.rs, nil)

	// 没有玩家时不应崩溃，也不发射
	system.Update(utils.Controls{Fire: true, MoveLeft: true})
	if got := w.countBehavior(components.BehaviorPlayerBullet); got != 0 {
		t.Errorf("Expected no bullets, got %d", got)
	}
}
