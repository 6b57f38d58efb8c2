package scenes

import (
	"testing"

	"github.com/decker502/tanksurvive/pkg/config"
	"github.com/decker502/tanksurvive/pkg/session"
	"github.com/decker502/tanksurvive/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// quietRandom 从不刷怪
type quietRandom struct{}

func (quietRandom) Intn(n int) int   { return n - 1 }
func (quietRandom) Float64() float64 { return 0.99 }

func newTestScene(t *testing.T) (*GameScene, *utils.Controls) {
	t.Helper()
	sess, err := session.New(config.DefaultGameConfig(), nil, quietRandom{})
	if err != nil {
		t.Fatalf("session.New failed: %v", err)
	}
	scene := NewGameScene(sess, nil, nil)
	controls := &utils.Controls{}
	scene.readControls = func() utils.Controls { return *controls }
	return scene, controls
}

func TestGameSceneUpdateUsesControls(t *testing.T) {
	scene, controls := newTestScene(t)
	cfg := scene.session.Config()

	controls.Fire = true
	scene.Update(cfg.FrameDelta())

	if got := scene.session.EntityManager().EntityCount(); got != 2 {
		t.Errorf("Expected player and one bullet, got %d entities", got)
	}
	if scene.session.State().ElapsedMs <= 0 {
		t.Error("session clock should advance")
	}
}

func TestGameSceneDraw(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *GameScene)
	}{
		{"进行中", func(s *GameScene) {}},
		{"Boss 战", func(s *GameScene) {
			s.session.State().Score = 50
			s.Update(s.session.Config().FrameDelta())
		}},
		{"失败", func(s *GameScene) {
			s.session.State().Lives = 0
			s.Update(s.session.Config().FrameDelta())
		}},
		{"胜利", func(s *GameScene) {
			s.session.State().Level = 4
			s.Update(s.session.Config().FrameDelta())
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, _ := newTestScene(t)
			tt.setup(scene)

			// Draw 应该不会崩溃（没有资源时使用占位绘制）
			screen := ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)
			scene.Draw(screen)
		})
	}
}

func TestGameSceneTextScale(t *testing.T) {
	scene, _ := newTestScene(t)
	if got := scene.textScale(config.OverlayTitleScale); got != config.OverlayTitleScale {
		t.Errorf("bitmap font: expected %v, got %v", config.OverlayTitleScale, got)
	}

	scene.ttfFont = true
	if got := scene.textScale(config.HUDTextScale); got != 1 {
		t.Errorf("TTF font: expected 1, got %v", got)
	}
}

func TestGameSceneTouchPlay(t *testing.T) {
	scene, _ := newTestScene(t)
	cfg := scene.session.Config()
	var touches []int
	scene.readControls = func() utils.Controls { return utils.TouchControls(touches, cfg.Screen.Width) }

	// 点击画面中间射击
	touches = []int{cfg.Screen.Width / 2}
	scene.Update(cfg.FrameDelta())
	if got := scene.session.EntityManager().EntityCount(); got != 2 {
		t.Fatalf("Expected player and one bullet after a tap, got %d entities", got)
	}

	// 生命耗尽后松开再点击重新开始
	touches = nil
	scene.session.State().Lives = 0
	scene.Update(cfg.FrameDelta())
	if !scene.session.State().IsOver() {
		t.Fatal("Expected the run to be over")
	}
	touches = []int{10}
	scene.Update(cfg.FrameDelta())
	if scene.session.State().IsOver() {
		t.Error("a tap on the result screen should restart")
	}
}
