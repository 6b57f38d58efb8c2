package tty

import (
	"strings"
	"testing"

	"github.com/decker502/tanksurvive/pkg/config"
	"github.com/decker502/tanksurvive/pkg/session"
	"github.com/decker502/tanksurvive/pkg/utils"
	"github.com/gdamore/tcell/v2"
)

// calmRandom 从不刷怪，Boss 初始向右
type calmRandom struct{}

func (calmRandom) Intn(n int) int   { return n - 1 }
func (calmRandom) Float64() float64 { return 0.99 }

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init failed: %v", err)
	}
	screen.SetSize(80, 25)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	sess, err := session.New(config.DefaultGameConfig(), nil, calmRandom{})
	if err != nil {
		t.Fatalf("session.New failed: %v", err)
	}
	return sess
}

func rowText(screen tcell.Screen, y int) string {
	cols, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < cols; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		if ch == 0 {
			ch = ' '
		}
		sb.WriteRune(ch)
	}
	return sb.String()
}

func TestRendererHUD(t *testing.T) {
	screen := newTestScreen(t)
	sess := newTestSession(t)
	sess.State().Score = 42

	NewRenderer(screen).Draw(sess)

	hud := rowText(screen, 0)
	for _, want := range []string{"Score: 42", "Lives: 3", "Level: 1"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
	if strings.ContainsRune(hud, bossBarFilled) {
		t.Error("Boss bar should be hidden without a boss")
	}
}

func TestRendererPlayerPlacement(t *testing.T) {
	screen := newTestScreen(t)
	sess := newTestSession(t)

	NewRenderer(screen).Draw(sess)

	// 玩家 (368,518) 64x64 在 80x24 战场上占 36..43 列、21..24 行
	ch, _, _, _ := screen.GetContent(40, 22)
	if ch != playerGlyph {
		t.Errorf("Expected player glyph at (40,22), got %q", ch)
	}
	ch, _, _, _ = screen.GetContent(10, 22)
	if ch == playerGlyph {
		t.Error("Player glyph drawn outside the tank")
	}
}

func TestRendererBossBar(t *testing.T) {
	screen := newTestScreen(t)
	sess := newTestSession(t)

	// 分数达到 50 的倍数，下一帧生成 Boss
	sess.State().Score = 50
	sess.Update(utils.Controls{}, sess.Config().FrameDelta())
	if _, ok := sess.BossHealthRatio(); !ok {
		t.Fatal("Expected a boss after reaching 50 points")
	}

	NewRenderer(screen).Draw(sess)

	hud := rowText(screen, 0)
	if got := strings.Count(hud, string(bossBarFilled)); got != bossBarCells {
		t.Errorf("Full-health boss bar has %d filled cells, want %d", got, bossBarCells)
	}
}

func TestRendererResultOverlay(t *testing.T) {
	tests := []struct {
		name  string
		setup func(sess *session.Session)
		title string
	}{
		{"生命耗尽", func(sess *session.Session) { sess.State().Lives = 0 }, "Game Over"},
		{"通关", func(sess *session.Session) { sess.State().Level = sess.Config().Rules.MaxLevel + 1 }, "You Win!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := newTestScreen(t)
			sess := newTestSession(t)
			tt.setup(sess)
			sess.Update(utils.Controls{}, sess.Config().FrameDelta())

			NewRenderer(screen).Draw(sess)

			_, rows := screen.Size()
			if got := rowText(screen, rows/2-1); !strings.Contains(got, tt.title) {
				t.Errorf("Title row %q missing %q", got, tt.title)
			}
			if got := rowText(screen, rows/2+1); !strings.Contains(got, "Press R to Play Again") {
				t.Errorf("Hint row %q missing restart hint", got)
			}
		})
	}
}

func TestRendererNoOverlayWhilePlaying(t *testing.T) {
	screen := newTestScreen(t)
	sess := newTestSession(t)

	NewRenderer(screen).Draw(sess)

	_, rows := screen.Size()
	if got := rowText(screen, rows/2+1); strings.Contains(got, "Press R") {
		t.Error("Restart hint shown while playing")
	}
}
