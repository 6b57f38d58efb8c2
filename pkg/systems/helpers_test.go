package systems

import (
	"testing"

	"github.com/decker502/tanksurvive/pkg/components"
	"github.com/decker502/tanksurvive/pkg/config"
	"github.com/decker502/tanksurvive/pkg/ecs"
	"github.com/decker502/tanksurvive/pkg/entities"
	"github.com/decker502/tanksurvive/pkg/game"
)

// mockSound 记录播放过的音效
type mockSound struct {
	played []string
}

func (m *mockSound) PlaySound(soundID string) bool {
	m.played = append(m.played, soundID)
	return true
}

func (m *mockSound) count(soundID string) int {
	n := 0
	for _, id := range m.played {
		if id == soundID {
			n++
		}
	}
	return n
}

// scriptedRandom 按脚本依次返回随机数；脚本用完后 Intn 返回 n-1，Float64 返回 0.99
type scriptedRandom struct {
	intns  []int
	floats []float64
}

func (r *scriptedRandom) Intn(n int) int {
	if len(r.intns) == 0 {
		return n - 1
	}
	v := r.intns[0]
	r.intns = r.intns[1:]
	return v
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

// testWorld 一个带玩家的最小世界
type testWorld struct {
	em  *ecs.EntityManager
	cfg *config.GameConfig
	rs  *game.RunState
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()
	rs := game.NewRunState(cfg.Rules, cfg.Enemy.BaseSpeed)

	playerID, err := entities.NewPlayer(em, cfg)
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}
	rs.PlayerID = playerID
	return &testWorld{em: em, cfg: cfg, rs: rs}
}

func (w *testWorld) spawnBoss(t *testing.T) ecs.EntityID {
	t.Helper()
	id, err := entities.NewBoss(w.em, w.cfg, 1, w.rs.ElapsedMs)
	if err != nil {
		t.Fatalf("NewBoss failed: %v", err)
	}
	w.rs.BossID = id
	return id
}

func (w *testWorld) spawnEnemy(t *testing.T, centerX float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewEnemy(w.em, w.cfg, components.EnemyHelicopter, centerX)
	if err != nil {
		t.Fatalf("NewEnemy failed: %v", err)
	}
	return id
}

func (w *testWorld) position(t *testing.T, id ecs.EntityID) *components.PositionComponent {
	t.Helper()
	pos, ok := ecs.GetComponent[*components.PositionComponent](w.em, id)
	if !ok {
		t.Fatalf("entity %d has no position", id)
	}
	return pos
}

func (w *testWorld) countBehavior(behavior components.BehaviorType) int {
	return len(entitiesWithBehavior(w.em, behavior))
}
