package systems

import (
	"log"

	"github.com/decker502/tanksurvive/pkg/components"
	"github.com/decker502/tanksurvive/pkg/config"
	"github.com/decker502/tanksurvive/pkg/ecs"
	"github.com/decker502/tanksurvive/pkg/entities"
	"github.com/decker502/tanksurvive/pkg/game"
)

// EnemySpawnSystem 随机生成普通敌机
// 没有 Boss 时，每帧以 1/SpawnOdds 的概率生成一架随机外观的敌机
type EnemySpawnSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	runState      *game.RunState
	rng           RandomSource
}

// NewEnemySpawnSystem 创建敌机生成系统
func NewEnemySpawnSystem(em *ecs.EntityManager, cfg *config.GameConfig, rs *game.RunState, rng RandomSource) *EnemySpawnSystem {
	return &EnemySpawnSystem{
		entityManager: em,
		config:        cfg,
		runState:      rs,
		rng:           rng,
	}
}

// Update 尝试生成一架敌机
// 返回新敌机的ID，没有生成时返回 0
func (s *EnemySpawnSystem) Update() ecs.EntityID {
	if s.runState.HasBoss() {
		return 0
	}
	if s.rng.Intn(s.config.Enemy.SpawnOdds) != 0 {
		return 0
	}

	variant := components.EnemyVariant(s.rng.Intn(components.EnemyVariantCount))
	// 中心点X 在 [0, 画布宽 - 敌机宽] 内均匀取整
	maxCenter := s.config.Screen.Width - int(s.config.Enemy.Width)
	centerX := float64(s.rng.Intn(maxCenter + 1))

	id, err := entities.NewEnemy(s.entityManager, s.config, variant, centerX)
	if err != nil {
		log.Printf("[EnemySpawnSystem] Failed to spawn enemy: %v", err)
		return 0
	}
	return id
}
