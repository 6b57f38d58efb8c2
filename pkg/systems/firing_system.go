package systems

import (
	"log"

	"github.com/decker502/tanksurvive/pkg/components"
	"github.com/decker502/tanksurvive/pkg/config"
	"github.com/decker502/tanksurvive/pkg/ecs"
	"github.com/decker502/tanksurvive/pkg/entities"
	"github.com/decker502/tanksurvive/pkg/game"
)

// FiringSystem 处理敌机和 Boss 的射击
//
//   - 敌机：顶边第一次到达 FireLineY 时射击一次
//   - Boss：距上次射击超过 FireIntervalMs（会话时钟）时射击
//
// 子弹从射手底边中心发出。
type FiringSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	runState      *game.RunState
	sound         SoundPlayer
}

// NewFiringSystem 创建射击系统
func NewFiringSystem(em *ecs.EntityManager, cfg *config.GameConfig, rs *game.RunState, sound SoundPlayer) *FiringSystem {
	return &FiringSystem{
		entityManager: em,
		config:        cfg,
		runState:      rs,
		sound:         sound,
	}
}

// Update 处理本帧射击
func (s *FiringSystem) Update() {
	s.updateEnemies()
	s.updateBoss()
}

func (s *FiringSystem) updateEnemies() {
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](s.entityManager) {
		if s.entityManager.IsMarked(id) {
			continue
		}
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		if enemy.HasFired {
			continue
		}
		rect, ok := entityRect(s.entityManager, id)
		if !ok || rect.Top() < s.config.Enemy.FireLineY {
			continue
		}

		if _, err := entities.NewEnemyBullet(s.entityManager, s.config, id, rect.CenterX(), rect.Bottom()); err != nil {
			log.Printf("[FiringSystem] Enemy %d failed to fire: %v", id, err)
			continue
		}
		enemy.HasFired = true
		playSound(s.sound, config.SoundEnemyBullet)
	}
}

func (s *FiringSystem) updateBoss() {
	bossID := s.runState.BossID
	if bossID == 0 || s.entityManager.IsMarked(bossID) {
		return
	}
	boss, ok := ecs.GetComponent[*components.BossComponent](s.entityManager, bossID)
	if !ok {
		return
	}
	now := s.runState.ElapsedMs
	if now-boss.LastShotMs <= s.config.Boss.FireIntervalMs {
		return
	}
	rect, ok := entityRect(s.entityManager, bossID)
	if !ok {
		return
	}

	if _, err := entities.NewEnemyBullet(s.entityManager, s.config, bossID, rect.CenterX(), rect.Bottom()); err != nil {
		log.Printf("[FiringSystem] Boss failed to fire: %v", err)
		return
	}
	boss.LastShotMs = now
	playSound(s.sound, config.SoundEnemyBullet)
}
