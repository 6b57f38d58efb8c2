package systems

import (
	"log"

	"github.com/decker502/tanksurvive/pkg/components"
	"github.com/decker502/tanksurvive/pkg/config"
	"github.com/decker502/tanksurvive/pkg/ecs"
	"github.com/decker502/tanksurvive/pkg/entities"
	"github.com/decker502/tanksurvive/pkg/game"
)

// LevelSystem 关卡推进
//
// 普通 → Boss 战：分数为 MilestoneScore 的正整数倍时，关卡 +1、敌机速度 ×SpeedMultiplier、
// 分数 +1（避免同一分数重复触发），并召唤 Boss。已有 Boss 时只做前三项，不替换 Boss。
//
// Boss 战 → 普通：Boss 生命归零时移除 Boss（及其子弹），关卡 +1。
//
// 关卡超过 MaxLevel 后不再响应分数里程碑，由会话判定胜利。
type LevelSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	runState      *game.RunState
	rng           RandomSource
}

// NewLevelSystem 创建关卡系统
func NewLevelSystem(em *ecs.EntityManager, cfg *config.GameConfig, rs *game.RunState, rng RandomSource) *LevelSystem {
	return &LevelSystem{
		entityManager: em,
		config:        cfg,
		runState:      rs,
		rng:           rng,
	}
}

// Update 检查 Boss 是否被击败，然后检查分数里程碑
func (s *LevelSystem) Update() {
	s.checkBossDefeated()
	s.checkMilestone()
}

func (s *LevelSystem) checkBossDefeated() {
	bossID := s.runState.BossID
	if bossID == 0 {
		return
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, bossID)
	if ok && health.CurrentHealth > 0 {
		return
	}

	DestroyWithProjectiles(s.entityManager, bossID)
	s.runState.BossID = 0
	s.runState.Level++
	log.Printf("[LevelSystem] Boss defeated, level=%d", s.runState.Level)
}

func (s *LevelSystem) checkMilestone() {
	rules := s.config.Rules
	if s.runState.Level > rules.MaxLevel {
		return
	}
	if !s.runState.IsMilestone(rules.MilestoneScore) {
		return
	}

	s.runState.Level++
	s.runState.EnemySpeed *= rules.SpeedMultiplier
	s.runState.Score++
	log.Printf("[LevelSystem] Score milestone reached, level=%d enemySpeed=%.3f", s.runState.Level, s.runState.EnemySpeed)

	if s.runState.HasBoss() {
		return
	}
	s.SpawnBoss()
}

// SpawnBoss 召唤 Boss（随机初始方向）并记录到整局状态
// 已有 Boss 时不做任何事，返回现有 Boss 的ID
func (s *LevelSystem) SpawnBoss() ecs.EntityID {
	if s.runState.HasBoss() {
		return s.runState.BossID
	}

	direction := 1.0
	if s.rng.Intn(2) == 0 {
		direction = -1
	}
	id, err := entities.NewBoss(s.entityManager, s.config, direction, s.runState.ElapsedMs)
	if err != nil {
		log.Printf("[LevelSystem] Failed to spawn boss: %v", err)
		return 0
	}
	s.runState.BossID = id
	log.Printf("[LevelSystem] Boss spawned (entity %d)", id)
	return id
}
