// Package session 把各系统串成一局完整的游戏
//
// 一局的阶段:
//
//	PLAYING ──生命归零──▶ GAME_OVER ──按下重开──▶ PLAYING
//	PLAYING ──关卡超过上限──▶ WON ──按下重开──▶ PLAYING
//
// Session 只依赖逻辑输入（utils.Controls）、音效接口和随机数来源，
// Ebitengine 和终端两种宿主共用同一份逻辑。
package session

import (
	"fmt"
	"log"

	"github.com/decker502/tanksurvive/pkg/components"
	"github.com/decker502/tanksurvive/pkg/config"
	"github.com/decker502/tanksurvive/pkg/ecs"
	"github.com/decker502/tanksurvive/pkg/entities"
	"github.com/decker502/tanksurvive/pkg/game"
	"github.com/decker502/tanksurvive/pkg/systems"
	"github.com/decker502/tanksurvive/pkg/utils"
)

// Session 一局游戏
type Session struct {
	config        *config.GameConfig
	sound         systems.SoundPlayer
	rng           systems.RandomSource
	entityManager *ecs.EntityManager
	state         *game.RunState

	// 上一帧是否按住重开键（重开为边沿触发）
	restartHeld bool

	inputSystem    *systems.InputSystem
	movementSystem *systems.MovementSystem
	spawnSystem    *systems.EnemySpawnSystem
	firingSystem   *systems.FiringSystem
	physicsSystem  *systems.PhysicsSystem
	levelSystem    *systems.LevelSystem
	lifetimeSystem *systems.LifetimeSystem
}

// New 创建一局新游戏
//
// 参数:
//   - cfg: 游戏参数
//   - sound: 音效播放器，可为 nil（静音）
//   - rng: 随机数来源（*rand.Rand 或测试用的脚本实现）
//
// 返回:
//   - *Session: 处于 PLAYING 阶段的会话
//   - error: 参数缺失或玩家创建失败
func New(cfg *config.GameConfig, sound systems.SoundPlayer, rng systems.RandomSource) (*Session, error) {
	if cfg == nil {
		return nil, fmt.Errorf("game config cannot be nil")
	}
	if rng == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}

	em := ecs.NewEntityManager()
	state := game.NewRunState(cfg.Rules, cfg.Enemy.BaseSpeed)

	s := &Session{
		config:        cfg,
		sound:         sound,
		rng:           rng,
		entityManager: em,
		state:         state,

		inputSystem:    systems.NewInputSystem(em, cfg, state, sound),
		movementSystem: systems.NewMovementSystem(em, cfg, state, rng),
		spawnSystem:    systems.NewEnemySpawnSystem(em, cfg, state, rng),
		firingSystem:   systems.NewFiringSystem(em, cfg, state, sound),
		physicsSystem:  systems.NewPhysicsSystem(em, cfg, state, sound),
		levelSystem:    systems.NewLevelSystem(em, cfg, state, rng),
		lifetimeSystem: systems.NewLifetimeSystem(em),
	}

	if err := s.spawnPlayer(); err != nil {
		return nil, err
	}
	return s, nil
}

// Update 推进一帧
//
// PLAYING 阶段按固定顺序执行：
// 输入 → 移动 → 刷怪 → 射击 → 碰撞 → 关卡 → 特效寿命 → 终局判定 → 清除已删除实体。
// 结束阶段只响应重开键。
func (s *Session) Update(controls utils.Controls, deltaTime float64) {
	restartPressed := controls.Restart && !s.restartHeld
	s.restartHeld = controls.Restart

	if s.state.IsOver() {
		if restartPressed {
			s.Restart()
		}
		return
	}

	s.state.Advance(deltaTime)

	s.inputSystem.Update(controls)
	s.movementSystem.Update()
	s.spawnSystem.Update()
	s.firingSystem.Update()
	s.physicsSystem.Update()
	s.levelSystem.Update()
	s.lifetimeSystem.Update(deltaTime)

	s.checkTermination()

	s.entityManager.RemoveMarkedEntities()
}

// checkTermination 判定失败或胜利
func (s *Session) checkTermination() {
	switch {
	case s.state.Lives <= 0:
		s.state.Phase = game.PhaseGameOver
	case s.state.HasWon(s.config.Rules.MaxLevel):
		s.state.Phase = game.PhaseWon
	default:
		return
	}

	log.Printf("[Session] Run finished: phase=%s score=%d level=%d", s.state.Phase, s.state.Score, s.state.Level)
	if s.sound != nil {
		s.sound.PlaySound(config.SoundGameOver)
	}
}

// Restart 清空所有实体并回到初始状态
func (s *Session) Restart() {
	for _, id := range s.entityManager.GetEntitiesWith() {
		s.entityManager.DestroyEntity(id)
	}
	s.entityManager.RemoveMarkedEntities()

	s.state.Reset(s.config.Rules, s.config.Enemy.BaseSpeed)
	if err := s.spawnPlayer(); err != nil {
		log.Printf("[Session] Failed to respawn player: %v", err)
	}
	log.Printf("[Session] Restarted")
}

func (s *Session) spawnPlayer() error {
	playerID, err := entities.NewPlayer(s.entityManager, s.config)
	if err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}
	s.state.PlayerID = playerID
	return nil
}

// State 返回整局状态（只读使用）
func (s *Session) State() *game.RunState {
	return s.state
}

// EntityManager 返回实体管理器（渲染使用）
func (s *Session) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Config 返回游戏参数
func (s *Session) Config() *config.GameConfig {
	return s.config
}

// BossHealthRatio 返回 Boss 剩余生命比例，没有 Boss 时第二个返回值为 false
func (s *Session) BossHealthRatio() (float64, bool) {
	if !s.state.HasBoss() {
		return 0, false
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, s.state.BossID)
	if !ok {
		return 0, false
	}
	return health.Ratio(), true
}
