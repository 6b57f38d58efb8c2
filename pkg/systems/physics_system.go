package systems

import (
	"log"

	"github.com/decker502/tanksurvive/pkg/components"
	"github.com/decker502/tanksurvive/pkg/config"
	"github.com/decker502/tanksurvive/pkg/ecs"
	"github.com/decker502/tanksurvive/pkg/entities"
	"github.com/decker502/tanksurvive/pkg/game"
)

// PhysicsSystem 处理碰撞与计分
//
//   - 敌方子弹 × 玩家：删除子弹，生命 -1（生命为 0 后不再结算）
//   - 玩家子弹 × 敌机：删除两者（及敌机的子弹），得分 +EnemyKillScore
//   - 玩家子弹 × Boss：删除子弹，得分 +BossHitScore，Boss 生命 -1
//
// 每颗子弹最多命中一个目标，每个目标最多被击毁一次。
// Boss 生命归零后的移除与升级由 LevelSystem 处理。
type PhysicsSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	runState      *game.RunState
	sound         SoundPlayer
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器，用于查询和操作实体组件
//   - cfg: 游戏参数（计分规则）
//   - rs: 整局状态
//   - sound: 音效播放器，可为 nil
func NewPhysicsSystem(em *ecs.EntityManager, cfg *config.GameConfig, rs *game.RunState, sound SoundPlayer) *PhysicsSystem {
	return &PhysicsSystem{
		entityManager: em,
		config:        cfg,
		runState:      rs,
		sound:         sound,
	}
}

// Update 执行本帧碰撞检测
func (s *PhysicsSystem) Update() {
	s.checkPlayerHits()
	s.checkEnemyHits()
	s.checkBossHits()
}

// checkPlayerHits 敌方子弹与玩家
func (s *PhysicsSystem) checkPlayerHits() {
	playerRect, ok := entityRect(s.entityManager, s.runState.PlayerID)
	if !ok {
		return
	}

	for _, bulletID := range entitiesWithBehavior(s.entityManager, components.BehaviorEnemyBullet) {
		if s.runState.Lives <= 0 {
			return
		}
		bulletRect, ok := entityRect(s.entityManager, bulletID)
		if !ok || !bulletRect.Intersects(playerRect) {
			continue
		}

		s.entityManager.DestroyEntity(bulletID)
		s.runState.LoseLife()
		log.Printf("[PhysicsSystem] Player hit, lives=%d", s.runState.Lives)
	}
}

// checkEnemyHits 玩家子弹与普通敌机
func (s *PhysicsSystem) checkEnemyHits() {
	enemies := entitiesWithBehavior(s.entityManager, components.BehaviorEnemy)
	if len(enemies) == 0 {
		return
	}

	for _, bulletID := range entitiesWithBehavior(s.entityManager, components.BehaviorPlayerBullet) {
		bulletRect, ok := entityRect(s.entityManager, bulletID)
		if !ok {
			continue
		}

		for _, enemyID := range enemies {
			if s.entityManager.IsMarked(enemyID) {
				continue
			}
			enemyRect, ok := entityRect(s.entityManager, enemyID)
			if !ok || !bulletRect.Intersects(enemyRect) {
				continue
			}

			s.entityManager.DestroyEntity(bulletID)
			DestroyWithProjectiles(s.entityManager, enemyID)
			s.runState.AddScore(s.config.Rules.EnemyKillScore)
			playSound(s.sound, config.SoundEnemyDie)
			s.spawnHitEffect(enemyRect.CenterX(), enemyRect.CenterY())
			break
		}
	}
}

// checkBossHits 玩家子弹与 Boss
//
// 同一帧内每颗命中的子弹都各自结算（扣 1 血、加分、移除子弹），不限制每帧一次命中；
// 血量归零后剩余子弹不再结算，继续飞行。
func (s *PhysicsSystem) checkBossHits() {
	bossID := s.runState.BossID
	if bossID == 0 || s.entityManager.IsMarked(bossID) {
		return
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, bossID)
	if !ok {
		return
	}
	bossRect, ok := entityRect(s.entityManager, bossID)
	if !ok {
		return
	}

	for _, bulletID := range entitiesWithBehavior(s.entityManager, components.BehaviorPlayerBullet) {
		if health.CurrentHealth <= 0 {
			return
		}
		bulletRect, ok := entityRect(s.entityManager, bulletID)
		if !ok || !bulletRect.Intersects(bossRect) {
			continue
		}

		s.entityManager.DestroyEntity(bulletID)
		s.runState.AddScore(s.config.Rules.BossHitScore)
		health.CurrentHealth--
		playSound(s.sound, config.SoundEnemyDie)
		s.spawnHitEffect(bulletRect.CenterX(), bulletRect.Top())
	}
}

// spawnHitEffect 创建击中闪光
func (s *PhysicsSystem) spawnHitEffect(x, y float64) {
	if s.config.Effects.HitFlashSeconds <= 0 {
		return
	}
	if _, err := entities.NewHitEffect(s.entityManager, s.config, x, y); err != nil {
		log.Printf("[PhysicsSystem] Failed to spawn hit effect: %v", err)
	}
}
