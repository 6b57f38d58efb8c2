package systems

import (
	"github.com/decker502/tanksurvive/pkg/components"
	"github.com/decker502/tanksurvive/pkg/config"
	"github.com/decker502/tanksurvive/pkg/ecs"
	"github.com/decker502/tanksurvive/pkg/game"
	"github.com/decker502/tanksurvive/pkg/utils"
)

// MovementSystem 移动子弹、敌机和 Boss，并清理飞出画布的实体
//
// 清理规则：
//   - 玩家子弹：底边 < 0
//   - 敌方子弹：顶边 > 画布高
//   - 敌机：顶边 > 画布高（连同它的子弹）
type MovementSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	runState      *game.RunState
	rng           RandomSource
}

// NewMovementSystem 创建移动系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏参数
//   - rs: 整局状态（敌机速度、Boss 实体ID）
//   - rng: 随机数来源（Boss 随机换向）
func NewMovementSystem(em *ecs.EntityManager, cfg *config.GameConfig, rs *game.RunState, rng RandomSource) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
		config:        cfg,
		runState:      rs,
		rng:           rng,
	}
}

// Update 推进一帧
func (s *MovementSystem) Update() {
	s.moveBullets()
	s.moveEnemies()
	s.moveBoss()
}

// moveBullets 按速度移动所有子弹
func (s *MovementSystem) moveBullets() {
	height := float64(s.config.Screen.Height)
	bullets := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.VelocityComponent,
		*components.ProjectileComponent,
	](s.entityManager)

	for _, id := range bullets {
		if s.entityManager.IsMarked(id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		pos.X += vel.VX
		pos.Y += vel.VY

		rect, ok := entityRect(s.entityManager, id)
		if !ok {
			continue
		}
		behavior, _ := ecs.GetComponent[*components.BehaviorComponent](s.entityManager, id)
		switch {
		case behavior != nil && behavior.Type == components.BehaviorPlayerBullet:
			if rect.Bottom() < 0 {
				s.entityManager.DestroyEntity(id)
			}
		default:
			if rect.Top() > height {
				s.entityManager.DestroyEntity(id)
			}
		}
	}
}

// moveEnemies 所有敌机以当前整局速度下落
func (s *MovementSystem) moveEnemies() {
	height := float64(s.config.Screen.Height)
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](s.entityManager) {
		if s.entityManager.IsMarked(id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		pos.Y += s.runState.EnemySpeed

		if pos.Y > height {
			DestroyWithProjectiles(s.entityManager, id)
		}
	}
}

// moveBoss 水平往复移动，每帧以 FlipChance 概率换向，到达边缘时夹回画布并反向
func (s *MovementSystem) moveBoss() {
	bossID := s.runState.BossID
	if bossID == 0 || s.entityManager.IsMarked(bossID) {
		return
	}
	boss, ok := ecs.GetComponent[*components.BossComponent](s.entityManager, bossID)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, bossID)
	if !ok {
		return
	}

	if s.rng.Float64() < s.config.Boss.FlipChance {
		boss.Direction = -boss.Direction
	}
	pos.X += boss.Direction * s.config.Boss.Speed

	width := float64(s.config.Screen.Width)
	rect := utils.Rect{X: pos.X, Width: s.config.Boss.Width}
	if rect.Left() < 0 {
		pos.X = 0
		boss.Direction = 1
	} else if rect.Right() > width {
		pos.X = width - s.config.Boss.Width
		boss.Direction = -1
	}
}
