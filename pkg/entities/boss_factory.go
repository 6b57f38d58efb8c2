package entities

import (
	"fmt"

	"github.com/decker502/tanksurvive/pkg/components"
	"github.com/decker502/tanksurvive/pkg/config"
	"github.com/decker502/tanksurvive/pkg/ecs"
)

// NewBoss 创建 Boss 实体
// Boss 中心点位于 (画布中心, cfg.Boss.CenterY)，生命值满
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏参数
//   - direction: 初始水平方向，+1 或 -1（由调用方随机决定）
//   - nowMs: 当前会话时钟，作为"上次射击时间"
//
// 返回:
//   - ecs.EntityID: 创建的实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewBoss(em *ecs.EntityManager, cfg *config.GameConfig, direction float64, nowMs float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}
	if direction != 1 && direction != -1 {
		return 0, fmt.Errorf("boss direction must be +1 or -1, got %v", direction)
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{
		X: cfg.BossCenterX() - cfg.Boss.Width/2,
		Y: cfg.Boss.CenterY - cfg.Boss.Height/2,
	})
	em.AddComponent(entityID, &components.CollisionComponent{
		Width:  cfg.Boss.Width,
		Height: cfg.Boss.Height,
	})
	em.AddComponent(entityID, &components.SpriteComponent{
		ImageID: config.ImageBoss,
	})
	em.AddComponent(entityID, &components.BehaviorComponent{
		Type: components.BehaviorBoss,
	})
	em.AddComponent(entityID, &components.HealthComponent{
		CurrentHealth: cfg.Boss.Health,
		MaxHealth:     cfg.Boss.Health,
	})
	em.AddComponent(entityID, &components.BossComponent{
		Direction:  direction,
		LastShotMs: nowMs,
	})

	return entityID, nil
}
