package entities

import (
	"fmt"

	"github.com/decker502/tanksurvive/pkg/components"
	"github.com/decker502/tanksurvive/pkg/config"
	"github.com/decker502/tanksurvive/pkg/ecs"
)

// NewPlayerBullet 创建玩家子弹实体
// 子弹左上角位于 (centerX - 子弹宽/2, top)，以 PlayerSpeed 向上移动
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏参数
//   - ownerID: 发射者（玩家实体）
//   - centerX: 发射者中心X
//   - top: 发射者顶边Y
//
// 返回:
//   - ecs.EntityID: 创建的子弹实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewPlayerBullet(em *ecs.EntityManager, cfg *config.GameConfig, ownerID ecs.EntityID, centerX, top float64) (ecs.EntityID, error) {
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}
	return newBullet(em, cfg, ownerID, centerX-cfg.Bullet.Width/2, top,
		-cfg.Bullet.PlayerSpeed, components.BehaviorPlayerBullet)
}

// NewEnemyBullet 创建敌方子弹实体（敌机或 Boss 发射）
// 子弹左上角位于 (centerX - 子弹宽/2, bottom)，以 EnemySpeed 向下移动
func NewEnemyBullet(em *ecs.EntityManager, cfg *config.GameConfig, ownerID ecs.EntityID, centerX, bottom float64) (ecs.EntityID, error) {
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}
	return newBullet(em, cfg, ownerID, centerX-cfg.Bullet.Width/2, bottom,
		cfg.Bullet.EnemySpeed, components.BehaviorEnemyBullet)
}

func newBullet(em *ecs.EntityManager, cfg *config.GameConfig, ownerID ecs.EntityID, x, y, vy float64, behavior components.BehaviorType) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if !em.Exists(ownerID) {
		return 0, fmt.Errorf("bullet owner %d does not exist", ownerID)
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{
		X: x,
		Y: y,
	})
	em.AddComponent(entityID, &components.VelocityComponent{
		VX: 0,
		VY: vy,
	})
	em.AddComponent(entityID, &components.CollisionComponent{
		Width:  cfg.Bullet.Width,
		Height: cfg.Bullet.Height,
	})
	em.AddComponent(entityID, &components.BehaviorComponent{
		Type: behavior,
	})
	em.AddComponent(entityID, &components.ProjectileComponent{
		OwnerID: ownerID,
	})

	return entityID, nil
}
