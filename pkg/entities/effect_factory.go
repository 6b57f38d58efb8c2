package entities

import (
	"fmt"

	"github.com/decker502/tanksurvive/pkg/components"
	"github.com/decker502/tanksurvive/pkg/config"
	"github.com/decker502/tanksurvive/pkg/ecs"
)

// NewHitEffect 创建击中闪光实体
// 闪光以 (centerX, centerY) 为中心显示，持续 cfg.Effects.HitFlashSeconds 后由 LifetimeSystem 删除
//
// 闪光有位置与尺寸，但没有行为为子弹/敌机的组件组合，不参与碰撞。
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏参数
//   - centerX, centerY: 被击中目标的中心
//
// 返回:
//   - ecs.EntityID: 创建的实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewHitEffect(em *ecs.EntityManager, cfg *config.GameConfig, centerX, centerY float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}

	size := cfg.Effects.HitFlashSize
	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{
		X: centerX - size/2,
		Y: centerY - size/2,
	})
	em.AddComponent(entityID, &components.CollisionComponent{
		Width:  size,
		Height: size,
	})
	em.AddComponent(entityID, &components.BehaviorComponent{
		Type: components.BehaviorHitEffect,
	})
	em.AddComponent(entityID, &components.FlashEffectComponent{
		Intensity: cfg.Effects.HitFlashIntensity,
	})
	em.AddComponent(entityID, &components.LifetimeComponent{
		MaxLifetime: cfg.Effects.HitFlashSeconds,
	})

	return entityID, nil
}
