package entities

import (
	"fmt"

	"github.com/decker502/tanksurvive/pkg/components"
	"github.com/decker502/tanksurvive/pkg/config"
	"github.com/decker502/tanksurvive/pkg/ecs"
)

// enemyImageIDs 敌机外观 -> 图片资源ID
var enemyImageIDs = map[components.EnemyVariant]string{
	components.EnemyHelicopter: config.ImageHelicopter,
	components.EnemyTransport:  config.ImageTransport,
	components.EnemyAircraft2:  config.ImageAircraft2,
	components.EnemyAircraft3:  config.ImageAircraft3,
}

// EnemyImageID 返回敌机外观对应的图片资源ID
func EnemyImageID(variant components.EnemyVariant) string {
	if id, ok := enemyImageIDs[variant]; ok {
		return id
	}
	return config.ImageHelicopter
}

// NewEnemy 创建普通敌机实体
// 敌机中心点位于 (centerX, 0)，即一半机身在画布上方
//
// 敌机没有速度组件：所有敌机都以 RunState.EnemySpeed 下落，
// 关卡提升后画面上已有的敌机也随之加速。
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏参数
//   - variant: 外观
//   - centerX: 中心点X，取值 [0, 画布宽 - 敌机宽]
//
// 返回:
//   - ecs.EntityID: 创建的实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewEnemy(em *ecs.EntityManager, cfg *config.GameConfig, variant components.EnemyVariant, centerX float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}
	if variant < 0 || variant >= components.EnemyVariantCount {
		return 0, fmt.Errorf("invalid enemy variant %d", variant)
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{
		X: centerX - cfg.Enemy.Width/2,
		Y: -cfg.Enemy.Height / 2,
	})
	em.AddComponent(entityID, &components.CollisionComponent{
		Width:  cfg.Enemy.Width,
		Height: cfg.Enemy.Height,
	})
	em.AddComponent(entityID, &components.SpriteComponent{
		ImageID: EnemyImageID(variant),
	})
	em.AddComponent(entityID, &components.BehaviorComponent{
		Type: components.BehaviorEnemy,
	})
	em.AddComponent(entityID, &components.EnemyComponent{
		Variant: variant,
	})

	return entityID, nil
}
