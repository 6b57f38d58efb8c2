package entities

import (
	"fmt"

	"github.com/decker502/tanksurvive/pkg/components"
	"github.com/decker502/tanksurvive/pkg/config"
	"github.com/decker502/tanksurvive/pkg/ecs"
)

// NewPlayer 创建玩家坦克实体
// 坦克中心位于配置的初始中心点，整局只在水平方向移动
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏参数
//
// 返回:
//   - ecs.EntityID: 创建的实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewPlayer(em *ecs.EntityManager, cfg *config.GameConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{
		X: cfg.Player.CenterX - cfg.Player.Width/2,
		Y: cfg.Player.CenterY - cfg.Player.Height/2,
	})
	em.AddComponent(entityID, &components.CollisionComponent{
		Width:  cfg.Player.Width,
		Height: cfg.Player.Height,
	})
	em.AddComponent(entityID, &components.SpriteComponent{
		ImageID: config.ImageTank,
	})
	em.AddComponent(entityID, &components.BehaviorComponent{
		Type: components.BehaviorPlayer,
	})
	em.AddComponent(entityID, &components.PlayerComponent{})

	return entityID, nil
}
