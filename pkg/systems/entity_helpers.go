package systems

import (
	"github.com/decker502/tanksurvive/pkg/components"
	"github.com/decker502/tanksurvive/pkg/ecs"
	"github.com/decker502/tanksurvive/pkg/utils"
)

// entityRect 返回实体的碰撞矩形（位置 + 碰撞盒偏移）
func entityRect(em *ecs.EntityManager, id ecs.EntityID) (utils.Rect, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return utils.Rect{}, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
	if !ok {
		return utils.Rect{}, false
	}
	return utils.Rect{
		X:      pos.X + col.OffsetX,
		Y:      pos.Y + col.OffsetY,
		Width:  col.Width,
		Height: col.Height,
	}, true
}

// entitiesWithBehavior 返回指定行为类型的存活实体（ID 升序，跳过已标记删除的实体）
func entitiesWithBehavior(em *ecs.EntityManager, behavior components.BehaviorType) []ecs.EntityID {
	all := ecs.GetEntitiesWith1[*components.BehaviorComponent](em)
	result := make([]ecs.EntityID, 0, len(all))
	for _, id := range all {
		if em.IsMarked(id) {
			continue
		}
		b, ok := ecs.GetComponent[*components.BehaviorComponent](em, id)
		if ok && b.Type == behavior {
			result = append(result, id)
		}
	}
	return result
}

// DestroyWithProjectiles 标记删除实体以及它仍在飞行的所有子弹
// 子弹属于发射者：敌机飞出屏幕或被击毁、Boss 被击败时，它的子弹一起消失
func DestroyWithProjectiles(em *ecs.EntityManager, ownerID ecs.EntityID) {
	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](em) {
		proj, ok := ecs.GetComponent[*components.ProjectileComponent](em, id)
		if ok && proj.OwnerID == ownerID {
			em.DestroyEntity(id)
		}
	}
	em.DestroyEntity(ownerID)
}
