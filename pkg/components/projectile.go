package components

import "github.com/decker502/tanksurvive/pkg/ecs"

// ProjectileComponent 子弹归属信息
//
// 每颗子弹只属于一个发射者（玩家、某架敌机或 Boss）。
// 发射者被移除时（敌机飞出屏幕/被击毁、Boss 被击败），
// 它仍在飞行的子弹随之移除。
type ProjectileComponent struct {
	OwnerID ecs.EntityID
}
