package components

// BehaviorType 定义实体的行为类型
// 各系统据此区分同样拥有位置/碰撞组件的实体
type BehaviorType int

const (
	// BehaviorPlayer 玩家坦克：左右移动，按键射击
	BehaviorPlayer BehaviorType = iota
	// BehaviorEnemy 普通敌机：向下移动，越过开火线时射击一次
	BehaviorEnemy
	// BehaviorBoss Boss：水平往复移动，定时射击，拥有生命值
	BehaviorBoss
	// BehaviorPlayerBullet 玩家子弹：向上移动
	BehaviorPlayerBullet
	// BehaviorEnemyBullet 敌方子弹（敌机/Boss 发射）：向下移动
	BehaviorEnemyBullet
	// BehaviorHitEffect 击中闪光：不参与碰撞，生命周期结束后删除
	BehaviorHitEffect
)

// String 返回行为类型名称（日志使用）
func (b BehaviorType) String() string {
	switch b {
	case BehaviorPlayer:
		return "player"
	case BehaviorEnemy:
		return "enemy"
	case BehaviorBoss:
		return "boss"
	case BehaviorPlayerBullet:
		return "player_bullet"
	case BehaviorEnemyBullet:
		return "enemy_bullet"
	case BehaviorHitEffect:
		return "hit_effect"
	default:
		return "unknown"
	}
}

// BehaviorComponent 标识实体的行为类型
type BehaviorComponent struct {
	Type BehaviorType
}
