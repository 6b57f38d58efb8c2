package components

// EnemyVariant 敌机外观类型（四选一，均匀随机）
type EnemyVariant int

const (
	EnemyHelicopter EnemyVariant = iota // 直升机
	EnemyTransport                      // 运输机
	EnemyAircraft2                      // 战机 2
	EnemyAircraft3                      // 战机 3

	// EnemyVariantCount 敌机外观数量
	EnemyVariantCount = 4
)

// String 返回外观名称
func (v EnemyVariant) String() string {
	switch v {
	case EnemyHelicopter:
		return "helicopter"
	case EnemyTransport:
		return "transport"
	case EnemyAircraft2:
		return "aircraft2"
	case EnemyAircraft3:
		return "aircraft3"
	default:
		return "unknown"
	}
}

// EnemyComponent 普通敌机状态
type EnemyComponent struct {
	Variant  EnemyVariant // 外观
	HasFired bool         // 是否已经射击过（每架敌机只射击一次）
}
