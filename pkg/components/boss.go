package components

// BossComponent Boss 状态
// 生命值保存在同一实体的 HealthComponent 中
type BossComponent struct {
	Direction  float64 // 水平移动方向：+1 向右，-1 向左
	LastShotMs float64 // 上次射击时的会话时钟（毫秒），生成时记为生成时刻
}
