package components

// HealthComponent 存储实体的生命值信息
// 目前只有 Boss 拥有生命值；玩家的生命数属于整局状态（game.RunState.Lives）
type HealthComponent struct {
	CurrentHealth int // 当前生命值
	MaxHealth     int // 最大生命值（用于血条比例）
}

// Ratio 返回当前生命值占最大生命值的比例 [0, 1]
func (h *HealthComponent) Ratio() float64 {
	if h.MaxHealth <= 0 || h.CurrentHealth <= 0 {
		return 0
	}
	if h.CurrentHealth >= h.MaxHealth {
		return 1
	}
	return float64(h.CurrentHealth) / float64(h.MaxHealth)
}
