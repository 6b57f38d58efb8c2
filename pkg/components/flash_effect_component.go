package components

// FlashEffectComponent 击中闪光效果
// 敌机被击毁或 Boss 被击中时在目标位置短暂显示，随时间淡出
//
// 淡出进度由同一实体上的 LifetimeComponent 驱动：
//
//	alpha = Intensity * (1 - CurrentLifetime/MaxLifetime)
type FlashEffectComponent struct {
	// Intensity 初始强度（0.0 - 1.0）
	Intensity float64
}
