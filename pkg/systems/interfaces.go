package systems

// SoundPlayer 播放音效
// game.AudioManager 与终端前端的合成音效都实现此接口；测试使用记录型 mock
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// RandomSource 随机数来源
// *rand.Rand 满足此接口；测试注入脚本化的实现以获得确定结果
type RandomSource interface {
	// Intn 返回 [0, n) 的随机整数
	Intn(n int) int
	// Float64 返回 [0.0, 1.0) 的随机浮点数
	Float64() float64
}

// playSound 在 sound 非 nil 时播放音效
func playSound(sound SoundPlayer, soundID string) {
	if sound != nil {
		sound.PlaySound(soundID)
	}
}
