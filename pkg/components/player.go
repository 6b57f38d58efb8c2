package components

// PlayerComponent 玩家坦克状态
type PlayerComponent struct {
	// FireHeld 上一帧射击键是否按下
	// 射击为边沿触发：按下瞬间发射一颗子弹，持续按住不再发射，松开后重新就绪
	FireHeld bool
}
