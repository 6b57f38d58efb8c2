package components

// VelocityComponent 存储实体的线性速度
// 单位为 像素/帧（固定 60 TPS），正 VY 向下
type VelocityComponent struct {
	VX float64
	VY float64
}
