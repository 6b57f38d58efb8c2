package components

// PositionComponent 存储实体在画布上的位置
// X/Y 为实体矩形的左上角（逻辑坐标，800x600 画布）
type PositionComponent struct {
	X float64
	Y float64
}
