package components

// SpriteComponent 存储实体的视觉表现
// 只保存资源ID（如 "IMAGE_BOSS"），图像由渲染端通过 ResourceManager 解析，
// 这样模拟逻辑不依赖任何图形资源，终端前端也可以复用同一套实体。
type SpriteComponent struct {
	ImageID string
}
