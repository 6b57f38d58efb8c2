package systems

import (
	"image/color"

	"github.com/decker502/tanksurvive/pkg/components"
	"github.com/decker502/tanksurvive/pkg/config"
	"github.com/decker502/tanksurvive/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageProvider 按资源ID提供图片
// game.ResourceManager 满足此接口
type ImageProvider interface {
	GetImageByID(resourceID string) *ebiten.Image
}

var (
	bulletColor      = color.RGBA{R: 255, A: 255}
	hitFlashColor    = color.RGBA{R: 255, G: 230, B: 120, A: 255}
	placeholderColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// renderOrder 绘制顺序：靠前的先画
var renderOrder = []components.BehaviorType{
	components.BehaviorEnemy,
	components.BehaviorBoss,
	components.BehaviorPlayer,
	components.BehaviorEnemyBullet,
	components.BehaviorPlayerBullet,
	components.BehaviorHitEffect,
}

// RenderSystem 绘制所有游戏实体（背景和 HUD 由场景负责）
//
//   - 精灵：按碰撞盒尺寸缩放绘制；图片缺失时画灰色占位矩形
//   - 子弹：红色实心矩形
//   - 击中闪光：按剩余生命周期淡出的矩形
type RenderSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	images        ImageProvider
}

// NewRenderSystem 创建渲染系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏参数
//   - images: 图片来源，可为 nil（所有精灵画占位矩形）
func NewRenderSystem(em *ecs.EntityManager, cfg *config.GameConfig, images ImageProvider) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		config:        cfg,
		images:        images,
	}
}

// Draw 按图层顺序绘制实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, behavior := range renderOrder {
		for _, id := range entitiesWithBehavior(s.entityManager, behavior) {
			s.drawEntity(screen, id, behavior)
		}
	}
}

func (s *RenderSystem) drawEntity(screen *ebiten.Image, id ecs.EntityID, behavior components.BehaviorType) {
	rect, ok := entityRect(s.entityManager, id)
	if !ok {
		return
	}

	switch behavior {
	case components.BehaviorPlayerBullet, components.BehaviorEnemyBullet:
		vector.DrawFilledRect(screen, float32(rect.X), float32(rect.Y), float32(rect.Width), float32(rect.Height), bulletColor, false)
	case components.BehaviorHitEffect:
		alpha := s.flashAlpha(id)
		if alpha <= 0 {
			return
		}
		c := hitFlashColor
		c.A = uint8(alpha * 255)
		c.R = uint8(float64(c.R) * alpha)
		c.G = uint8(float64(c.G) * alpha)
		c.B = uint8(float64(c.B) * alpha)
		vector.DrawFilledRect(screen, float32(rect.X), float32(rect.Y), float32(rect.Width), float32(rect.Height), c, false)
	default:
		img := s.spriteImage(id)
		if img == nil {
			vector.DrawFilledRect(screen, float32(rect.X), float32(rect.Y), float32(rect.Width), float32(rect.Height), placeholderColor, false)
			return
		}
		bounds := img.Bounds()
		if bounds.Dx() == 0 || bounds.Dy() == 0 {
			return
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(rect.Width/float64(bounds.Dx()), rect.Height/float64(bounds.Dy()))
		op.GeoM.Translate(rect.X, rect.Y)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	}
}

// spriteImage 返回实体的精灵图片，缺失返回 nil
func (s *RenderSystem) spriteImage(id ecs.EntityID) *ebiten.Image {
	if s.images == nil {
		return nil
	}
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if !ok || sprite.ImageID == "" {
		return nil
	}
	return s.images.GetImageByID(sprite.ImageID)
}

// flashAlpha 计算闪光当前不透明度（0-1）
func (s *RenderSystem) flashAlpha(id ecs.EntityID) float64 {
	flash, ok := ecs.GetComponent[*components.FlashEffectComponent](s.entityManager, id)
	if !ok {
		return 0
	}
	return FlashAlpha(flash, s.lifetime(id))
}

func (s *RenderSystem) lifetime(id ecs.EntityID) *components.LifetimeComponent {
	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
	return lifetime
}

// FlashAlpha 根据生命周期进度计算闪光不透明度
// 没有生命周期组件时保持初始强度
func FlashAlpha(flash *components.FlashEffectComponent, lifetime *components.LifetimeComponent) float64 {
	if flash == nil {
		return 0
	}
	alpha := flash.Intensity
	if lifetime != nil && lifetime.MaxLifetime > 0 {
		progress := lifetime.CurrentLifetime / lifetime.MaxLifetime
		if progress > 1 {
			progress = 1
		}
		alpha *= 1 - progress
	}
	if alpha < 0 {
		return 0
	}
	if alpha > 1 {
		return 1
	}
	return alpha
}
