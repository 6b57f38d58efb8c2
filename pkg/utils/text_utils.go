package utils

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var defaultFace text.Face

// DefaultFace 返回内置位图字体
// 资源清单没有提供 TTF 字体时 HUD 和结算文字使用它（需要配合 scale 放大）
func DefaultFace() text.Face {
	if defaultFace == nil {
		defaultFace = text.NewGoXFace(bitmapfont.Face)
	}
	return defaultFace
}

// DrawText 在指定位置绘制文本
//
// 参数:
//   - screen: 目标图像
//   - str: 文本内容
//   - face: 字体
//   - x, y: 文本左上角坐标
//   - scale: 缩放倍数（位图字体放大使用，TTF 字体传 1）
//   - clr: 文本颜色
func DrawText(screen *ebiten.Image, str string, face text.Face, x, y, scale float64, clr color.Color) {
	if face == nil || str == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// DrawTextCentered 以 centerX 为水平中心绘制文本
func DrawTextCentered(screen *ebiten.Image, str string, face text.Face, centerX, y, scale float64, clr color.Color) {
	if face == nil || str == "" {
		return
	}
	width := MeasureTextWidth(str, face) * scale
	DrawText(screen, str, face, centerX-width/2, y, scale, clr)
}

// MeasureTextWidth 计算文本的未缩放宽度（像素）
func MeasureTextWidth(str string, face text.Face) float64 {
	if face == nil {
		return 0
	}
	return text.Advance(str, face)
}
