// Package tty 在终端里运行同一份游戏逻辑
//
// 画布按比例映射到终端字符网格：第 0 行是 HUD，其余行是战场。
// 输入来自 tcell 按键事件，音效由 beep 合成。
package tty

import (
	"fmt"
	"math"

	"github.com/decker502/tanksurvive/pkg/components"
	"github.com/decker502/tanksurvive/pkg/ecs"
	"github.com/decker502/tanksurvive/pkg/session"
	"github.com/gdamore/tcell/v2"
)

const (
	hudRows        = 1
	bossBarCells   = 20
	bossBarFilled  = '█'
	bossBarEmpty   = '░'
	playerGlyph    = '▲'
	bossGlyph      = 'B'
	playerBullet   = '|'
	enemyBullet    = '!'
	hitEffectGlyph = '*'
)

var (
	scoreStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	livesStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	levelStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	playerStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	enemyStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	bossStyle    = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	bulletStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	effectStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	barFullStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	barLowStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	titleStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	hintStyle    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

// enemyGlyphs 敌机外观对应的字符
var enemyGlyphs = map[components.EnemyVariant]rune{
	components.EnemyHelicopter: 'H',
	components.EnemyTransport:  'T',
	components.EnemyAircraft2:  'W',
	components.EnemyAircraft3:  'V',
}

// drawOrder 绘制顺序：靠前的先画
var drawOrder = []components.BehaviorType{
	components.BehaviorEnemy,
	components.BehaviorBoss,
	components.BehaviorPlayer,
	components.BehaviorEnemyBullet,
	components.BehaviorPlayerBullet,
	components.BehaviorHitEffect,
}

// Renderer 把会话画到终端
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer 创建终端渲染器
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw 绘制一帧并刷新屏幕
func (r *Renderer) Draw(sess *session.Session) {
	r.screen.Clear()

	cols, rows := r.screen.Size()
	if cols > 0 && rows > hudRows {
		r.drawEntities(sess, cols, rows)
		r.drawHUD(sess, cols)
		r.drawResult(sess, cols, rows)
	}

	r.screen.Show()
}

func (r *Renderer) drawEntities(sess *session.Session, cols, rows int) {
	em := sess.EntityManager()
	cfg := sess.Config()
	scaleX := float64(cols) / float64(cfg.Screen.Width)
	scaleY := float64(rows-hudRows) / float64(cfg.Screen.Height)

	entities := ecs.GetEntitiesWith3[
		*components.BehaviorComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](em)

	for _, behavior := range drawOrder {
		for _, id := range entities {
			b, _ := ecs.GetComponent[*components.BehaviorComponent](em, id)
			if b.Type != behavior {
				continue
			}
			glyph, style := glyphFor(em, id, behavior)
			pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
			col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)

			x0 := int(math.Floor((pos.X + col.OffsetX) * scaleX))
			x1 := int(math.Ceil((pos.X+col.OffsetX+col.Width)*scaleX)) - 1
			y0 := hudRows + int(math.Floor((pos.Y+col.OffsetY)*scaleY))
			y1 := hudRows + int(math.Ceil((pos.Y+col.OffsetY+col.Height)*scaleY)) - 1
			r.fill(x0, y0, x1, y1, cols, rows, glyph, style)
		}
	}
}

// glyphFor 返回实体在终端中的字符和样式
func glyphFor(em *ecs.EntityManager, id ecs.EntityID, behavior components.BehaviorType) (rune, tcell.Style) {
	switch behavior {
	case components.BehaviorPlayer:
		return playerGlyph, playerStyle
	case components.BehaviorEnemy:
		glyph := 'E'
		if enemy, ok := ecs.GetComponent[*components.EnemyComponent](em, id); ok {
			if g, found := enemyGlyphs[enemy.Variant]; found {
				glyph = g
			}
		}
		return glyph, enemyStyle
	case components.BehaviorBoss:
		return bossGlyph, bossStyle
	case components.BehaviorPlayerBullet:
		return playerBullet, bulletStyle
	case components.BehaviorEnemyBullet:
		return enemyBullet, bulletStyle
	default:
		return hitEffectGlyph, effectStyle
	}
}

// fill 填充 [x0,x1]×[y0,y1] 的字符格，裁剪到战场区域；尺寸不足一格时至少画一格
func (r *Renderer) fill(x0, y0, x1, y1, cols, rows int, glyph rune, style tcell.Style) {
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	for y := max(y0, hudRows); y <= min(y1, rows-1); y++ {
		for x := max(x0, 0); x <= min(x1, cols-1); x++ {
			r.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

func (r *Renderer) drawHUD(sess *session.Session, cols int) {
	state := sess.State()
	x := 0
	x = r.drawText(x, 0, fmt.Sprintf("Score: %d", state.Score), scoreStyle) + 2
	x = r.drawText(x, 0, fmt.Sprintf("Lives: %d", state.Lives), livesStyle) + 2
	r.drawText(x, 0, fmt.Sprintf("Level: %d", state.Level), levelStyle)

	ratio, ok := sess.BossHealthRatio()
	if !ok {
		return
	}
	start := cols/2 - bossBarCells/2
	filled := int(math.Ceil(ratio * bossBarCells))
	for i := 0; i < bossBarCells; i++ {
		if i < filled {
			r.screen.SetContent(start+i, 0, bossBarFilled, nil, barFullStyle)
		} else {
			r.screen.SetContent(start+i, 0, bossBarEmpty, nil, barLowStyle)
		}
	}
}

func (r *Renderer) drawResult(sess *session.Session, cols, rows int) {
	title := sess.State().Phase.ResultTitle()
	if title == "" {
		return
	}
	hint := "Press R to Play Again"
	middle := rows / 2
	r.drawText((cols-len(title))/2, middle-1, title, titleStyle)
	r.drawText((cols-len(hint))/2, middle+1, hint, hintStyle)
}

// drawText 绘制一行文本，返回文本结束后的列
func (r *Renderer) drawText(x, y int, str string, style tcell.Style) int {
	for _, ch := range str {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
