package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/tanksurvive/pkg/config"
	"github.com/decker502/tanksurvive/pkg/game"
	"github.com/decker502/tanksurvive/pkg/session"
	"github.com/decker502/tanksurvive/pkg/systems"
	"github.com/decker502/tanksurvive/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	scoreColor      = color.RGBA{R: 255, A: 255}
	livesColor      = color.RGBA{G: 255, A: 255}
	levelColor      = color.RGBA{B: 255, A: 255}
	bossBarBgColor  = color.RGBA{R: 255, A: 255}
	bossBarFgColor  = color.RGBA{G: 255, A: 255}
	overlayColor    = color.RGBA{R: 255, G: 255, B: 255, A: 96}
	resultColor     = color.RGBA{R: 255, A: 255}
	hintColor       = color.RGBA{A: 255}
	backgroundColor = color.RGBA{R: 20, G: 24, B: 40, A: 255}
)

// GameScene 战斗场景
// 把键盘输入交给 session.Session 推进一帧，并绘制背景、实体、HUD 和结算遮罩
type GameScene struct {
	session         *session.Session
	resourceManager *game.ResourceManager
	audioManager    *game.AudioManager
	renderSystem    *systems.RenderSystem

	background *ebiten.Image
	font       text.Face
	// 字体来自资源清单（TTF）时为 true，此时文字不再按位图字体放大
	ttfFont bool

	// readControls 读取本帧输入，测试中替换
	readControls func() utils.Controls
	musicStarted bool
}

// NewGameScene 创建战斗场景
//
// 参数:
//   - sess: 游戏会话
//   - rm: 资源管理器（图片、字体），可为 nil（全部使用占位绘制）
//   - am: 音频管理器，可为 nil（无背景音乐）
func NewGameScene(sess *session.Session, rm *game.ResourceManager, am *game.AudioManager) *GameScene {
	var images systems.ImageProvider
	if rm != nil {
		images = rm
	}

	s := &GameScene{
		session:         sess,
		resourceManager: rm,
		audioManager:    am,
		renderSystem:    systems.NewRenderSystem(sess.EntityManager(), sess.Config(), images),
	}
	screenWidth := sess.Config().Screen.Width
	s.readControls = func() utils.Controls { return utils.ReadControls(screenWidth) }
	s.loadResources()
	return s
}

// loadResources 加载背景和 HUD 字体
// 缺失时记录日志并使用占位绘制
func (s *GameScene) loadResources() {
	s.font = utils.DefaultFace()
	if s.resourceManager == nil {
		return
	}

	s.background = s.resourceManager.GetImageByID(config.ImageBackground)
	if s.background == nil {
		log.Printf("[GameScene] Warning: background %s not loaded, using solid fill", config.ImageBackground)
	}

	if s.resourceManager.HasResource(config.FontHUD) {
		face, err := s.resourceManager.LoadFontByID(config.FontHUD)
		if err != nil {
			log.Printf("[GameScene] Warning: Failed to load HUD font: %v", err)
			return
		}
		s.font = face
		s.ttfFont = true
	}
}

// Update 推进一帧
func (s *GameScene) Update(deltaTime float64) {
	if !s.musicStarted && s.audioManager != nil {
		s.audioManager.PlayMusic(config.MusicBackground)
		s.musicStarted = true
	}

	s.session.Update(s.readControls(), deltaTime)
}

// Draw 绘制战斗画面
// 绘制顺序（从后到前）:
// 1. 背景
// 2. 游戏实体（敌机、Boss、坦克、子弹、击中闪光）
// 3. HUD（分数、生命、关卡、Boss 血条）
// 4. 结算遮罩（失败或胜利时）
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.drawBackground(screen)
	s.renderSystem.Draw(screen)
	s.drawHUD(screen)
	s.drawBossBar(screen)
	s.drawResultOverlay(screen)
}

// drawBackground 背景图缩放到整个画布
func (s *GameScene) drawBackground(screen *ebiten.Image) {
	if s.background == nil {
		screen.Fill(backgroundColor)
		return
	}
	bounds := s.background.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}
	cfg := s.session.Config()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(
		float64(cfg.Screen.Width)/float64(bounds.Dx()),
		float64(cfg.Screen.Height)/float64(bounds.Dy()),
	)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(s.background, op)
}

// textScale 位图字体使用给定倍数，TTF 字体按 HUD 字号折算
func (s *GameScene) textScale(bitmapScale float64) float64 {
	if s.ttfFont {
		return bitmapScale / config.HUDTextScale
	}
	return bitmapScale
}

func (s *GameScene) drawHUD(screen *ebiten.Image) {
	state := s.session.State()
	scale := s.textScale(config.HUDTextScale)

	utils.DrawText(screen, fmt.Sprintf("Score: %d", state.Score), s.font, config.HUDTextX, config.HUDScoreY, scale, scoreColor)
	utils.DrawText(screen, fmt.Sprintf("Lives: %d", state.Lives), s.font, config.HUDTextX, config.HUDLivesY, scale, livesColor)
	utils.DrawText(screen, fmt.Sprintf("Level: %d", state.Level), s.font, config.HUDTextX, config.HUDLevelY, scale, levelColor)
}

// drawBossBar Boss 血条：红色底，绿色部分按剩余生命比例
func (s *GameScene) drawBossBar(screen *ebiten.Image) {
	ratio, ok := s.session.BossHealthRatio()
	if !ok {
		return
	}
	x := float32(float64(s.session.Config().Screen.Width)/2 - config.BossBarWidth/2)
	y := float32(config.BossBarY)

	vector.DrawFilledRect(screen, x, y, float32(config.BossBarWidth), float32(config.BossBarHeight), bossBarBgColor, false)
	if ratio > 0 {
		vector.DrawFilledRect(screen, x, y, float32(config.BossBarWidth*ratio), float32(config.BossBarHeight), bossBarFgColor, false)
	}
}

// drawResultOverlay 失败或胜利时绘制遮罩和重开提示
func (s *GameScene) drawResultOverlay(screen *ebiten.Image) {
	title := s.session.State().Phase.ResultTitle()
	if title == "" {
		return
	}

	cfg := s.session.Config()
	width := float64(cfg.Screen.Width)
	height := float64(cfg.Screen.Height)

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), overlayColor, false)
	utils.DrawTextCentered(screen, title, s.font, width/2, height/2-40, s.textScale(config.OverlayTitleScale), resultColor)
	utils.DrawTextCentered(screen, "Press R to Play Again", s.font, width/2, height/2+20, s.textScale(config.OverlayHintScale), hintColor)
}
