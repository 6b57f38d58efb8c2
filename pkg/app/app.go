// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来：加载参数和资源、打开设置存储、
// 创建会话和战斗场景，并实现 ebiten.Game 接口。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/tanksurvive/pkg/config"
	"github.com/decker502/tanksurvive/pkg/game"
	"github.com/decker502/tanksurvive/pkg/scenes"
	"github.com/decker502/tanksurvive/pkg/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "tanksurvive"

// ResourceConfigPath 资源清单路径（内置数据）
const ResourceConfigPath = "data/resources.yaml"

// volumeStep 每次按 -/= 调整的音量
const volumeStep = 0.1

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 游戏参数文件，为空则使用内置的 data/game.yaml
	ConfigPath string
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// NoSave 不读写用户设置（仅内存）
	NoSave bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settingsManager          *game.SettingsManager
	audioManager             *game.AudioManager
	gameConfig               *config.GameConfig
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化内置数据和资源目录。
// 资源缺失或无法解码时返回错误，由 main 终止程序。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 加载游戏参数
	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = config.DefaultGameConfigPath
	}
	gameConfig, err := config.LoadGameConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("游戏参数加载失败: %w", err)
	}
	log.Printf("[Config] 加载游戏参数: %s", configPath)

	// 初始化音频上下文
	audioContext := audio.NewContext(48000)

	// 创建资源管理器并加载资源
	resourceManager := game.NewResourceManager(audioContext)
	if err := resourceManager.LoadResourceConfig(ResourceConfigPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}
	if err := resourceManager.LoadResourceGroup(config.ResourceGroupGame); err != nil {
		return nil, fmt.Errorf("资源加载失败: %w", err)
	}

	// 用户设置（存储不可用时降级为内存设置）
	settingsManager, err := game.NewSettingsManager(openSettingsStore(cfg.NoSave), defaultSettings(gameConfig))
	if err != nil {
		return nil, fmt.Errorf("设置初始化失败: %w", err)
	}

	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	log.Printf("[App] AudioManager initialized")

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Random seed: %d", seed)

	sess, err := session.New(gameConfig, audioManager, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, fmt.Errorf("会话创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewGameScene(sess, resourceManager, audioManager))

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		audioManager:    audioManager,
		gameConfig:      gameConfig,
		verbose:         cfg.Verbose,
	}, nil
}

// openSettingsStore 打开 gdata 存储
// noSave 或打开失败时返回 nil，SettingsManager 进入降级模式
func openSettingsStore(noSave bool) *gdata.Manager {
	if noSave {
		log.Printf("[App] --no-save: settings kept in memory only")
		return nil
	}
	manager, err := gdata.Open(gdata.Config{
		AppName: AppName,
	})
	if err != nil {
		log.Printf("[App] Warning: settings store unavailable: %v (settings kept in memory only)", err)
		return nil
	}
	return manager
}

// defaultSettings 以游戏参数中的音量作为默认设置
func defaultSettings(cfg *config.GameConfig) *game.GameSettings {
	settings := game.DefaultSettings()
	settings.MusicVolume = cfg.Audio.MusicVolume
	settings.SoundVolume = cfg.Audio.SoundVolume
	return settings
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（TPS 由游戏参数决定，默认 60）
func (a *App) Update() error {
	// Esc 退出
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.gameConfig.Screen.Width, a.gameConfig.Screen.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.gameConfig.Screen.Width, a.gameConfig.Screen.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// M 切换音乐，N 切换音效
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		enabled := a.settingsManager.ToggleMusic()
		a.audioManager.SetMusicEnabled(enabled, config.MusicBackground)
		log.Printf("[App] Music enabled: %v", enabled)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		enabled := a.settingsManager.ToggleSound()
		log.Printf("[App] Sound enabled: %v", enabled)
	}

	// - / = 调整音量
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		a.adjustVolume(-volumeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		a.adjustVolume(volumeStep)
	}

	a.sceneManager.Update(a.gameConfig.FrameDelta())
	return nil
}

// adjustVolume 调整音乐和音效音量，正在播放的音乐立即生效
func (a *App) adjustVolume(delta float64) {
	music, sound := a.settingsManager.AdjustVolume(delta)
	a.audioManager.RefreshMusicVolume()
	log.Printf("[App] Volume: music=%.1f sound=%.1f", music, sound)
}

func (a *App) toggleFullscreen() {
	fullscreen := a.settingsManager.ToggleFullscreen()
	if fullscreen {
		ebiten.SetFullscreen(true)
		return
	}

	// 退出全屏
	ebiten.SetFullscreen(false)
	if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
		ebiten.RestoreWindow()
	}
	// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
	a.pendingWindowSizeReset = true
	a.windowSizeResetCountdown = 3
	log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.gameConfig.Screen.Width, a.gameConfig.Screen.Height
}

// GameConfig 返回加载的游戏参数（main 用于设置窗口）
func (a *App) GameConfig() *config.GameConfig {
	return a.gameConfig
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
