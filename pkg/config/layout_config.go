package config

// 布局与资源ID常量

// 逻辑画布尺寸
const (
	GameWindowWidth  = 800
	GameWindowHeight = 600
)

// HUD 布局
const (
	// HUDTextX HUD 文字左边距
	HUDTextX = 10.0
	// HUDScoreY / HUDLivesY / HUDLevelY 三行 HUD 文字的顶边Y坐标
	HUDScoreY = 10.0
	HUDLivesY = 40.0
	HUDLevelY = 70.0
	// HUDTextScale HUD 文字缩放（位图字体较小）
	HUDTextScale = 2.0

	// BossBarWidth / BossBarHeight Boss 血条尺寸，水平居中、顶边在 BossBarY
	BossBarWidth  = 200.0
	BossBarHeight = 20.0
	BossBarY      = 10.0

	// OverlayTitleScale 结算标题缩放
	OverlayTitleScale = 4.0
	// OverlayHintScale 结算提示缩放
	OverlayHintScale = 2.0
)

// 图片资源ID（data/resources.yaml）
const (
	ImageBackground = "IMAGE_BACKGROUND"
	ImageTank       = "IMAGE_TANK"
	ImageHelicopter = "IMAGE_HELICOPTER"
	ImageTransport  = "IMAGE_TRANSPORT"
	ImageAircraft2  = "IMAGE_AIRCRAFT2"
	ImageAircraft3  = "IMAGE_AIRCRAFT3"
	ImageBoss       = "IMAGE_BOSS"
)

// 音频资源ID（data/resources.yaml）
const (
	SoundPlayerBullet = "SOUND_PLAYER_BULLET"
	SoundEnemyBullet  = "SOUND_ENEMY_BULLET"
	SoundEnemyDie     = "SOUND_ENEMY_DIE"
	SoundGameOver     = "SOUND_GAME_OVER"
	MusicBackground   = "MUSIC_BACKGROUND"
)

// FontHUD 可选的 HUD 字体资源ID，清单中没有时使用内置位图字体
const FontHUD = "FONT_HUD"

// ResourceGroupGame 游戏启动时加载的资源组
const ResourceGroupGame = "game"
