package config

import (
	"fmt"

	"github.com/decker502/tanksurvive/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultGameConfigPath 内置游戏参数文件路径（编译进二进制）
const DefaultGameConfigPath = "data/game.yaml"

// ScreenConfig 画布与帧率配置
type ScreenConfig struct {
	Width  int    `yaml:"width"`  // 逻辑画布宽度（像素）
	Height int    `yaml:"height"` // 逻辑画布高度（像素）
	TPS    int    `yaml:"tps"`    // 每秒逻辑帧数
	Title  string `yaml:"title"`  // 窗口标题
}

// PlayerConfig 玩家坦克配置
type PlayerConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Speed   float64 `yaml:"speed"`   // 水平移动速度（像素/帧）
	CenterX float64 `yaml:"centerX"` // 初始中心点X
	CenterY float64 `yaml:"centerY"` // 初始中心点Y（整局不变）
}

// BulletConfig 子弹配置（玩家与敌方子弹尺寸相同）
type BulletConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	PlayerSpeed float64 `yaml:"playerSpeed"` // 玩家子弹向上速度（像素/帧）
	EnemySpeed  float64 `yaml:"enemySpeed"`  // 敌方子弹向下速度（像素/帧）
}

// EnemyConfig 普通敌机配置
type EnemyConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	BaseSpeed float64 `yaml:"baseSpeed"` // 第 1 关下落速度（像素/帧）
	// SpawnOdds 每帧生成概率的倒数：每帧以 1/SpawnOdds 的概率生成一架敌机
	SpawnOdds int `yaml:"spawnOdds"`
	// FireLineY 敌机顶边到达该Y坐标时射击（只射击一次）
	FireLineY float64 `yaml:"fireLineY"`
}

// BossConfig Boss 配置
type BossConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	CenterY        float64 `yaml:"centerY"`        // 生成时中心点Y（X 取画布中心）
	Speed          float64 `yaml:"speed"`          // 水平速度（像素/帧）
	FlipChance     float64 `yaml:"flipChance"`     // 每帧随机换向概率
	Health         int     `yaml:"health"`         // 初始生命值
	FireIntervalMs float64 `yaml:"fireIntervalMs"` // 射击间隔（毫秒，严格大于）
}

// RulesConfig 计分与关卡规则
type RulesConfig struct {
	StartLives      int     `yaml:"startLives"`
	StartLevel      int     `yaml:"startLevel"`
	MaxLevel        int     `yaml:"maxLevel"`        // 关卡超过该值即获胜
	MilestoneScore  int     `yaml:"milestoneScore"`  // 分数为其正整数倍时升级并召唤 Boss
	SpeedMultiplier float64 `yaml:"speedMultiplier"` // 每次分数升级时敌机速度倍率
	EnemyKillScore  int     `yaml:"enemyKillScore"`
	BossHitScore    int     `yaml:"bossHitScore"`
}

// EffectsConfig 视觉效果配置
type EffectsConfig struct {
	HitFlashSeconds   float64 `yaml:"hitFlashSeconds"`   // 击中闪光持续时间（秒）
	HitFlashSize      float64 `yaml:"hitFlashSize"`      // 击中闪光边长（像素）
	HitFlashIntensity float64 `yaml:"hitFlashIntensity"` // 初始不透明度 0-1
}

// AudioConfig 默认音量（用户设置未保存时使用）
type AudioConfig struct {
	MusicVolume float64 `yaml:"musicVolume"`
	SoundVolume float64 `yaml:"soundVolume"`
}

// GameConfig 游戏参数配置文件结构
type GameConfig struct {
	Screen  ScreenConfig  `yaml:"screen"`
	Player  PlayerConfig  `yaml:"player"`
	Bullet  BulletConfig  `yaml:"bullet"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Boss    BossConfig    `yaml:"boss"`
	Rules   RulesConfig   `yaml:"rules"`
	Effects EffectsConfig `yaml:"effects"`
	Audio   AudioConfig   `yaml:"audio"`
}

// DefaultGameConfig 返回默认游戏参数
// 数值即 data/game.yaml 中的数值，文件缺少某个字段时使用这里的值
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Screen: ScreenConfig{
			Width:  GameWindowWidth,
			Height: GameWindowHeight,
			TPS:    60,
			Title:  "Aircraft Fighter",
		},
		Player: PlayerConfig{
			Width:   64,
			Height:  64,
			Speed:   5,
			CenterX: GameWindowWidth / 2,
			CenterY: GameWindowHeight - 50,
		},
		Bullet: BulletConfig{
			Width:       5,
			Height:      10,
			PlayerSpeed: 7,
			EnemySpeed:  5,
		},
		Enemy: EnemyConfig{
			Width:     50,
			Height:    50,
			BaseSpeed: 1,
			SpawnOdds: 50,
			FireLineY: 50,
		},
		Boss: BossConfig{
			Width:          100,
			Height:         100,
			CenterY:        50,
			Speed:          3,
			FlipChance:     0.02,
			Health:         100,
			FireIntervalMs: 4000,
		},
		Rules: RulesConfig{
			StartLives:      3,
			StartLevel:      1,
			MaxLevel:        3,
			MilestoneScore:  50,
			SpeedMultiplier: 1.5,
			EnemyKillScore:  1,
			BossHitScore:    10,
		},
		Effects: EffectsConfig{
			HitFlashSeconds:   0.25,
			HitFlashSize:      24,
			HitFlashIntensity: 0.8,
		},
		Audio: AudioConfig{
			MusicVolume: 0.5,
			SoundVolume: 1.0,
		},
	}
}

// LoadGameConfig 从 YAML 文件加载游戏参数
// 文件内容覆盖在默认值之上，然后进行校验
//
// 参数：
//
//	filepath - 配置文件路径（"data/..." 从内置数据读取，其他路径从磁盘读取）
//
// 返回：
//
//	*GameConfig - 解析后的配置对象
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadGameConfig(filepath string) (*GameConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", filepath, err)
	}

	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid game config in %s: %w", filepath, err)
	}
	return cfg, nil
}

// ParseGameConfig 解析 YAML 内容（覆盖在默认值之上）并校验
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}
	if err := validateGameConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validateGameConfig 验证游戏参数的合法性
func validateGameConfig(cfg *GameConfig) error {
	if cfg.Screen.Width <= 0 || cfg.Screen.Height <= 0 {
		return fmt.Errorf("screen: width and height must be positive, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Screen.TPS <= 0 {
		return fmt.Errorf("screen: tps must be positive, got %d", cfg.Screen.TPS)
	}

	if cfg.Player.Width <= 0 || cfg.Player.Height <= 0 {
		return fmt.Errorf("player: width and height must be positive")
	}
	if cfg.Player.Width > float64(cfg.Screen.Width) {
		return fmt.Errorf("player: width %.0f exceeds screen width %d", cfg.Player.Width, cfg.Screen.Width)
	}
	if cfg.Player.Speed <= 0 {
		return fmt.Errorf("player: speed must be positive, got %v", cfg.Player.Speed)
	}
	// 初始坦克矩形必须完整位于画布内
	left := cfg.Player.CenterX - cfg.Player.Width/2
	top := cfg.Player.CenterY - cfg.Player.Height/2
	if left < 0 || left+cfg.Player.Width > float64(cfg.Screen.Width) ||
		top < 0 || top+cfg.Player.Height > float64(cfg.Screen.Height) {
		return fmt.Errorf("player: centerX/centerY (%.0f, %.0f) puts the %.0fx%.0f tank outside the %dx%d screen",
			cfg.Player.CenterX, cfg.Player.CenterY, cfg.Player.Width, cfg.Player.Height, cfg.Screen.Width, cfg.Screen.Height)
	}

	if cfg.Bullet.Width <= 0 || cfg.Bullet.Height <= 0 {
		return fmt.Errorf("bullet: width and height must be positive")
	}
	if cfg.Bullet.PlayerSpeed <= 0 || cfg.Bullet.EnemySpeed <= 0 {
		return fmt.Errorf("bullet: speeds must be positive")
	}

	if cfg.Enemy.Width <= 0 || cfg.Enemy.Height <= 0 {
		return fmt.Errorf("enemy: width and height must be positive")
	}
	if cfg.Enemy.Width > float64(cfg.Screen.Width) {
		return fmt.Errorf("enemy: width %.0f exceeds screen width %d", cfg.Enemy.Width, cfg.Screen.Width)
	}
	if cfg.Enemy.BaseSpeed <= 0 {
		return fmt.Errorf("enemy: baseSpeed must be positive, got %v", cfg.Enemy.BaseSpeed)
	}
	if cfg.Enemy.SpawnOdds < 1 {
		return fmt.Errorf("enemy: spawnOdds must be at least 1, got %d", cfg.Enemy.SpawnOdds)
	}

	if cfg.Boss.Width <= 0 || cfg.Boss.Height <= 0 {
		return fmt.Errorf("boss: width and height must be positive")
	}
	if cfg.Boss.Width > float64(cfg.Screen.Width) {
		return fmt.Errorf("boss: width %.0f exceeds screen width %d", cfg.Boss.Width, cfg.Screen.Width)
	}
	if cfg.Boss.Speed <= 0 {
		return fmt.Errorf("boss: speed must be positive, got %v", cfg.Boss.Speed)
	}
	if cfg.Boss.FlipChance < 0 || cfg.Boss.FlipChance > 1 {
		return fmt.Errorf("boss: flipChance must be in [0, 1], got %v", cfg.Boss.FlipChance)
	}
	if cfg.Boss.Health < 1 {
		return fmt.Errorf("boss: health must be at least 1, got %d", cfg.Boss.Health)
	}
	if cfg.Boss.FireIntervalMs < 0 {
		return fmt.Errorf("boss: fireIntervalMs cannot be negative, got %v", cfg.Boss.FireIntervalMs)
	}

	if cfg.Rules.StartLives < 1 {
		return fmt.Errorf("rules: startLives must be at least 1, got %d", cfg.Rules.StartLives)
	}
	if cfg.Rules.StartLevel < 1 {
		return fmt.Errorf("rules: startLevel must be at least 1, got %d", cfg.Rules.StartLevel)
	}
	if cfg.Rules.MaxLevel < cfg.Rules.StartLevel {
		return fmt.Errorf("rules: maxLevel %d is below startLevel %d", cfg.Rules.MaxLevel, cfg.Rules.StartLevel)
	}
	if cfg.Rules.MilestoneScore < 2 {
		return fmt.Errorf("rules: milestoneScore must be at least 2, got %d", cfg.Rules.MilestoneScore)
	}
	if cfg.Rules.SpeedMultiplier < 1 {
		return fmt.Errorf("rules: speedMultiplier must be at least 1, got %v", cfg.Rules.SpeedMultiplier)
	}
	if cfg.Rules.EnemyKillScore < 0 || cfg.Rules.BossHitScore < 0 {
		return fmt.Errorf("rules: scores cannot be negative")
	}

	if cfg.Effects.HitFlashSeconds < 0 {
		return fmt.Errorf("effects: hitFlashSeconds cannot be negative, got %v", cfg.Effects.HitFlashSeconds)
	}

	if cfg.Audio.MusicVolume < 0 || cfg.Audio.MusicVolume > 1 {
		return fmt.Errorf("audio: musicVolume must be in [0, 1], got %v", cfg.Audio.MusicVolume)
	}
	if cfg.Audio.SoundVolume < 0 || cfg.Audio.SoundVolume > 1 {
		return fmt.Errorf("audio: soundVolume must be in [0, 1], got %v", cfg.Audio.SoundVolume)
	}

	return nil
}

// FrameDelta 返回一帧的时长（秒）
func (c *GameConfig) FrameDelta() float64 {
	return 1.0 / float64(c.Screen.TPS)
}

// BossCenterX 返回 Boss 生成时的中心点X（画布中心）
func (c *GameConfig) BossCenterX() float64 {
	return float64(c.Screen.Width) / 2
}
