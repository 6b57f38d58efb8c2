package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GameSettings 用户设置（音量、开关、全屏）
// 只有设置会被持久化，整局状态（分数、生命、关卡）从不保存
type GameSettings struct {
	// 音频设置
	MusicVolume  float64 `yaml:"musicVolume"`  // 音乐音量 0.0 ~ 1.0
	SoundVolume  float64 `yaml:"soundVolume"`  // 音效音量 0.0 ~ 1.0
	MusicEnabled bool    `yaml:"musicEnabled"` // 音乐开关
	SoundEnabled bool    `yaml:"soundEnabled"` // 音效开关

	// 显示设置
	Fullscreen bool `yaml:"fullscreen"` // 启动时是否全屏
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		MusicVolume:  0.5,
		SoundVolume:  1.0,
		MusicEnabled: true,
		SoundEnabled: true,
		Fullscreen:   false,
	}
}

// SettingsManager 设置管理器
// 负责用户设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	defaults     GameSettings   // 没有保存记录或记录损坏时使用
	settings     *GameSettings  // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//   - defaults: 默认设置（通常由游戏配置中的默认音量构造），nil 时使用 DefaultSettings()
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 保留给调用方统一处理，目前加载失败只记录日志
func NewSettingsManager(gdataManager *gdata.Manager, defaults *GameSettings) (*SettingsManager, error) {
	if defaults == nil {
		defaults = DefaultSettings()
	}
	sm := &SettingsManager{
		gdataManager: gdataManager,
		defaults:     *defaults,
	}
	sm.settings = sm.freshDefaults()

	// 加载失败不是致命错误，使用默认设置
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// freshDefaults 返回默认设置的副本
func (sm *SettingsManager) freshDefaults() *GameSettings {
	s := sm.defaults
	return &s
}

// Load 从 gdata 加载设置
// 如果 gdataManager 为 nil 或没有保存记录，使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = sm.freshDefaults()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = sm.freshDefaults()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = sm.freshDefaults()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 从默认值开始反序列化，旧版本记录缺少的字段保持默认
	loaded := sm.freshDefaults()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = sm.freshDefaults()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.MusicVolume = clampVolume(loaded.MusicVolume)
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetMusicVolume 设置音乐音量（限制在 0.0 ~ 1.0）
// 仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetMusicVolume(volume float64) {
	sm.settings.MusicVolume = clampVolume(volume)
}

// SetSoundVolume 设置音效音量（限制在 0.0 ~ 1.0）
// 仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

// AdjustVolume 同时调整音乐和音效音量并立即保存
// 结果限制在 0.0 ~ 1.0，返回调整后的音乐音量和音效音量
func (sm *SettingsManager) AdjustVolume(delta float64) (music, sound float64) {
	sm.SetMusicVolume(sm.settings.MusicVolume + delta)
	sm.SetSoundVolume(sm.settings.SoundVolume + delta)
	sm.saveOrWarn()
	return sm.settings.MusicVolume, sm.settings.SoundVolume
}

// SetMusicEnabled 设置音乐开关
func (sm *SettingsManager) SetMusicEnabled(enabled bool) {
	sm.settings.MusicEnabled = enabled
}

// SetSoundEnabled 设置音效开关
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// SetFullscreen 设置全屏模式
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// ToggleMusic 切换音乐开关并立即保存
// 返回切换后的状态
func (sm *SettingsManager) ToggleMusic() bool {
	sm.settings.MusicEnabled = !sm.settings.MusicEnabled
	sm.saveOrWarn()
	return sm.settings.MusicEnabled
}

// ToggleSound 切换音效开关并立即保存
func (sm *SettingsManager) ToggleSound() bool {
	sm.settings.SoundEnabled = !sm.settings.SoundEnabled
	sm.saveOrWarn()
	return sm.settings.SoundEnabled
}

// ToggleFullscreen 切换全屏并立即保存
func (sm *SettingsManager) ToggleFullscreen() bool {
	sm.settings.Fullscreen = !sm.settings.Fullscreen
	sm.saveOrWarn()
	return sm.settings.Fullscreen
}

// saveOrWarn 保存设置，失败只记录日志
func (sm *SettingsManager) saveOrWarn() {
	if err := sm.Save(); err != nil {
		log.Printf("[SettingsManager] Warning: %v", err)
	}
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
