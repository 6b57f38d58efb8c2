package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 通过资源ID播放音效和背景音乐
//   - 按 SettingsManager 中的开关与音量控制播放
//
// 实现 systems.SoundPlayer，模拟逻辑只依赖 PlaySound(id)。
type AudioManager struct {
	resourceManager *ResourceManager         // 资源管理器（用于加载音频）
	settingsManager *SettingsManager         // 设置管理器（可为 nil，使用默认设置）
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（资源ID -> 播放器）
	musicPlayers    map[string]*audio.Player // 背景音乐播放器缓存（资源ID -> 播放器）
	currentMusic    *audio.Player            // 当前背景音乐
	currentMusicID  string                   // 当前背景音乐ID
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
		musicPlayers:    make(map[string]*audio.Player),
	}
}

// settings 返回当前设置，没有设置管理器时返回默认设置
func (am *AudioManager) settings() *GameSettings {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings()
	}
	return DefaultSettings()
}

// PlaySound 播放音效（单次）
//
// 参数：
//   - soundID: 音效资源ID（如 "SOUND_PLAYER_BULLET"）
//
// 返回：
//   - bool: 是否成功播放（音效关闭或资源不存在时为 false）
func (am *AudioManager) PlaySound(soundID string) bool {
	settings := am.settings()
	if !settings.SoundEnabled {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(settings.SoundVolume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// PlayMusic 循环播放背景音乐
// 同一时间只有一首背景音乐；已经在播放同一首时不重新开始
func (am *AudioManager) PlayMusic(musicID string) bool {
	settings := am.settings()
	if !settings.MusicEnabled {
		return false
	}

	if am.currentMusicID == musicID && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return true
	}

	am.StopMusic()

	player := am.getMusicPlayer(musicID)
	if player == nil {
		return false
	}

	player.SetVolume(settings.MusicVolume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind music %s: %v", musicID, err)
	}
	player.Play()

	am.currentMusic = player
	am.currentMusicID = musicID

	log.Printf("[AudioManager] Playing music: %s (volume: %.2f)", musicID, settings.MusicVolume)
	return true
}

// StopMusic 停止当前背景音乐
func (am *AudioManager) StopMusic() {
	if am.currentMusic != nil {
		am.currentMusic.Pause()
		am.currentMusic = nil
		am.currentMusicID = ""
	}
}

// SetMusicEnabled 打开或关闭背景音乐
// 关闭时暂停当前音乐；打开时从暂停处继续，没有当前音乐则播放 fallbackID
func (am *AudioManager) SetMusicEnabled(enabled bool, fallbackID string) {
	if !enabled {
		if am.currentMusic != nil {
			am.currentMusic.Pause()
		}
		return
	}
	if am.currentMusic != nil {
		am.currentMusic.SetVolume(am.settings().MusicVolume)
		am.currentMusic.Play()
		return
	}
	if fallbackID != "" {
		am.PlayMusic(fallbackID)
	}
}

// RefreshMusicVolume 把设置中的音乐音量应用到正在播放的音乐
// 音效每次播放时读取音量，不需要刷新
func (am *AudioManager) RefreshMusicVolume() {
	if am.currentMusic != nil {
		am.currentMusic.SetVolume(am.settings().MusicVolume)
	}
}

// CurrentMusicID 返回当前背景音乐ID（没有时为空字符串）
func (am *AudioManager) CurrentMusicID() string {
	return am.currentMusicID
}

// getSoundPlayer 获取或加载音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}

	player, err := am.resourceManager.LoadSoundEffectByID(soundID)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to load sound %s: %v", soundID, err)
		return nil
	}
	am.soundPlayers[soundID] = player
	return player
}

// getMusicPlayer 获取或加载音乐播放器
func (am *AudioManager) getMusicPlayer(musicID string) *audio.Player {
	if player, exists := am.musicPlayers[musicID]; exists {
		return player
	}

	player, err := am.resourceManager.LoadMusicByID(musicID)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to load music %s: %v", musicID, err)
		return nil
	}
	am.musicPlayers[musicID] = player
	return player
}
