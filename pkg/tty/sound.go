package tty

import (
	"fmt"
	"sync"
	"time"

	"github.com/decker502/tanksurvive/pkg/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// cue 一个合成音效：正弦波频率与时长
type cue struct {
	freq     float64
	duration time.Duration
}

// cues 终端模式下各音效ID对应的合成音
var cues = map[string]cue{
	config.SoundPlayerBullet: {freq: 880, duration: 40 * time.Millisecond},
	config.SoundEnemyBullet:  {freq: 440, duration: 60 * time.Millisecond},
	config.SoundEnemyDie:     {freq: 220, duration: 120 * time.Millisecond},
	config.SoundGameOver:     {freq: 110, duration: 600 * time.Millisecond},
}

// Beeper 用 beep 合成的正弦音代替音频文件，实现 systems.SoundPlayer
// speaker 初始化失败或静音时 PlaySound 什么也不做
type Beeper struct {
	mu          sync.Mutex
	initialized bool
	muted       bool
	mixer       *beep.Mixer
}

// NewBeeper 创建合成音效播放器（尚未打开音频设备）
func NewBeeper(muted bool) *Beeper {
	return &Beeper{
		muted: muted,
		mixer: &beep.Mixer{},
	}
}

// Initialize 打开音频设备
// 失败不是致命错误，调用方记录日志后继续以静音运行
func (b *Beeper) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized || b.muted {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Close 关闭音频设备
func (b *Beeper) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	b.initialized = false
}

// PlaySound 播放音效ID对应的合成音
func (b *Beeper) PlaySound(soundID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized || b.muted {
		return false
	}
	c, ok := cues[soundID]
	if !ok {
		return false
	}
	streamer, err := newCueStreamer(c)
	if err != nil {
		return false
	}

	speaker.Lock()
	b.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// newCueStreamer 生成一段固定长度、音量减半的正弦音
func newCueStreamer(c cue) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, c.freq)
	if err != nil {
		return nil, fmt.Errorf("failed to create %.0fHz tone: %w", c.freq, err)
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(c.duration), sine),
		Base:     2,
		Volume:   -1,
	}, nil
}
