package game

import "testing"

func TestAudioManagerDisabledSound(t *testing.T) {
	sm, _ := NewSettingsManager(nil, nil)
	sm.SetSoundEnabled(false)
	am := NewAudioManager(NewResourceManager(nil), sm)

	if am.PlaySound("SOUND_ENEMY_DIE") {
		t.Error("PlaySound should report false when sound is disabled")
	}
}

func TestAudioManagerMissingResources(t *testing.T) {
	am := NewAudioManager(NewResourceManager(nil), nil)

	// 没有加载资源清单：播放失败但不 panic
	if am.PlaySound("SOUND_ENEMY_DIE") {
		t.Error("PlaySound should fail without a manifest")
	}
	if am.PlayMusic("MUSIC_BACKGROUND") {
		t.Error("PlayMusic should fail without a manifest")
	}
	if am.CurrentMusicID() != "" {
		t.Errorf("CurrentMusicID: got %q, want empty", am.CurrentMusicID())
	}

	// 关闭/打开音乐在没有当前音乐时是安全的
	am.SetMusicEnabled(false, "")
	am.SetMusicEnabled(true, "")
	am.StopMusic()
}

func TestAudioManagerDisabledMusic(t *testing.T) {
	sm, _ := NewSettingsManager(nil, nil)
	sm.SetMusicEnabled(false)
	am := NewAudioManager(NewResourceManager(nil), sm)

	if am.PlayMusic("MUSIC_BACKGROUND") {
		t.Error("PlayMusic should report false when music is disabled")
	}
}
