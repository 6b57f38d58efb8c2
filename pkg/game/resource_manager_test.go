package game

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/tanksurvive/pkg/embedded"
)

const testManifest = `
version: "1.0"
base_path: assets
groups:
  game:
    images:
      - id: IMAGE_TANK
        path: images/tank.png
      - id: IMAGE_BOSS
        path: images/boss
  broken:
    images:
      - id: IMAGE_MISSING
        path: images/missing.png
  noisy:
    sounds:
      - id: SOUND_ENEMY_DIE
        path: sounds/EnemyDie.mp3
    music:
      - id: MUSIC_BACKGROUND
        path: sounds/background_music
    fonts:
      - id: FONT_HUD
        path: fonts/hud.ttf
        size: 28
`

// encodeTestPNG creates a small solid PNG for testing purposes.
func encodeTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	blue := color.RGBA{R: 0, G: 0, B: 255, A: 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, blue)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

// initTestResources 初始化 embedded 文件系统（内存）
func initTestResources(t *testing.T) {
	t.Helper()
	data := fstest.MapFS{
		"data/resources.yaml": &fstest.MapFile{Data: []byte(testManifest)},
	}
	assets := fstest.MapFS{
		"images/tank.png":   &fstest.MapFile{Data: encodeTestPNG(t, 64, 64)},
		"images/boss.png":   &fstest.MapFile{Data: encodeTestPNG(t, 100, 100)},
		"images/broken.png": &fstest.MapFile{Data: []byte("not a valid png")},
	}
	embedded.Init(data, assets)
}

func TestNewResourceManager(t *testing.T) {
	rm := NewResourceManager(nil)
	if rm == nil {
		t.Fatal("NewResourceManager returned nil")
	}
	if rm.imageCache == nil || rm.audioCache == nil || rm.fontFaceCache == nil {
		t.Error("caches must be initialized")
	}
}

func TestLoadResourceConfigBuildsMap(t *testing.T) {
	initTestResources(t)
	rm := NewResourceManager(nil)

	if err := rm.LoadResourceConfig("data/resources.yaml"); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}

	tests := []struct {
		id   string
		want string
	}{
		{"IMAGE_TANK", "assets/images/tank.png"},
		{"IMAGE_BOSS", "assets/images/boss.png"},
		{"SOUND_ENEMY_DIE", "assets/sounds/EnemyDie.mp3"},
		{"MUSIC_BACKGROUND", "assets/sounds/background_music.mp3"},
		{"FONT_HUD", "assets/fonts/hud.ttf"},
	}
	for _, tt := range tests {
		got, ok := rm.ResourcePath(tt.id)
		if !ok {
			t.Errorf("%s not registered", tt.id)
			continue
		}
		if got != tt.want {
			t.Errorf("ResourcePath(%s) = %q, want %q", tt.id, got, tt.want)
		}
	}

	if rm.fontSizes["FONT_HUD"] != 28 {
		t.Errorf("font size: got %v, want 28", rm.fontSizes["FONT_HUD"])
	}
	if rm.HasResource("IMAGE_UNKNOWN") {
		t.Error("unknown ID should not be registered")
	}
}

func TestLoadResourceConfigMissingFile(t *testing.T) {
	initTestResources(t)
	rm := NewResourceManager(nil)

	err := rm.LoadResourceConfig("data/missing.yaml")
	if err == nil {
		t.Fatal("expected error for missing manifest")
	}
	if !strings.Contains(err.Error(), "failed to read resource config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadImageByIDCaches(t *testing.T) {
	initTestResources(t)
	rm := NewResourceManager(nil)
	if err := rm.LoadResourceConfig("data/resources.yaml"); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}

	img1, err := rm.LoadImageByID("IMAGE_TANK")
	if err != nil {
		t.Fatalf("LoadImageByID failed: %v", err)
	}
	bounds := img1.Bounds()
	if bounds.Dx() != 64 || bounds.Dy() != 64 {
		t.Errorf("Image dimensions incorrect: got %dx%d, want 64x64", bounds.Dx(), bounds.Dy())
	}

	img2, err := rm.LoadImageByID("IMAGE_TANK")
	if err != nil {
		t.Fatalf("second LoadImageByID failed: %v", err)
	}
	if img1 != img2 {
		t.Error("Images are not cached - different instances returned")
	}
	if rm.GetImageByID("IMAGE_TANK") != img1 {
		t.Error("GetImageByID should return the cached image")
	}
}

func TestLoadImageErrors(t *testing.T) {
	initTestResources(t)
	rm := NewResourceManager(nil)

	if _, err := rm.LoadImageByID("IMAGE_TANK"); err == nil {
		t.Error("LoadImageByID before LoadResourceConfig should fail")
	}
	if _, err := rm.LoadImage("assets/images/nonexistent.png"); err == nil {
		t.Error("Expected error for non-existent file")
	}
	if _, err := rm.LoadImage("assets/images/broken.png"); err == nil {
		t.Error("Expected error for invalid image format")
	}
}

func TestLoadResourceGroup(t *testing.T) {
	initTestResources(t)
	rm := NewResourceManager(nil)
	if err := rm.LoadResourceConfig("data/resources.yaml"); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}

	t.Run("all images present", func(t *testing.T) {
		if err := rm.LoadResourceGroup("game"); err != nil {
			t.Fatalf("LoadResourceGroup(game) failed: %v", err)
		}
		if rm.GetImageByID("IMAGE_BOSS") == nil {
			t.Error("IMAGE_BOSS should be loaded")
		}
	})

	t.Run("missing image is fatal", func(t *testing.T) {
		err := rm.LoadResourceGroup("broken")
		if err == nil {
			t.Fatal("expected error for missing image")
		}
		if !strings.Contains(err.Error(), "IMAGE_MISSING") {
			t.Errorf("error should name the resource: %v", err)
		}
	})

	t.Run("no audio device", func(t *testing.T) {
		err := rm.LoadResourceGroup("noisy")
		if err == nil {
			t.Fatal("expected error without audio context")
		}
		if !strings.Contains(err.Error(), "audio context not available") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("unknown group", func(t *testing.T) {
		if err := rm.LoadResourceGroup("nope"); err == nil {
			t.Error("expected error for unknown group")
		}
	})
}
