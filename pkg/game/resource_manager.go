package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder (background)
	_ "image/png"  // Register PNG decoder
	"io"
	"path/filepath"
	"strings"

	"github.com/decker502/tanksurvive/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"gopkg.in/yaml.v3"
)

// ResourceManager is responsible for centralized management of game resources.
// It loads images, audio and fonts through the embedded package and caches them,
// so every resource is decoded once and reused.
//
// Resources are normally addressed by ID through the YAML manifest
// (LoadResourceConfig + LoadResourceGroup); the path-based methods remain
// available for one-off files.
//
// This implementation is NOT thread-safe. All loading happens on the game goroutine.
//
// Usage:
//
//	rm := NewResourceManager(audio.NewContext(48000))
//	if err := rm.LoadResourceConfig("data/resources.yaml"); err != nil {
//	    return err
//	}
//	if err := rm.LoadResourceGroup("game"); err != nil {
//	    return err
//	}
//	tank := rm.GetImageByID("IMAGE_TANK")
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image    // path -> Image
	audioCache    map[string]*audio.Player    // path -> Player
	fontFaceCache map[string]*text.GoTextFace // "path:size" -> face
	audioContext  *audio.Context              // nil disables audio loading

	config      *ResourceConfig    // Parsed manifest
	resourceMap map[string]string  // Resource ID -> full path
	fontSizes   map[string]float64 // Font resource ID -> size
}

// NewResourceManager creates a ResourceManager with empty caches.
//
// Parameters:
//   - audioContext: The global audio context used for decoding audio. May be nil,
//     in which case every audio load returns an error.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		audioCache:    make(map[string]*audio.Player),
		fontFaceCache: make(map[string]*text.GoTextFace),
		audioContext:  audioContext,
		resourceMap:   make(map[string]string),
		fontSizes:     make(map[string]float64),
	}
}

// LoadImage loads an image (PNG or JPEG) from the specified path and caches it.
// If the image has already been loaded, the cached version is returned.
//
// Parameters:
//   - path: e.g. "assets/images/tank.png"
//
// Returns:
//   - The loaded ebiten.Image
//   - An error if the file cannot be read or decoded
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// GetImage returns a previously loaded image, or nil if it was never loaded.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// decodedStream is what the mp3, vorbis and wav decoders return.
type decodedStream interface {
	io.ReadSeeker
	Length() int64
}

// decodeAudio reads and decodes an audio file, choosing the decoder by extension.
// Supported formats: .mp3, .ogg, .wav
func (rm *ResourceManager) decodeAudio(path string) (decodedStream, error) {
	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio context not available for %s", path)
	}

	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file %s: %w", path, err)
	}
	// Decode from memory so the stream can seek without keeping a file open
	reader := bytes.NewReader(data)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		stream, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return stream, nil
	case ".ogg":
		stream, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return stream, nil
	case ".wav":
		stream, err := wav.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", path, err)
		}
		return stream, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .wav)", ext)
	}
}

// LoadAudio loads a looping audio track (background music) and caches its player.
// The returned player is ready but not started.
func (rm *ResourceManager) LoadAudio(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}

	stream, err := rm.decodeAudio(path)
	if err != nil {
		return nil, err
	}

	loopStream := audio.NewInfiniteLoop(stream, stream.Length())
	player, err := rm.audioContext.NewPlayer(loopStream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// LoadSoundEffect loads a one-shot sound effect and caches its player.
// Unlike LoadAudio the stream is NOT looped; callers Rewind before each Play.
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}

	stream, err := rm.decodeAudio(path)
	if err != nil {
		return nil, err
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// GetAudioPlayer returns a previously loaded audio player, or nil.
func (rm *ResourceManager) GetAudioPlayer(path string) *audio.Player {
	return rm.audioCache[path]
}

// LoadFont loads a TrueType/OpenType font and creates a face of the given size.
// Faces are cached per (path, size).
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	fontData, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

// LoadResourceConfig reads and parses the YAML resource manifest.
//
// Parameters:
//   - configPath: e.g. "data/resources.yaml"
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := embedded.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}

	rm.config = &config
	rm.buildResourceMap()
	return nil
}

// buildResourceMap builds the resource ID -> full path mapping.
//
//	IMAGE_TANK      -> assets/images/tank.png
//	SOUND_GAME_OVER -> assets/sounds/GameOver.mp3
func (rm *ResourceManager) buildResourceMap() {
	rm.resourceMap = make(map[string]string)
	rm.fontSizes = make(map[string]float64)
	if rm.config == nil {
		return
	}

	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			fullPath := buildFullPath(rm.config.BasePath, img.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".png"
			}
			rm.resourceMap[img.ID] = fullPath
		}

		for _, sounds := range [][]SoundResource{group.Sounds, group.Music} {
			for _, sound := range sounds {
				fullPath := buildFullPath(rm.config.BasePath, sound.Path)
				if filepath.Ext(fullPath) == "" {
					fullPath += ".mp3"
				}
				rm.resourceMap[sound.ID] = fullPath
			}
		}

		for _, font := range group.Fonts {
			rm.resourceMap[font.ID] = buildFullPath(rm.config.BasePath, font.Path)
			rm.fontSizes[font.ID] = font.Size
		}
	}
}

// ResourcePath returns the full path registered for a resource ID.
func (rm *ResourceManager) ResourcePath(resourceID string) (string, bool) {
	path, ok := rm.resourceMap[resourceID]
	return path, ok
}

// HasResource reports whether the manifest declares the resource ID.
func (rm *ResourceManager) HasResource(resourceID string) bool {
	_, ok := rm.resourceMap[resourceID]
	return ok
}

// lookup resolves a resource ID to its path, failing when no manifest is loaded.
func (rm *ResourceManager) lookup(resourceID string) (string, error) {
	if rm.config == nil {
		return "", fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}
	path, exists := rm.resourceMap[resourceID]
	if !exists {
		return "", fmt.Errorf("resource ID not found: %s", resourceID)
	}
	return path, nil
}

// LoadImageByID loads an image using its resource ID.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	path, err := rm.lookup(resourceID)
	if err != nil {
		return nil, err
	}
	return rm.LoadImage(path)
}

// GetImageByID returns a previously loaded image by resource ID, or nil.
func (rm *ResourceManager) GetImageByID(resourceID string) *ebiten.Image {
	path, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil
	}
	return rm.GetImage(path)
}

// LoadSoundEffectByID loads a one-shot sound effect by resource ID.
func (rm *ResourceManager) LoadSoundEffectByID(resourceID string) (*audio.Player, error) {
	path, err := rm.lookup(resourceID)
	if err != nil {
		return nil, err
	}
	return rm.LoadSoundEffect(path)
}

// LoadMusicByID loads a looping music track by resource ID.
func (rm *ResourceManager) LoadMusicByID(resourceID string) (*audio.Player, error) {
	path, err := rm.lookup(resourceID)
	if err != nil {
		return nil, err
	}
	return rm.LoadAudio(path)
}

// LoadFontByID loads a font face using the size declared in the manifest.
func (rm *ResourceManager) LoadFontByID(resourceID string) (*text.GoTextFace, error) {
	path, err := rm.lookup(resourceID)
	if err != nil {
		return nil, err
	}
	size := rm.fontSizes[resourceID]
	if size <= 0 {
		return nil, fmt.Errorf("font %s: size must be positive, got %v", resourceID, size)
	}
	return rm.LoadFont(path, size)
}

// LoadResourceGroup loads every resource of a manifest group.
// Any missing or undecodable file aborts the load with an error.
//
// Example:
//
//	if err := rm.LoadResourceGroup("game"); err != nil {
//	    log.Fatal("Failed to load game resources:", err)
//	}
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	group, exists := rm.config.Groups[groupName]
	if !exists {
		return fmt.Errorf("resource group not found: %s", groupName)
	}

	for _, img := range group.Images {
		if _, err := rm.LoadImageByID(img.ID); err != nil {
			return fmt.Errorf("failed to load image %s in group %s: %w", img.ID, groupName, err)
		}
	}

	for _, sound := range group.Sounds {
		if _, err := rm.LoadSoundEffectByID(sound.ID); err != nil {
			return fmt.Errorf("failed to load sound %s in group %s: %w", sound.ID, groupName, err)
		}
	}

	for _, music := range group.Music {
		if _, err := rm.LoadMusicByID(music.ID); err != nil {
			return fmt.Errorf("failed to load music %s in group %s: %w", music.ID, groupName, err)
		}
	}

	for _, font := range group.Fonts {
		if _, err := rm.LoadFontByID(font.ID); err != nil {
			return fmt.Errorf("failed to load font %s in group %s: %w", font.ID, groupName, err)
		}
	}

	return nil
}
