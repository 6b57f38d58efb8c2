package game

// ResourceConfig is the top-level resource manifest loaded from YAML (data/resources.yaml).
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  game:
//	    images: [...]
//	    sounds: [...]
//	    music: [...]
//	    fonts: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Manifest version
	BasePath string                   `yaml:"base_path"` // Prefix joined with every resource path (e.g., "assets")
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup is a collection of resources loaded together.
//
// Sounds are one-shot effects; Music entries are decoded as infinite loops.
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"`
	Sounds []SoundResource `yaml:"sounds"`
	Music  []SoundResource `yaml:"music"`
	Fonts  []FontResource  `yaml:"fonts"`
}

// ImageResource is a single image definition.
//
// Example:
//
//	- id: IMAGE_TANK
//	  path: images/tank.png
type ImageResource struct {
	ID   string `yaml:"id"`   // Resource ID (unique identifier)
	Path string `yaml:"path"` // Path relative to base_path; ".png" is appended when there is no extension
}

// SoundResource is a single audio definition (.mp3, .ogg or .wav).
//
// Example:
//
//	- id: SOUND_ENEMY_DIE
//	  path: sounds/EnemyDie.mp3
type SoundResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// FontResource is a TrueType/OpenType font definition.
//
// Example:
//
//	- id: FONT_HUD
//	  path: fonts/hud.ttf
//	  size: 28
type FontResource struct {
	ID   string  `yaml:"id"`
	Path string  `yaml:"path"`
	Size float64 `yaml:"size"` // Face size in pixels
}

// buildFullPath joins the base path with a resource's relative path.
//
// Examples:
//
//	buildFullPath("assets", "images/tank.png")  -> "assets/images/tank.png"
//	buildFullPath("assets", "/images/tank.png") -> "assets/images/tank.png"
//	buildFullPath("", "images/tank.png")        -> "images/tank.png"
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
