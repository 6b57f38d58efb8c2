package game

import "testing"

func TestBuildFullPath(t *testing.T) {
	tests := []struct {
		name     string
		basePath string
		relPath  string
		want     string
	}{
		{"normal", "assets", "images/tank.png", "assets/images/tank.png"},
		{"leading slash", "assets", "/images/tank.png", "assets/images/tank.png"},
		{"empty base", "", "images/tank.png", "images/tank.png"},
		{"nested base", "data/assets", "sounds/EnemyDie.mp3", "data/assets/sounds/EnemyDie.mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildFullPath(tt.basePath, tt.relPath); got != tt.want {
				t.Errorf("buildFullPath(%q, %q) = %q, want %q", tt.basePath, tt.relPath, got, tt.want)
			}
		})
	}
}
