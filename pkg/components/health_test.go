package components

import "testing"

func TestHealthRatio(t *testing.T) {
	tests := []struct {
		name    string
		current int
		max     int
		want    float64
	}{
		{"满血", 100, 100, 1},
		{"半血", 50, 100, 0.5},
		{"一滴血", 1, 100, 0.01},
		{"死亡", 0, 100, 0},
		{"负值", -3, 100, 0},
		{"超出上限", 120, 100, 1},
		{"无上限", 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &HealthComponent{CurrentHealth: tt.current, MaxHealth: tt.max}
			if got := h.Ratio(); got != tt.want {
				t.Errorf("Ratio() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnumStrings(t *testing.T) {
	if BehaviorBoss.String() != "boss" || BehaviorEnemyBullet.String() != "enemy_bullet" {
		t.Error("unexpected behavior names")
	}
	if BehaviorType(99).String() != "unknown" {
		t.Error("out-of-range behavior should be unknown")
	}
	if EnemyTransport.String() != "transport" || EnemyVariant(9).String() != "unknown" {
		t.Error("unexpected variant names")
	}
}
