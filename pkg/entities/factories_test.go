package entities

import (
	"testing"

	"github.com/decker502/tanksurvive/pkg/components"
	"github.com/decker502/tanksurvive/pkg/config"
	"github.com/decker502/tanksurvive/pkg/ecs"
)

func position(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.PositionComponent {
	t.Helper()
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no PositionComponent", id)
	}
	return pos
}

func TestNewPlayer(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()

	id, err := NewPlayer(em, cfg)
	if err != nil {
		t.Fatalf("NewPlayer() error = %v", err)
	}

	pos := position(t, em, id)
	// 中心 (400, 550)，64x64
	if pos.X != 368 || pos.Y != 518 {
		t.Errorf("player position = (%v, %v), want (368, 518)", pos.X, pos.Y)
	}

	col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
	if col.Width != 64 || col.Height != 64 {
		t.Errorf("player size = %vx%v, want 64x64", col.Width, col.Height)
	}
	if !ecs.HasComponent[*components.PlayerComponent](em, id) {
		t.Error("player should have PlayerComponent")
	}
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	if sprite.ImageID != config.ImageTank {
		t.Errorf("ImageID = %q, want %q", sprite.ImageID, config.ImageTank)
	}
}

func TestNewEnemy(t *testing.T) {
	cfg := config.DefaultGameConfig()

	tests := []struct {
		name    string
		variant components.EnemyVariant
		centerX float64
		wantX   float64
		wantImg string
	}{
		{"直升机在左边界", components.EnemyHelicopter, 0, -25, config.ImageHelicopter},
		{"运输机在中间", components.EnemyTransport, 400, 375, config.ImageTransport},
		{"战机2在最右", components.EnemyAircraft2, 750, 725, config.ImageAircraft2},
		{"战机3", components.EnemyAircraft3, 100, 75, config.ImageAircraft3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			id, err := NewEnemy(em, cfg, tt.variant, tt.centerX)
			if err != nil {
				t.Fatalf("NewEnemy() error = %v", err)
			}

			pos := position(t, em, id)
			if pos.X != tt.wantX || pos.Y != -25 {
				t.Errorf("enemy position = (%v, %v), want (%v, -25)", pos.X, pos.Y, tt.wantX)
			}

			enemy, ok := ecs.GetComponent[*components.EnemyComponent](em, id)
			if !ok {
				t.Fatal("enemy should have EnemyComponent")
			}
			if enemy.HasFired {
				t.Error("new enemy should not have fired")
			}
			if enemy.Variant != tt.variant {
				t.Errorf("Variant = %v, want %v", enemy.Variant, tt.variant)
			}

			sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
			if sprite.ImageID != tt.wantImg {
				t.Errorf("ImageID = %q, want %q", sprite.ImageID, tt.wantImg)
			}
			if ecs.HasComponent[*components.VelocityComponent](em, id) {
				t.Error("enemies move at the run-wide speed and carry no velocity")
			}
		})
	}

	t.Run("非法外观", func(t *testing.T) {
		em := ecs.NewEntityManager()
		if _, err := NewEnemy(em, cfg, components.EnemyVariantCount, 100); err == nil {
			t.Error("expected error for invalid variant")
		}
		if em.EntityCount() != 0 {
			t.Error("no entity should be created on error")
		}
	})
}

func TestNewBoss(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()

	id, err := NewBoss(em, cfg, -1, 1234)
	if err != nil {
		t.Fatalf("NewBoss() error = %v", err)
	}

	pos := position(t, em, id)
	// 中心 (400, 50)，100x100
	if pos.X != 350 || pos.Y != 0 {
		t.Errorf("boss position = (%v, %v), want (350, 0)", pos.X, pos.Y)
	}

	health, ok := ecs.GetComponent[*components.HealthComponent](em, id)
	if !ok || health.CurrentHealth != 100 || health.MaxHealth != 100 {
		t.Errorf("boss health = %+v, want 100/100", health)
	}

	boss, _ := ecs.GetComponent[*components.BossComponent](em, id)
	if boss.Direction != -1 || boss.LastShotMs != 1234 {
		t.Errorf("boss state = %+v, want direction -1 and last shot 1234", boss)
	}

	if _, err := NewBoss(em, cfg, 0, 0); err == nil {
		t.Error("expected error for zero direction")
	}
}

func TestNewBullets(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()
	owner := em.CreateEntity()

	t.Run("玩家子弹", func(t *testing.T) {
		id, err := NewPlayerBullet(em, cfg, owner, 400, 518)
		if err != nil {
			t.Fatalf("NewPlayerBullet() error = %v", err)
		}
		pos := position(t, em, id)
		if pos.X != 397.5 || pos.Y != 518 {
			t.Errorf("position = (%v, %v), want (397.5, 518)", pos.X, pos.Y)
		}
		vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
		if vel.VY != -7 {
			t.Errorf("VY = %v, want -7", vel.VY)
		}
		behavior, _ := ecs.GetComponent[*components.BehaviorComponent](em, id)
		if behavior.Type != components.BehaviorPlayerBullet {
			t.Errorf("behavior = %v, want player_bullet", behavior.Type)
		}
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
		if proj.OwnerID != owner {
			t.Errorf("OwnerID = %d, want %d", proj.OwnerID, owner)
		}
	})

	t.Run("敌方子弹", func(t *testing.T) {
		id, err := NewEnemyBullet(em, cfg, owner, 100, 75)
		if err != nil {
			t.Fatalf("NewEnemyBullet() error = %v", err)
		}
		pos := position(t, em, id)
		if pos.X != 97.5 || pos.Y != 75 {
			t.Errorf("position = (%v, %v), want (97.5, 75)", pos.X, pos.Y)
		}
		vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
		if vel.VY != 5 {
			t.Errorf("VY = %v, want 5", vel.VY)
		}
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
		if col.Width != 5 || col.Height != 10 {
			t.Errorf("size = %vx%v, want 5x10", col.Width, col.Height)
		}
	})

	t.Run("发射者不存在", func(t *testing.T) {
		if _, err := NewEnemyBullet(em, cfg, 9999, 0, 0); err == nil {
			t.Error("expected error for unknown owner")
		}
	})
}

func TestNewHitEffect(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()

	id, err := NewHitEffect(em, cfg, 100, 200)
	if err != nil {
		t.Fatalf("NewHitEffect() error = %v", err)
	}

	pos := position(t, em, id)
	if pos.X != 88 || pos.Y != 188 {
		t.Errorf("position = (%v, %v), want (88, 188)", pos.X, pos.Y)
	}
	life, ok := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if !ok || life.MaxLifetime != 0.25 {
		t.Errorf("lifetime = %+v, want 0.25s", life)
	}
	if !ecs.HasComponent[*components.FlashEffectComponent](em, id) {
		t.Error("hit effect should have FlashEffectComponent")
	}
}

func TestFactoriesRejectNil(t *testing.T) {
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()

	if _, err := NewPlayer(nil, cfg); err == nil {
		t.Error("NewPlayer(nil em) should fail")
	}
	if _, err := NewPlayer(em, nil); err == nil {
		t.Error("NewPlayer(nil cfg) should fail")
	}
	if _, err := NewBoss(nil, cfg, 1, 0); err == nil {
		t.Error("NewBoss(nil em) should fail")
	}
	if _, err := NewHitEffect(em, nil, 0, 0); err == nil {
		t.Error("NewHitEffect(nil cfg) should fail")
	}
}
