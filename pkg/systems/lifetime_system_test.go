package systems

import (
	"testing"

	"github.com/decker502/tanksurvive/pkg/components"
	"github.com/decker502/tanksurvive/pkg/ecs"
)

func TestLifetimeUpdate(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := em.CreateEntity()
	em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: 10.0})

	// 模拟5秒更新
	system.Update(5.0)

	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if lifetime.CurrentLifetime != 5.0 {
		t.Errorf("Expected CurrentLifetime=5.0, got %f", lifetime.CurrentLifetime)
	}
	if lifetime.IsExpired {
		t.Error("Entity should not be expired yet")
	}
	if em.IsMarked(id) {
		t.Error("Entity should not be marked for removal yet")
	}
}

func TestLifetimeExpiration(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := em.CreateEntity()
	em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: 10.0})

	// 模拟超过最大生命周期
	system.Update(12.0)

	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if !lifetime.IsExpired {
		t.Error("Entity should be expired")
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("Expired entity should be removed")
	}
}

func TestLifetimeMultipleUpdates(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	short := em.CreateEntity()
	em.AddComponent(short, &components.LifetimeComponent{MaxLifetime: 0.25})
	long := em.CreateEntity()
	em.AddComponent(long, &components.LifetimeComponent{MaxLifetime: 1.0})

	for i := 0; i < 20; i++ {
		system.Update(1.0 / 60.0)
	}
	em.RemoveMarkedEntities()

	if em.Exists(short) {
		t.Error("short-lived entity should be gone after 20 frames")
	}
	if !em.Exists(long) {
		t.Error("long-lived entity should still exist")
	}
}
