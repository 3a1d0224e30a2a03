package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if em.EntityCount() != 2 {
		t.Errorf("EntityCount: got %d, want 2", em.EntityCount())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPositionComponent{X: 100, Y: 200})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}
	retrieved := comp.(*testPositionComponent)
	if retrieved.X != 100 || retrieved.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", retrieved.X, retrieved.Y)
	}
}

func TestGenericHelpers(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testVelocityComponent{VX: 1, VY: -1})

	vel, ok := GetComponent[*testVelocityComponent](em, id)
	if !ok {
		t.Fatal("GetComponent should find velocity component")
	}
	vel.VX = 5

	again, _ := GetComponent[*testVelocityComponent](em, id)
	if again.VX != 5 {
		t.Errorf("components should be stored by pointer, got VX=%v", again.VX)
	}

	if _, ok := GetComponent[*testPositionComponent](em, id); ok {
		t.Error("GetComponent should not find a missing component type")
	}
	if !HasComponent[*testVelocityComponent](em, id) {
		t.Error("HasComponent should report velocity component")
	}

	RemoveComponent[*testVelocityComponent](em, id)
	if HasComponent[*testVelocityComponent](em, id) {
		t.Error("velocity component should be removed")
	}
}

func TestDestroyEntityDeferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	em.DestroyEntity(id)
	if !em.Exists(id) {
		t.Error("entity should survive until RemoveMarkedEntities")
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("entity should be removed after RemoveMarkedEntities")
	}
	if em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("components of removed entity should be gone")
	}
}

func TestGetEntitiesWithSortedAndFiltered(t *testing.T) {
	em := NewEntityManager()

	ids := make([]EntityID, 0, 10)
	for i := 0; i < 10; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testPositionComponent{X: float64(i)})
		if i%2 == 0 {
			AddComponent(em, id, &testVelocityComponent{})
		}
		ids = append(ids, id)
	}

	all := GetEntitiesWith1[*testPositionComponent](em)
	if len(all) != 10 {
		t.Fatalf("expected 10 entities with position, got %d", len(all))
	}
	for i := range all {
		if all[i] != ids[i] {
			t.Fatalf("query result not sorted: index %d got %d want %d", i, all[i], ids[i])
		}
	}

	both := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(both) != 5 {
		t.Errorf("expected 5 entities with position+velocity, got %d", len(both))
	}
}
