package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testShapeComponent struct {
	Kind string
}

type testParentComponent struct {
	Parent EntityID
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
	if id1 == InvalidEntity || id2 == InvalidEntity {
		t.Error("Created entity must not equal InvalidEntity")
	}
	if !em.Exists(id1) || em.Exists(EntityID(99)) {
		t.Error("Exists() reported wrong result")
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testShapeComponent{Kind: "circle"})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testShapeComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}
	if got := comp.(*testShapeComponent).Kind; got != "circle" {
		t.Errorf("Kind = %q, want circle", got)
	}
}

func TestGenericHelpers(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testShapeComponent{Kind: "path"})

	t.Run("GetComponent", func(t *testing.T) {
		shape, ok := GetComponent[*testShapeComponent](em, id)
		if !ok {
			t.Fatal("GetComponent 失败：组件不存在")
		}
		if shape.Kind != "path" {
			t.Errorf("Kind = %q, want path", shape.Kind)
		}
	})

	t.Run("HasComponent", func(t *testing.T) {
		if !HasComponent[*testShapeComponent](em, id) {
			t.Error("HasComponent 应返回 true")
		}
		if HasComponent[*testParentComponent](em, id) {
			t.Error("HasComponent 应返回 false（组件不存在）")
		}
	})

	t.Run("未知实体", func(t *testing.T) {
		if _, ok := GetComponent[*testShapeComponent](em, EntityID(42)); ok {
			t.Error("GetComponent on unknown entity should fail")
		}
	})
}

func TestGetEntitiesWithIsOrdered(t *testing.T) {
	em := NewEntityManager()

	var ids []EntityID
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testShapeComponent{})
		if i%2 == 0 {
			AddComponent(em, id, &testParentComponent{})
		}
		ids = append(ids, id)
	}

	all := GetEntitiesWith1[*testShapeComponent](em)
	if len(all) != len(ids) {
		t.Fatalf("Expected %d entities, got %d", len(ids), len(all))
	}
	for i := range all {
		if all[i] != ids[i] {
			t.Fatalf("Query result not in creation order at %d: %d != %d", i, all[i], ids[i])
		}
	}

	both := GetEntitiesWith2[*testShapeComponent, *testParentComponent](em)
	if len(both) != 10 {
		t.Errorf("Expected 10 entities with both components, got %d", len(both))
	}
}
