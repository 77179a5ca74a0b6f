package game

import "testing"

func TestWorldComponentLifecycle(t *testing.T) {
	w := newWorld()
	id := w.NewEntity()

	w.SetComponent(id, CompTransform, &Transform{Pos: Vec2{X: 1, Y: 2}})
	w.SetComponent(id, CompOwner, &OwnerComponent{PlayerID: "p1"})

	if tr := w.Transform(id); tr == nil || tr.Pos.X != 1 {
		t.Fatalf("transform getter returned %+v", tr)
	}
	if own := w.Owner(id); own == nil || own.PlayerID != "p1" {
		t.Fatalf("owner getter returned %+v", own)
	}
	if w.Movement(id) != nil {
		t.Fatalf("movement getter should be nil for an unset component")
	}
	if !w.HasComponent(id, CompTransform) {
		t.Fatalf("HasComponent should report the set component")
	}

	w.RemoveComponent(id, CompOwner)
	if w.Owner(id) != nil {
		t.Fatalf("owner should be gone after RemoveComponent")
	}
	if !w.Exists(id) {
		t.Fatalf("entity still has a transform and should exist")
	}

	w.RemoveEntity(id)
	if w.Exists(id) {
		t.Fatalf("entity should be fully removed")
	}
}

func TestWorldForEach(t *testing.T) {
	w := newWorld()
	both := w.NewEntity()
	w.SetComponent(both, CompTransform, &Transform{})
	w.SetComponent(both, CompMovement, &Movement{MaxSpeed: 1})
	onlyTransform := w.NewEntity()
	w.SetComponent(onlyTransform, CompTransform, &Transform{})

	var visited []EntityID
	w.ForEach([]ComponentKey{CompTransform, CompMovement}, func(id EntityID) {
		visited = append(visited, id)
	})

	if len(visited) != 1 || visited[0] != both {
		t.Fatalf("ForEach visited %v, want only %v", visited, both)
	}
}
