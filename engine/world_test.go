package engine

import (
	"errors"
	"testing"

	"github.com/lixenwraith/skirmish/component"
	"github.com/lixenwraith/skirmish/core"
)

func TestEntityLifecycle(t *testing.T) {
	world := NewWorld()

	e1 := world.CreateEntity()
	e2 := world.CreateEntity()
	if e1 == e2 {
		t.Errorf("Expected distinct handles, got %#x twice", uint64(e1))
	}
	if !world.Alive(e1) || !world.Alive(e2) {
		t.Error("Expected freshly created entities to be alive")
	}
	if world.EntityCount() != 2 {
		t.Errorf("Expected 2 entities, got %d", world.EntityCount())
	}

	world.DestroyEntity(e1)
	if world.Alive(e1) {
		t.Error("Expected destroyed entity to be dead")
	}
	if world.EntityCount() != 1 {
		t.Errorf("Expected 1 entity after destroy, got %d", world.EntityCount())
	}
}

func TestStaleHandleFailsValidation(t *testing.T) {
	world := NewWorld()

	e := world.CreateEntity()
	world.DestroyEntity(e)

	// Slot reuse must not make old handles valid again
	reused := world.CreateEntity()
	if reused.Index() != e.Index() {
		t.Fatalf("Expected slot %d to be reused, got %d", e.Index(), reused.Index())
	}
	if reused.Generation() == e.Generation() {
		t.Error("Expected reused slot to carry a new generation")
	}
	if world.Alive(e) {
		t.Error("Expected stale handle to fail Alive")
	}
	if err := world.ValidateEntity(e); !errors.Is(err, core.ErrInvalidEntity) {
		t.Errorf("Expected ErrInvalidEntity for stale handle, got %v", err)
	}
	if err := world.ValidateEntity(reused); err != nil {
		t.Errorf("Expected fresh handle to validate, got %v", err)
	}
}

func TestNoEntityNeverAlive(t *testing.T) {
	world := NewWorld()
	world.CreateEntity()
	if world.Alive(core.NoEntity) {
		t.Error("Expected the zero handle to always be dead")
	}
}

func TestDestroyRemovesComponents(t *testing.T) {
	world := NewWorld()

	e := world.CreateEntity()
	world.Component.Transform.Set(e, component.TransformComponent{X: 5, Y: 7})
	world.Component.Vitality.Set(e, component.VitalityComponent{Health: 100, MaxHealth: 100})

	world.DestroyEntity(e)
	if world.Component.Transform.Has(e) {
		t.Error("Expected transform row removed with entity")
	}
	if world.Component.Vitality.Has(e) {
		t.Error("Expected vitality row removed with entity")
	}
}

func TestDestroyBatch(t *testing.T) {
	world := NewWorld()

	entities := make([]core.Entity, 5)
	for i := range entities {
		entities[i] = world.CreateEntity()
		world.Component.Transform.Set(entities[i], component.TransformComponent{X: float64(i)})
	}

	stale := entities[0]
	world.DestroyEntity(stale)

	// Batch includes one already-destroyed handle; it must be skipped
	world.DestroyBatch(entities)
	if world.EntityCount() != 0 {
		t.Errorf("Expected 0 entities after batch destroy, got %d", world.EntityCount())
	}
	if world.Component.Transform.Count() != 0 {
		t.Errorf("Expected empty transform store, got %d rows", world.Component.Transform.Count())
	}
}

func TestDestroyBatchKeepsCallerSlice(t *testing.T) {
	world := NewWorld()

	e1 := world.CreateEntity()
	e2 := world.CreateEntity()
	batch := []core.Entity{e1, e2}
	world.DestroyBatch(batch)

	if batch[0] != e1 || batch[1] != e2 {
		t.Error("Expected DestroyBatch to leave the caller's slice untouched")
	}
}

type orderProbe struct {
	name     string
	priority int
	log      *[]string
}

func (p *orderProbe) Name() string  { return p.name }
func (p *orderProbe) Priority() int { return p.priority }
func (p *orderProbe) Update()       { *p.log = append(*p.log, p.name) }

func TestSystemsRunInPriorityOrder(t *testing.T) {
	world := NewWorld()
	var log []string

	world.AddSystem(&orderProbe{name: "third", priority: 30, log: &log})
	world.AddSystem(&orderProbe{name: "first", priority: 10, log: &log})
	world.AddSystem(&orderProbe{name: "second", priority: 20, log: &log})

	world.Update()
	want := []string{"first", "second", "third"}
	if len(log) != len(want) {
		t.Fatalf("Expected %d system runs, got %d", len(want), len(log))
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Expected %s at position %d, got %s", want[i], i, log[i])
		}
	}
}
