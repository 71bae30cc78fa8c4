package ecs_test

import (
	"testing"

	ecs "github.com/iauns/cpm-entity-system"
)

type countedComponent struct {
	constructed int
	destructed  int
}

func (c *countedComponent) OnConstruct(seq uint64) { c.constructed++ }
func (c *countedComponent) OnDestruct(seq uint64)  { c.destructed++ }

// go test -run ^TestContainerAddAndLookup$ . -count 1
func TestContainerAddAndLookup(t *testing.T) {
	c := ecs.NewComponentContainer[int]()
	c.Add(3, 30)
	c.Add(1, 10)
	c.Add(2, 20)
	c.Normalize(false)

	if c.NumRows() != 3 {
		t.Fatalf("expected 3 rows, got %d", c.NumRows())
	}
	if c.LowerSequence() != 1 || c.UpperSequence() != 3 {
		t.Fatalf("expected bounds [1,3], got [%d,%d]", c.LowerSequence(), c.UpperSequence())
	}

	idx, ok := c.LookupIndex(2)
	if !ok {
		t.Fatal("expected to find sequence 2")
	}
	if got := *c.RowAt(idx); got != 20 {
		t.Fatalf("expected 20 at sequence 2, got %d", got)
	}
}

// go test -run ^TestContainerConstructOnlyFiresAfterSort$ . -count 1
func TestContainerConstructOnlyFiresAfterSort(t *testing.T) {
	c := ecs.NewComponentContainer[countedComponent]()
	c.Add(1, countedComponent{})
	c.Add(2, countedComponent{})
	c.Normalize(false)

	idx, ok := c.LookupIndex(1)
	if !ok {
		t.Fatal("expected sequence 1 present")
	}
	if c.RowAt(idx).constructed != 1 {
		t.Fatalf("expected constructed==1, got %d", c.RowAt(idx).constructed)
	}
}

// go test -run ^TestContainerRemoveAllRemovesEveryMatch$ . -count 1
func TestContainerRemoveAllRemovesEveryMatch(t *testing.T) {
	c := ecs.NewComponentContainer[countedComponent]()
	c.Add(5, countedComponent{})
	c.Add(5, countedComponent{})
	c.Add(6, countedComponent{})
	c.Normalize(false)

	if c.NumRows() != 3 {
		t.Fatalf("expected 3 rows before removal, got %d", c.NumRows())
	}

	c.RemoveAll(5)
	c.Normalize(false)

	if c.NumRows() != 1 {
		t.Fatalf("expected 1 row after RemoveAll(5), got %d", c.NumRows())
	}
	if _, ok := c.LookupIndex(5); ok {
		t.Fatal("expected sequence 5 to be gone")
	}
}

// go test -run ^TestContainerRemoveFirstAndLast$ . -count 1
func TestContainerRemoveFirstAndLast(t *testing.T) {
	c := ecs.NewComponentContainer[int]()
	c.Add(4, 1)
	c.Add(4, 2)
	c.Add(4, 3)
	c.Normalize(true)

	c.RemoveFirst(4)
	c.Normalize(true)
	if c.NumRows() != 2 {
		t.Fatalf("expected 2 rows after RemoveFirst, got %d", c.NumRows())
	}
	if v := *c.RowAt(0); v != 2 {
		t.Fatalf("expected remaining leftmost value 2, got %d", v)
	}

	c.RemoveLast(4)
	c.Normalize(true)
	if c.NumRows() != 1 {
		t.Fatalf("expected 1 row after RemoveLast, got %d", c.NumRows())
	}
	if v := *c.RowAt(0); v != 2 {
		t.Fatalf("expected surviving value 2, got %d", v)
	}
}

// go test -run ^TestContainerModifyHighestPriorityWins$ . -count 1
func TestContainerModifyHighestPriorityWins(t *testing.T) {
	c := ecs.NewComponentContainer[int]()
	c.Add(1, 100)
	c.Normalize(false)

	c.Modify(0, 1, 0)
	c.Modify(0, 2, 5)
	c.Modify(0, 3, 1)
	c.Normalize(false)

	if got := *c.RowAt(0); got != 2 {
		t.Fatalf("expected highest-priority modification (2) to win, got %d", got)
	}
}

// go test -run ^TestContainerAddZeroSequencePanics$ . -count 1
func TestContainerAddZeroSequencePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected Add(0, ...) to panic")
		} else if _, ok := r.(*ecs.InvalidSequenceError); !ok {
			t.Fatalf("expected *ecs.InvalidSequenceError, got %T", r)
		}
	}()
	c := ecs.NewComponentContainer[int]()
	c.SetDiagnostics(ecs.NewNoopDiagnostics())
	c.Add(ecs.InvalidSequence, 1)
}

// go test -run ^TestContainerStaticRejectsNormalMix$ . -count 1
func TestContainerStaticRejectsNormalMix(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected AddStatic on a populated normal container to panic")
		} else if _, ok := r.(*ecs.StaticNormalMixError); !ok {
			t.Fatalf("expected *ecs.StaticNormalMixError, got %T", r)
		}
	}()
	c := ecs.NewComponentContainer[int]()
	c.SetDiagnostics(ecs.NewNoopDiagnostics())
	c.Add(1, 1)
	c.Normalize(false)
	c.AddStatic(2)
}

// go test -run ^TestContainerStaticLookupAlwaysHits$ . -count 1
func TestContainerStaticLookupAlwaysHits(t *testing.T) {
	c := ecs.NewComponentContainer[int]()
	c.AddStatic(42)
	c.AddStatic(43)
	c.Normalize(false)

	if !c.IsStatic() {
		t.Fatal("expected container to report IsStatic() true")
	}
	if idx, ok := c.LookupIndex(999); !ok || idx != 0 {
		t.Fatalf("expected static lookup to hit at index 0 regardless of sequence, got idx=%d ok=%v", idx, ok)
	}
}

// go test -run ^TestContainerClearEmptiesActiveRows$ . -count 1
func TestContainerClearEmptiesActiveRows(t *testing.T) {
	c := ecs.NewComponentContainer[countedComponent]()
	c.Add(1, countedComponent{})
	c.Add(2, countedComponent{})
	c.Normalize(false)

	c.Clear()
	if c.NumRows() != 0 {
		t.Fatalf("expected 0 rows after Clear, got %d", c.NumRows())
	}
}
