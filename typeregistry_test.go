package ecs_test

import (
	"testing"

	ecs "github.com/iauns/cpm-entity-system"
)

type regPosition struct{ X, Y float64 }
type regVelocity struct{ X, Y float64 }

// go test -run ^TestTypeIDOfIsStable$ . -count 1
func TestTypeIDOfIsStable(t *testing.T) {
	a := ecs.TypeIDOf[regPosition]()
	b := ecs.TypeIDOf[regPosition]()
	if a != b {
		t.Fatalf("expected stable id, got %d then %d", a, b)
	}
}

// go test -run ^TestTypeIDOfDistinctTypes$ . -count 1
func TestTypeIDOfDistinctTypes(t *testing.T) {
	a := ecs.TypeIDOf[regPosition]()
	b := ecs.TypeIDOf[regVelocity]()
	if a == b {
		t.Fatalf("expected distinct ids, got %d for both types", a)
	}
}

// go test -run ^TestTryTypeIDOfUnregistered$ . -count 1
func TestTryTypeIDOfUnregistered(t *testing.T) {
	type neverRegistered struct{ Z int }
	if _, ok := ecs.TryTypeIDOf[neverRegistered](); ok {
		t.Fatal("expected TryTypeIDOf to report false before first TypeIDOf call")
	}
	ecs.TypeIDOf[neverRegistered]()
	if _, ok := ecs.TryTypeIDOf[neverRegistered](); !ok {
		t.Fatal("expected TryTypeIDOf to report true after TypeIDOf mints it")
	}
}
