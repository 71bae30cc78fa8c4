package ecs_test

import (
	"testing"

	ecs "github.com/iauns/cpm-entity-system"
)

// go test -run ^TestEntityIDSourceStartsAtOne$ . -count 1
func TestEntityIDSourceStartsAtOne(t *testing.T) {
	src := ecs.NewEntityIDSource()
	if src.Current() != 0 {
		t.Fatalf("expected fresh source to report Current()==0, got %d", src.Current())
	}
	first := src.NextEntityID()
	if first != 1 {
		t.Fatalf("expected first id to be 1, got %d", first)
	}
	second := src.NextEntityID()
	if second != 2 {
		t.Fatalf("expected second id to be 2, got %d", second)
	}
	if src.Current() != 2 {
		t.Fatalf("expected Current() to track the last id handed out, got %d", src.Current())
	}
}

// go test -run ^TestStaticSeqDoesNotCollideWithFirstEntity$ . -count 1
func TestStaticSeqDoesNotCollideWithFirstEntity(t *testing.T) {
	src := ecs.NewEntityIDSource()
	first := src.NextEntityID()
	if first == ecs.StaticSeq {
		t.Fatal("first minted entity id collides with StaticSeq")
	}
}
