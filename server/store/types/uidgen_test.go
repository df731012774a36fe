package types

import (
	"testing"
)

func TestIdGeneratorInit(t *testing.T) {
	ig := &IdGenerator{}

	if err := ig.Init(1); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if ig.seq == nil {
		t.Error("Snowflake generator should be initialized")
	}

	// Already initialized generator is not reinitialized.
	oldSeq := ig.seq
	if err := ig.Init(3); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if ig.seq != oldSeq {
		t.Error("Snowflake generator should not be reinitialized")
	}
}

func TestIdGeneratorInvalidWorker(t *testing.T) {
	ig := &IdGenerator{}
	if err := ig.Init(1024); err == nil {
		t.Error("Expected error with worker ID out of range")
	}
}

func TestIdGeneratorUninitialized(t *testing.T) {
	ig := &IdGenerator{}
	if id := ig.Get(); id != 0 {
		t.Errorf("Uninitialized generator must return 0, got %d", id)
	}
}

func TestIdGeneratorUniqueAndIncreasing(t *testing.T) {
	ig := &IdGenerator{}
	if err := ig.Init(5); err != nil {
		t.Fatal(err)
	}

	const count = 1000
	seen := make(map[int64]bool, count)
	var prev int64
	for i := 0; i < count; i++ {
		id := ig.Get()
		if id <= 0 {
			t.Fatalf("ID %d must be positive", id)
		}
		if seen[id] {
			t.Fatalf("Duplicate ID %d at iteration %d", id, i)
		}
		if id <= prev {
			t.Errorf("IDs must increase: %d after %d", id, prev)
		}
		seen[id] = true
		prev = id
	}
}
