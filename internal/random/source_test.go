package random

import "testing"

func TestNewIsDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 32; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestDefaultStaysInRange(t *testing.T) {
	src := Default()
	for i := 0; i < 100; i++ {
		if v := src.IntN(6); v < 0 || v >= 6 {
			t.Fatalf("IntN(6) = %d, out of range", v)
		}
		if f := src.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v, out of range", f)
		}
	}
}

func TestOrFallsBackToDefault(t *testing.T) {
	if _, ok := Or(nil).(globalSource); !ok {
		t.Fatal("expected default source for nil")
	}
	seeded := New(1)
	if Or(seeded) != seeded {
		t.Fatal("expected provided source to be returned")
	}
}

func TestNewSeed(t *testing.T) {
	seen := map[int64]bool{}
	for i := 0; i < 4; i++ {
		seed, err := NewSeed()
		if err != nil {
			t.Fatalf("new seed: %v", err)
		}
		seen[seed] = true
	}
	if len(seen) < 2 {
		t.Fatal("expected distinct seeds")
	}
}
