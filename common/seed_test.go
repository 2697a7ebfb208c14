package common

import "testing"

func TestSeededRNG_Deterministic(t *testing.T) {
	r1 := NewSeededRNG(12345)
	r2 := NewSeededRNG(12345)

	for i := 0; i < 100; i++ {
		v1 := r1.Random()
		v2 := r2.Random()
		if v1 != v2 {
			t.Errorf("Sequence diverged at %d: %f vs %f", i, v1, v2)
			break
		}
	}
}

func TestSeededRNG_DifferentSeedsDiffer(t *testing.T) {
	r1 := NewSeededRNG(12345)
	r2 := NewSeededRNG(54321)

	same := true
	for i := 0; i < 10; i++ {
		if r1.Random() != r2.Random() {
			same = false
			break
		}
	}
	if same {
		t.Error("Different seeds should produce different sequences")
	}
}

func TestSeededRNG_Reset(t *testing.T) {
	r := NewSeededRNG(777)
	first := r.Random()
	for i := 0; i < 50; i++ {
		r.Random()
	}

	r.Reset()
	if got := r.Random(); got != first {
		t.Errorf("Reset should replay the sequence: expected %f, got %f", first, got)
	}
}

func TestSeededRNG_Seed(t *testing.T) {
	r := NewSeededRNG(1)
	r.Random()

	r.Seed(999)
	first := r.Random()

	r2 := NewSeededRNG(999)
	if got := r2.Random(); got != first {
		t.Errorf("Seed should fully reset state: expected %f, got %f", first, got)
	}
}

func TestSeededRNG_RandomRange(t *testing.T) {
	r := NewSeededRNG(42)
	for i := 0; i < 1000; i++ {
		v := r.Random()
		if v < 0 || v >= 1 {
			t.Errorf("Random out of [0,1): %f", v)
			break
		}
	}
}

func TestSeededRNG_FloatRange(t *testing.T) {
	r := NewSeededRNG(42)
	for i := 0; i < 1000; i++ {
		v := r.Float(0.5)
		if v < 0 || v >= 0.5 {
			t.Errorf("Float(0.5) out of range: %f", v)
			break
		}
	}
}

func TestSeededRNG_IntRangeInclusive(t *testing.T) {
	r := NewSeededRNG(42)
	seen := make(map[int]bool)

	for i := 0; i < 1000; i++ {
		v := r.IntRange(0, 3)
		if v < 0 || v > 3 {
			t.Errorf("IntRange(0,3) out of range: %d", v)
			break
		}
		seen[v] = true
	}

	for want := 0; want <= 3; want++ {
		if !seen[want] {
			t.Errorf("IntRange(0,3) never produced %d", want)
		}
	}
}
