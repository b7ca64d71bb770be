package garden

import "testing"

func TestRandMatchesReferenceSequence(t *testing.T) {
	r := NewRand()
	seed := int64(100)
	for i := 0; i < 5; i++ {
		seed = ((seed*214013 + 2531011) >> 16) & 32767
		want := int(seed % 11)
		if got := r.Intn(11); got != want {
			t.Fatalf("draw %d: expected %d, got %d", i, want, got)
		}
	}
}

func TestRandLiteralValues(t *testing.T) {
	r := NewRand()
	want := []int{2, 9, 7, 3, 0}
	for i, w := range want {
		if got := r.Intn(11); got != w {
			t.Fatalf("draw %d: expected %d, got %d", i, w, got)
		}
	}
	if r.Seed() != 10637 {
		t.Fatalf("expected seed 10637 after five draws, got %d", r.Seed())
	}
}

func TestRandDeterministic(t *testing.T) {
	a := NewRand()
	b := NewRand()
	for i := 0; i < 1000; i++ {
		if x, y := a.Intn(97), b.Intn(97); x != y {
			t.Fatalf("draw %d diverged: %d vs %d", i, x, y)
		}
	}
}

func TestRandBounds(t *testing.T) {
	r := NewRandSeed(12345)
	for max := 1; max < 50; max++ {
		for i := 0; i < 200; i++ {
			v := r.Intn(max)
			if v < 0 || v >= max {
				t.Fatalf("Intn(%d) returned %d", max, v)
			}
		}
	}
}

func TestRandNonPositiveMax(t *testing.T) {
	r := NewRand()
	if v := r.Intn(0); v != 0 {
		t.Fatalf("expected 0, got %d", v)
	}
	if v := r.Intn(-3); v != 0 {
		t.Fatalf("expected 0, got %d", v)
	}
	if r.Seed() != defaultSeed {
		t.Fatalf("seed advanced on invalid max: %d", r.Seed())
	}
}
