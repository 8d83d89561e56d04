package randsrc

import (
	"testing"

	"mdpc-gf4/internal/gf4"
)

func TestRandomWeightedVectorWeight(t *testing.T) {
	f := gf4.New()
	s := NewMTSource(1)
	const n, w = 37, 13
	v, err := s.RandomWeightedVector(f, n, w)
	if err != nil {
		t.Fatalf("RandomWeightedVector: %v", err)
	}
	if len(v) != n {
		t.Fatalf("len(v) = %d, want %d", len(v), n)
	}
	count := 0
	for _, e := range v {
		if !f.IsZero(e) {
			count++
		}
	}
	if count != w {
		t.Fatalf("Hamming weight = %d, want %d", count, w)
	}
}

func TestRandomWeightedVectorImpossible(t *testing.T) {
	f := gf4.New()
	s := NewMTSource(1)
	if _, err := s.RandomWeightedVector(f, 4, 5); err != ErrImpossibleHammingWeight {
		t.Fatalf("expected ErrImpossibleHammingWeight, got %v", err)
	}
}

func TestRandomVectorRange(t *testing.T) {
	f := gf4.New()
	s := NewMTSource(2)
	v := s.RandomVector(f, 1000)
	for i, e := range v {
		if e > f.Max() {
			t.Fatalf("element %d out of range: %v", i, e)
		}
	}
}

func TestIntRangeDeterministic(t *testing.T) {
	a := NewMTSource(42)
	b := NewMTSource(42)
	for i := 0; i < 100; i++ {
		x := a.IntRange(0, 1000)
		y := b.IntRange(0, 1000)
		if x != y {
			t.Fatalf("same-seed sources diverged at %d: %d != %d", i, x, y)
		}
	}
}

func TestChaChaSourceProducesValues(t *testing.T) {
	f := gf4.New()
	s := NewChaChaSource(7)
	v, err := s.RandomWeightedVector(f, 37, 10)
	if err != nil {
		t.Fatalf("RandomWeightedVector: %v", err)
	}
	count := 0
	for _, e := range v {
		if !f.IsZero(e) {
			count++
		}
	}
	if count != 10 {
		t.Fatalf("Hamming weight = %d, want 10", count)
	}
}
