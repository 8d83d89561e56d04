package keygen

import (
	"testing"

	"mdpc-gf4/internal/gf4"
	"mdpc-gf4/internal/randsrc"
	"mdpc-gf4/poly"
)

func TestGenerateKeyPairWeights(t *testing.T) {
	field := gf4.New()
	src := randsrc.NewMTSource(1)
	const r, w = 37, 9
	_, dec, err := GenerateKeyPair(field, r, w, src)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	for name, v := range map[string][]gf4.Elem{"h0": dec.H0, "h1": dec.H1} {
		if len(v) != r {
			t.Fatalf("len(%s) = %d, want %d", name, len(v), r)
		}
		count := 0
		for _, e := range v {
			if !field.IsZero(e) {
				count++
			}
		}
		if count != w {
			t.Fatalf("weight(%s) = %d, want %d", name, count, w)
		}
	}
}

func TestGenerateKeyPairH1Invertible(t *testing.T) {
	field := gf4.New()
	src := randsrc.NewMTSource(2)
	const r, w = 23, 5
	_, dec, err := GenerateKeyPair(field, r, w, src)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	f := modulus(field, r)
	h1Poly := poly.New(field, dec.H1)
	inv, ok, err := h1Poly.Invert(f)
	if err != nil || !ok {
		t.Fatalf("h1 must be invertible mod f: ok=%v err=%v", ok, err)
	}
	_, rem, err := h1Poly.Mul(inv).DivRem(f)
	if err != nil {
		t.Fatalf("DivRem: %v", err)
	}
	if !rem.IsOne() {
		t.Fatalf("h1*inv mod f = %v, want 1", rem)
	}
}

func TestGenerateKeyPairDeterministicWithSameSeed(t *testing.T) {
	field := gf4.New()
	const r, w = 23, 5
	_, dec1, err := GenerateKeyPair(field, r, w, randsrc.NewMTSource(99))
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	_, dec2, err := GenerateKeyPair(field, r, w, randsrc.NewMTSource(99))
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	for i := range dec1.H0 {
		if dec1.H0[i] != dec2.H0[i] || dec1.H1[i] != dec2.H1[i] {
			t.Fatalf("same-seed key generation diverged at index %d", i)
		}
	}
}
