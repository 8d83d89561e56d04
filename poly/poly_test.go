package poly

import (
	"testing"

	"mdpc-gf4/internal/gf4"
)

func modulus(field gf4.Field, r int) Polynomial {
	// f(x) = x^r - 1 = x^r + 1 in characteristic two.
	return Buffer(field, r).SetCoefficient(0, field.One()).SetCoefficient(r, field.One())
}

func assertCanonical(t *testing.T, p Polynomial) {
	t.Helper()
	c := p.Coeffs()
	if len(c) == 0 {
		t.Fatalf("canonical form must have at least one coefficient")
	}
	if len(c) > 1 && p.Field().IsZero(c[len(c)-1]) {
		t.Fatalf("leading coefficient is zero: %v", c)
	}
}

func TestCanonicalFormAfterArithmetic(t *testing.T) {
	field := gf4.New()
	a := New(field, []gf4.Elem{1, 2, 3, 0, 0})
	b := New(field, []gf4.Elem{1, 2, 3})
	assertCanonical(t, a)
	if a.Degree() != 2 {
		t.Fatalf("degree after trimming trailing zeros = %d, want 2", a.Degree())
	}
	for _, r := range []Polynomial{a.Add(b), a.Sub(b), a.Mul(b), a.ScalarMul(2)} {
		assertCanonical(t, r)
	}
	q, rem, err := a.DivRem(New(field, []gf4.Elem{1, 1}))
	if err != nil {
		t.Fatalf("DivRem: %v", err)
	}
	assertCanonical(t, q)
	assertCanonical(t, rem)
}

func TestDivRemIdentity(t *testing.T) {
	field := gf4.New()
	a := New(field, []gf4.Elem{3, 0, 1, 2, 1})
	b := New(field, []gf4.Elem{1, 1, 1})
	q, r, err := a.DivRem(b)
	if err != nil {
		t.Fatalf("DivRem: %v", err)
	}
	if r.Degree() >= b.Degree() && !r.IsZero() {
		t.Fatalf("deg r = %d, want < %d", r.Degree(), b.Degree())
	}
	got := q.Mul(b).Add(r)
	if !got.Equal(a) {
		t.Fatalf("q*b+r = %v, want %v", got, a)
	}
}

func TestDivisionByZero(t *testing.T) {
	field := gf4.New()
	a := New(field, []gf4.Elem{1, 1})
	if _, _, err := a.DivRem(Zero(field)); err != ErrDivisionByZero {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestDivXToDegAgreesWithDivRem(t *testing.T) {
	field := gf4.New()
	a := New(field, []gf4.Elem{2, 1, 3, 0, 2, 1})
	for k := 0; k <= a.Degree()+2; k++ {
		q := a.DivXToDeg(k)
		xk := Buffer(field, k).SetCoefficient(k, field.One())
		rebuilt := q.Mul(xk).Add(a.ModXToDeg(k))
		if !rebuilt.Equal(a) {
			t.Fatalf("k=%d: (a div x^k)*x^k + (a mod x^k) = %v, want %v", k, rebuilt, a)
		}
		dq, _, err := a.DivRem(xk)
		if err != nil {
			t.Fatalf("k=%d: DivRem: %v", k, err)
		}
		if !dq.Equal(q) {
			t.Fatalf("k=%d: DivXToDeg = %v, DivRem quotient = %v", k, q, dq)
		}
	}
}

// TestInvertSpecExampleInvertible is literal scenario 2 from spec.md
// section 8: p(x) = x^2+x+1 modulo f(x) = x^8+1 over GF(4).
func TestInvertSpecExampleInvertible(t *testing.T) {
	field := gf4.New()
	p := New(field, []gf4.Elem{1, 1, 1})
	f := modulus(field, 8)
	inv, ok, err := p.Invert(f)
	if err != nil {
		t.Fatalf("Invert: %v", err)
	}
	if !ok {
		t.Fatalf("expected an inverse to exist")
	}
	if inv.Degree() >= 8 {
		t.Fatalf("deg(inverse) = %d, want < 8", inv.Degree())
	}
	_, rem, err := p.Mul(inv).DivRem(f)
	if err != nil {
		t.Fatalf("DivRem: %v", err)
	}
	if !rem.IsOne() {
		t.Fatalf("p*inv mod f = %v, want 1", rem)
	}
}

// TestInvertSpecExampleNoInverse is literal scenario 3 from spec.md
// section 8: p(x) = a*x + a*x^4 modulo f(x) = x^8+1 over GF(4), which
// is not coprime to f and so has no inverse.
func TestInvertSpecExampleNoInverse(t *testing.T) {
	field := gf4.New()
	p := New(field, []gf4.Elem{0, 2, 0, 0, 2})
	f := modulus(field, 8)
	_, ok, err := p.Invert(f)
	if err != nil {
		t.Fatalf("Invert: %v", err)
	}
	if ok {
		t.Fatalf("expected no inverse to exist")
	}
}

func TestInvertDivisionByZeroModulus(t *testing.T) {
	field := gf4.New()
	p := New(field, []gf4.Elem{1, 1})
	if _, _, err := p.Invert(Zero(field)); err != ErrDivisionByZero {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestHalfGCDPostcondition(t *testing.T) {
	field := gf4.New()
	a := New(field, []gf4.Elem{1, 2, 3, 1, 2, 3, 1, 2, 1})
	b := New(field, []gf4.Elem{2, 1, 3, 2, 1})
	_, M := HalfGCD(a, b)
	_, newB := M.Adjugate().Apply(a, b)
	want := ceilHalf(a.Degree())
	if newB.Degree() >= want {
		t.Fatalf("deg B' = %d, want < %d", newB.Degree(), want)
	}
}

func TestSetCoefficientRescansForNewLeading(t *testing.T) {
	field := gf4.New()
	p := New(field, []gf4.Elem{1, 2, 3})
	p = p.SetCoefficient(2, field.Zero())
	assertCanonical(t, p)
	if p.Degree() != 1 {
		t.Fatalf("degree after clearing leading term = %d, want 1", p.Degree())
	}
}

func TestSetCoefficientExtendsDegree(t *testing.T) {
	field := gf4.New()
	p := New(field, []gf4.Elem{1})
	p = p.SetCoefficient(5, field.One())
	if p.Degree() != 5 {
		t.Fatalf("degree after extension = %d, want 5", p.Degree())
	}
}
