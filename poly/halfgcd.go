package poly

import "mdpc-gf4/internal/gf4"

// Matrix is a 2x2 matrix of polynomials used by the half-GCD recursion
// to accumulate the transform relating successive remainder pairs.
// det(M) is invariant at a non-zero field element throughout the
// recursion, so Adjugate always recovers a valid inverse transform (up
// to the determinant scalar).
type Matrix struct {
	M00, M01, M10, M11 Polynomial
}

// Identity returns the 2x2 identity transform over field.
func Identity(field gf4.Field) Matrix {
	return Matrix{
		M00: One(field), M01: Zero(field),
		M10: Zero(field), M11: One(field),
	}
}

// stepMatrix returns ((q, 1), (1, 0)), the transform corresponding to
// one Euclidean division step (A, B) -> (B, A - q*B).
func stepMatrix(q Polynomial) Matrix {
	field := q.Field()
	return Matrix{
		M00: q, M01: One(field),
		M10: One(field), M11: Zero(field),
	}
}

// Adjugate returns the classical adjugate of m: swap the diagonal,
// negate the off-diagonal. Negation over a characteristic-two field is
// the identity, so Sub against the zero polynomial is a no-op here but
// keeps the formula correct if this type is ever used over a field
// where negation is not self-inverse.
func (m Matrix) Adjugate() Matrix {
	field := m.M00.Field()
	neg := func(p Polynomial) Polynomial { return Zero(field).Sub(p) }
	return Matrix{
		M00: m.M11, M01: neg(m.M01),
		M10: neg(m.M10), M11: m.M00,
	}
}

// Mul returns m*other.
func (m Matrix) Mul(other Matrix) Matrix {
	return Matrix{
		M00: m.M00.Mul(other.M00).Add(m.M01.Mul(other.M10)),
		M01: m.M00.Mul(other.M01).Add(m.M01.Mul(other.M11)),
		M10: m.M10.Mul(other.M00).Add(m.M11.Mul(other.M10)),
		M11: m.M10.Mul(other.M01).Add(m.M11.Mul(other.M11)),
	}
}

// Apply returns (m00*a + m01*b, m10*a + m11*b).
func (m Matrix) Apply(a, b Polynomial) (Polynomial, Polynomial) {
	newA := m.M00.Mul(a).Add(m.M01.Mul(b))
	newB := m.M10.Mul(a).Add(m.M11.Mul(b))
	return newA, newB
}

func ceilHalf(n int) int { return (n + 2) / 2 } // ceil((n+1)/2)

// HalfGCD computes, for polynomials a, b with deg a >= deg b, a pair
// (quotient sequence, transform M) such that Adjugate(M) applied to
// (a, b) yields a pair whose second component has degree below
// ceil((deg a + 1)/2). a and b are not mutated; M is expressed
// relative to the original (a, b) passed in, not the recursion's
// internally shifted copies.
func HalfGCD(a, b Polynomial) ([]Polynomial, Matrix) {
	field := a.Field()
	m := ceilHalf(a.Degree())
	if b.Degree() < m {
		return nil, Identity(field)
	}

	seqR, mR := HalfGCD(a.DivXToDeg(m), b.DivXToDeg(m))
	a1, b1 := mR.Adjugate().Apply(a, b)
	if b1.Degree() < m {
		return seqR, mR
	}

	q, r, err := a1.DivRem(b1)
	if err != nil {
		panic(err)
	}
	seq := append(append([]Polynomial(nil), seqR...), q)
	a2, b2 := b1, r
	k := 2*m - b2.Degree()
	seqS, mS := HalfGCD(a2.DivXToDeg(k), b2.DivXToDeg(k))
	total := append(seq, seqS...)
	M := mR.Mul(stepMatrix(q)).Mul(mS)
	return total, M
}

// FullGCD repeatedly applies HalfGCD while 2*deg(b) > deg(a), and a
// single Euclidean step otherwise, until b is zero. It returns the full
// quotient sequence and a transform M such that M applied directly
// (no Adjugate needed by the caller) to (a, b) yields (gcd, 0), up to a
// non-zero scalar factor.
func FullGCD(a, b Polynomial) ([]Polynomial, Matrix) {
	field := a.Field()
	A, B := a, b
	M := Identity(field)
	var quotients []Polynomial

	for !B.IsZero() {
		if 2*B.Degree() > A.Degree() {
			seq, Mh := HalfGCD(A, B)
			quotients = append(quotients, seq...)
			M = Mh.Adjugate().Mul(M)
			A, B = Mh.Adjugate().Apply(A, B)
		} else {
			q, _, err := A.DivRem(B)
			if err != nil {
				panic(err)
			}
			quotients = append(quotients, q)
			S := stepMatrix(q)
			M = S.Adjugate().Mul(M)
			A, B = S.Adjugate().Apply(A, B)
		}
	}
	return quotients, M
}

// Invert returns the inverse of p modulo mod in F[x]/(mod), if it
// exists. ok is false (with a nil error) when p has no inverse because
// gcd(p, mod) has positive degree or p is zero. err is non-nil only
// when mod itself is zero.
func (p Polynomial) Invert(mod Polynomial) (inverse Polynomial, ok bool, err error) {
	if mod.IsZero() {
		return Polynomial{}, false, ErrDivisionByZero
	}
	field := mod.Field()
	if p.IsZero() {
		return Polynomial{}, false, nil
	}
	_, b, divErr := p.DivRem(mod)
	if divErr != nil {
		return Polynomial{}, false, divErr
	}
	if b.IsZero() {
		return Polynomial{}, false, nil
	}

	_, M := FullGCD(mod, b)
	gcd, _ := M.Apply(mod, b)

	if gcd.Degree() > 0 {
		return Polynomial{}, false, nil
	}
	if gcd.IsZero() {
		return Polynomial{}, false, nil
	}
	gcdConst := gcd.Coeff(0)
	invScalar, divErr := field.Div(field.One(), gcdConst)
	if divErr != nil {
		return Polynomial{}, false, nil
	}
	inverse = M.M01.ScalarMul(invScalar)
	return inverse, true, nil
}
