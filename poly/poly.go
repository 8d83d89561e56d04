// Package poly implements the polynomial ring over a characteristic-two
// field: canonical-form coefficient vectors, ring arithmetic, Euclidean
// division, and the half-GCD-based extended Euclidean algorithm used to
// invert elements of F[x]/(x^r-1).
//
// Polynomials are value types (mirroring ntru.IntPoly/ntru.ModQPoly):
// every operation returns a fresh Polynomial rather than mutating its
// receiver in place, so there is never shared mutable state between
// distinct polynomials.
package poly

import (
	"strings"

	"mdpc-gf4/internal/gf4"
)

type fmtError string

func (e fmtError) Error() string { return string(e) }

// ErrDivisionByZero is returned by DivRem and Invert when the divisor
// or modulus is the zero polynomial.
var ErrDivisionByZero = fmtError("poly: division by zero polynomial")

// Polynomial is a finite sequence of coefficients (c0, c1, ..., cd)
// over a field, canonicalized so that either it is the zero polynomial
// (Coeffs == [0]) or its highest-indexed coefficient is non-zero.
type Polynomial struct {
	field  gf4.Field
	coeffs []gf4.Elem
}

// Field returns the field the polynomial's coefficients live in.
func (p Polynomial) Field() gf4.Field { return p.field }

// New canonicalizes an explicit coefficient sequence into a Polynomial.
// An empty slice is treated as the zero polynomial.
func New(field gf4.Field, coeffs []gf4.Elem) Polynomial {
	cp := append([]gf4.Elem(nil), coeffs...)
	return Polynomial{field: field, coeffs: canonicalize(cp, field)}
}

// Buffer allocates a zero polynomial with room for degree+1
// coefficients, for callers that build a polynomial up via
// SetCoefficient (the teacher's NewIntPoly/NewModQPoly allocation
// style, generalized to the canonical-form field-element case).
func Buffer(field gf4.Field, degree int) Polynomial {
	if degree < 0 {
		degree = 0
	}
	return Polynomial{field: field, coeffs: make([]gf4.Elem, 1, degree+1)}
}

// Zero returns the zero polynomial over field.
func Zero(field gf4.Field) Polynomial {
	return Polynomial{field: field, coeffs: []gf4.Elem{field.Zero()}}
}

// One returns the constant polynomial 1 over field.
func One(field gf4.Field) Polynomial {
	return Polynomial{field: field, coeffs: []gf4.Elem{field.One()}}
}

// canonicalize trims trailing zero coefficients, leaving at least one
// entry (the zero polynomial's conventional degree-0 representation).
func canonicalize(coeffs []gf4.Elem, field gf4.Field) []gf4.Elem {
	if len(coeffs) == 0 {
		return []gf4.Elem{field.Zero()}
	}
	i := len(coeffs) - 1
	for i > 0 && field.IsZero(coeffs[i]) {
		i--
	}
	return coeffs[:i+1]
}

// Degree returns the polynomial's degree. The zero polynomial's degree
// is conventionally 0.
func (p Polynomial) Degree() int { return len(p.coeffs) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return len(p.coeffs) == 1 && p.field.IsZero(p.coeffs[0])
}

// IsOne reports whether p is the constant polynomial 1.
func (p Polynomial) IsOne() bool {
	return len(p.coeffs) == 1 && p.field.IsOne(p.coeffs[0])
}

// Coeff returns the coefficient of x^i, or the field's zero element
// when i is out of range.
func (p Polynomial) Coeff(i int) gf4.Elem {
	if i < 0 || i >= len(p.coeffs) {
		return p.field.Zero()
	}
	return p.coeffs[i]
}

// Coeffs returns a defensive copy of the coefficient vector, index i
// holding the coefficient of x^i.
func (p Polynomial) Coeffs() []gf4.Elem {
	return append([]gf4.Elem(nil), p.coeffs...)
}

// SetCoefficient returns a copy of p with the coefficient of x^i set to
// v, canonicalized: writing a non-zero value past the current degree
// extends the polynomial; writing zero at the current leading
// coefficient rescans downward for the new leading term.
func (p Polynomial) SetCoefficient(i int, v gf4.Elem) Polynomial {
	if i < 0 {
		panic("poly: negative coefficient index")
	}
	coeffs := append([]gf4.Elem(nil), p.coeffs...)
	if i >= len(coeffs) {
		if p.field.IsZero(v) {
			return Polynomial{field: p.field, coeffs: coeffs}
		}
		grown := make([]gf4.Elem, i+1)
		copy(grown, coeffs)
		grown[i] = v
		return Polynomial{field: p.field, coeffs: grown}
	}
	coeffs[i] = v
	return Polynomial{field: p.field, coeffs: canonicalize(coeffs, p.field)}
}

// String renders the polynomial as a sum of "c*x^i" terms, mostly for
// debug printing.
func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	first := true
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		if p.field.IsZero(p.coeffs[i]) {
			continue
		}
		if !first {
			b.WriteString(" + ")
		}
		first = false
		b.WriteString(p.field.String(p.coeffs[i]))
		if i > 0 {
			b.WriteString("*x^")
			b.WriteString(itoa(i))
		}
	}
	return b.String()
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits [20]byte
	i := len(digits)
	for n > 0 {
		i--
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	return string(digits[i:])
}
