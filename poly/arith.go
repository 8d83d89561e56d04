package poly

import "mdpc-gf4/internal/gf4"

// Add returns p+q, canonicalized.
func (p Polynomial) Add(q Polynomial) Polynomial {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	out := make([]gf4.Elem, n)
	for i := 0; i < n; i++ {
		out[i] = p.field.Add(p.Coeff(i), q.Coeff(i))
	}
	return Polynomial{field: p.field, coeffs: canonicalize(out, p.field)}
}

// Sub returns p-q. Over a characteristic-two field this equals Add.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	out := make([]gf4.Elem, n)
	for i := 0; i < n; i++ {
		out[i] = p.field.Sub(p.Coeff(i), q.Coeff(i))
	}
	return Polynomial{field: p.field, coeffs: canonicalize(out, p.field)}
}

// Mul returns p*q via schoolbook convolution. Computed out-of-place
// into a fresh buffer before canonicalizing, unlike the teacher's
// documented *= bug (spec.md section 9), which aliased the accumulation
// buffer with the operand it was still reading from.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if p.IsZero() || q.IsZero() {
		return Zero(p.field)
	}
	out := make([]gf4.Elem, len(p.coeffs)+len(q.coeffs)-1)
	for i, pi := range p.coeffs {
		if p.field.IsZero(pi) {
			continue
		}
		for j, qj := range q.coeffs {
			if p.field.IsZero(qj) {
				continue
			}
			out[i+j] = p.field.Add(out[i+j], p.field.Mul(pi, qj))
		}
	}
	return Polynomial{field: p.field, coeffs: canonicalize(out, p.field)}
}

// ScalarMul returns c*p.
func (p Polynomial) ScalarMul(c gf4.Elem) Polynomial {
	if p.field.IsZero(c) {
		return Zero(p.field)
	}
	out := make([]gf4.Elem, len(p.coeffs))
	for i, pi := range p.coeffs {
		out[i] = p.field.Mul(c, pi)
	}
	return Polynomial{field: p.field, coeffs: canonicalize(out, p.field)}
}

// Equal reports whether p and q have identical canonical coefficient
// vectors.
func (p Polynomial) Equal(q Polynomial) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if p.coeffs[i] != q.coeffs[i] {
			return false
		}
	}
	return true
}
