package poly

import "mdpc-gf4/internal/gf4"

// DivRem performs classic schoolbook long division: a.DivRem(b)
// returns (q, r) with a = q*b + r and deg r < deg b, using the leading
// coefficient of b at each step.
func (p Polynomial) DivRem(b Polynomial) (q, r Polynomial, err error) {
	if b.IsZero() {
		return Polynomial{}, Polynomial{}, ErrDivisionByZero
	}
	field := p.field
	remCoeffs := p.Coeffs()
	degB := b.Degree()
	leadB := b.Coeff(degB)

	if p.Degree() < degB && !p.IsZero() {
		return Zero(field), New(field, remCoeffs), nil
	}
	if p.IsZero() {
		return Zero(field), Zero(field), nil
	}

	quotDeg := p.Degree() - degB
	quotCoeffs := make([]gf4.Elem, quotDeg+1)

	for i := p.Degree(); i >= degB; i-- {
		coeff := remCoeffs[i]
		if field.IsZero(coeff) {
			continue
		}
		qc, divErr := field.Div(coeff, leadB)
		if divErr != nil {
			return Polynomial{}, Polynomial{}, divErr
		}
		quotCoeffs[i-degB] = qc
		for j := 0; j <= degB; j++ {
			remCoeffs[i-degB+j] = field.Sub(remCoeffs[i-degB+j], field.Mul(qc, b.Coeff(j)))
		}
	}

	q = Polynomial{field: field, coeffs: canonicalize(quotCoeffs, field)}
	r = Polynomial{field: field, coeffs: canonicalize(remCoeffs[:degB], field)}
	return q, r, nil
}

// DivXToDeg returns floor(p / x^k): the polynomial obtained by
// dropping the first k coefficients.
func (p Polynomial) DivXToDeg(k int) Polynomial {
	if k <= 0 {
		return p
	}
	if k >= len(p.coeffs) {
		return Zero(p.field)
	}
	out := append([]gf4.Elem(nil), p.coeffs[k:]...)
	return Polynomial{field: p.field, coeffs: canonicalize(out, p.field)}
}

// ModXToDeg returns p mod x^k: the low k coefficients of p.
func (p Polynomial) ModXToDeg(k int) Polynomial {
	if k <= 0 {
		return Zero(p.field)
	}
	if k >= len(p.coeffs) {
		return Polynomial{field: p.field, coeffs: append([]gf4.Elem(nil), p.coeffs...)}
	}
	out := append([]gf4.Elem(nil), p.coeffs[:k]...)
	return Polynomial{field: p.field, coeffs: canonicalize(out, p.field)}
}
