// Package codec implements the systematic encoder and the iterative
// symbol-flipping decoder for QC-MDPC codewords, built directly on top
// of the ring elements keygen produces. Encoding and syndrome
// computation share the same reversed circulant-row indexing
// convention (outer index i running from r down to 1), which the
// decoder depends on to interpret the syndrome correctly.
package codec

import (
	"mdpc-gf4/internal/gf4"
	"mdpc-gf4/keygen"
)

type fmtError string

func (e fmtError) Error() string { return string(e) }

// ErrIncorrectInputVectorLength is returned by Encode, Syndrome and
// Decode when given a vector of the wrong length.
var ErrIncorrectInputVectorLength = fmtError("codec: incorrect input vector length")

// circulantRow returns v[(i+j) mod r] for the conventional index i
// corresponding to array position idx (i = r - idx), matching both the
// encoder's codeword layout and the syndrome's index convention.
func circulantRow(v []gf4.Elem, idx, r int) func(j int) gf4.Elem {
	i := r - idx
	return func(j int) gf4.Elem { return v[(i+j)%r] }
}

// Encode produces the length-2r codeword c = [m | m*g] for message m,
// writing the circulant-convolution block with the reversed outer
// index required by Syndrome's matching convention.
func Encode(enc *keygen.EncodingContext, m []gf4.Elem) ([]gf4.Elem, error) {
	r := enc.R
	if len(m) != r {
		return nil, ErrIncorrectInputVectorLength
	}
	field := enc.Field
	c := make([]gf4.Elem, 2*r)
	copy(c[:r], m)
	for idx := 0; idx < r; idx++ {
		g := circulantRow(enc.G, idx, r)
		sum := field.Zero()
		for j := 0; j < r; j++ {
			sum = field.Add(sum, field.Mul(m[j], g(j)))
		}
		c[r+idx] = sum
	}
	return c, nil
}

// Syndrome computes s = v*H^T for a length-2r vector v, using h0 on the
// first r entries and h1 on the last r.
func Syndrome(dec *keygen.DecodingContext, v []gf4.Elem) ([]gf4.Elem, error) {
	r := dec.R
	if len(v) != 2*r {
		return nil, ErrIncorrectInputVectorLength
	}
	field := dec.Field
	s := make([]gf4.Elem, r)
	for idx := 0; idx < r; idx++ {
		h0 := circulantRow(dec.H0, idx, r)
		h1 := circulantRow(dec.H1, idx, r)
		sum := field.Zero()
		for j := 0; j < r; j++ {
			sum = field.Add(sum, field.Mul(h0(j), v[j]))
			sum = field.Add(sum, field.Mul(h1(j), v[r+j]))
		}
		s[idx] = sum
	}
	return s, nil
}

func weight(field gf4.Field, v []gf4.Elem) int {
	n := 0
	for _, e := range v {
		if !field.IsZero(e) {
			n++
		}
	}
	return n
}
