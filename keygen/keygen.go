// Package keygen samples QC-MDPC key pairs in the quotient ring
// R = F[x]/(x^r-1): a weighted parity-check row h0, an invertible
// weighted row h1, and the derived public generator g = h0*h1^-1 mod
// (x^r-1) (negation is the identity in characteristic two, so there is
// no separate sign to track).
package keygen

import (
	"fmt"
	"os"

	"golang.org/x/crypto/sha3"

	"mdpc-gf4/internal/gf4"
	"mdpc-gf4/internal/randsrc"
	"mdpc-gf4/poly"
)

type fmtError string

func (e fmtError) Error() string { return string(e) }

// ErrInverterBug is returned when the post-inversion sanity check
// (h1 * inverse mod f == 1) fails. It indicates a defect in the
// polynomial inverter, not a property of the sampled keys, and is
// always fatal — callers should not retry key generation after seeing
// it.
var ErrInverterBug = fmtError("keygen: inverter sanity check failed")

// Debug toggles diagnostic narration of the sample-and-reject loop,
// mirroring the teacher's debug.go-gated stderr tracing.
var Debug = false

func dbg(format string, args ...interface{}) {
	if Debug {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// fingerprint renders a short hex digest of v's integer representation,
// for telling two debug-narrated key pairs apart in a log without
// printing the full vector. It carries no cryptographic weight and
// never gates any control-flow decision.
func fingerprint(v []gf4.Elem) string {
	raw := make([]byte, len(v))
	for i, e := range v {
		raw[i] = byte(e)
	}
	sum := sha3.Sum256(raw)
	return fmt.Sprintf("%x", sum[:4])
}

// EncodingContext is the public handle: the single ring element
// g = h0*h1^-1 mod (x^r-1), stored as a length-r coefficient vector.
// The full generator matrix G = [I | rot(g)^T] is never materialised.
type EncodingContext struct {
	Field gf4.Field
	R     int
	G     []gf4.Elem
}

// DecodingContext is the private handle: the two weight-w rows h0, h1.
// The full parity-check matrix H = [rot(h0) | rot(h1)] is never
// materialised.
type DecodingContext struct {
	Field gf4.Field
	R, W  int
	H0    []gf4.Elem
	H1    []gf4.Elem
}

// modulus returns f(x) = x^r - 1 = x^r + 1 over field.
func modulus(field gf4.Field, r int) poly.Polynomial {
	return poly.Buffer(field, r).
		SetCoefficient(0, field.One()).
		SetCoefficient(r, field.One())
}

// ringVector reduces p modulo x^r-1 implicitly (p is assumed already
// of degree < r, the case for every polynomial this package produces)
// and returns its length-r coefficient vector.
func ringVector(p poly.Polynomial, r int) []gf4.Elem {
	out := make([]gf4.Elem, r)
	for i := 0; i < r; i++ {
		out[i] = p.Coeff(i)
	}
	return out
}

// GenerateKeyPair samples (h0, h1) in R = F[x]/(x^r-1), inverts h1, and
// derives the public block g = h0*h1^-1 mod (x^r-1).
//
// The draw-and-reject loop for h1 terminates with probability 1 in the
// limit (the density of invertible elements of R is bounded below);
// src being a deterministic PRNG handle makes any particular run
// reproducible even though the loop's length is itself random.
func GenerateKeyPair(field gf4.Field, r, w int, src *randsrc.Source) (*EncodingContext, *DecodingContext, error) {
	f := modulus(field, r)

	h0, err := src.RandomWeightedVector(field, r, w)
	if err != nil {
		return nil, nil, err
	}
	h0Poly := poly.New(field, h0)

	var h1 []gf4.Elem
	var h1Poly, inv poly.Polynomial
	for attempt := 1; ; attempt++ {
		h1, err = src.RandomWeightedVector(field, r, w)
		if err != nil {
			return nil, nil, err
		}
		sum := field.Zero()
		for _, e := range h1 {
			sum = field.Add(sum, e)
		}
		if field.IsZero(sum) {
			dbg("keygen: attempt %d rejected (sum(h1) = 0)\n", attempt)
			continue
		}
		h1Poly = poly.New(field, h1)
		var ok bool
		inv, ok, err = h1Poly.Invert(f)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			dbg("keygen: attempt %d rejected (h1 not invertible mod f)\n", attempt)
			continue
		}
		_, check, divErr := h1Poly.Mul(inv).DivRem(f)
		if divErr != nil {
			return nil, nil, divErr
		}
		if !check.IsOne() {
			return nil, nil, ErrInverterBug
		}
		dbg("keygen: accepted h1 after %d attempt(s), fp=%s\n", attempt, fingerprint(h1))
		break
	}

	_, g, divErr := h0Poly.Mul(inv).DivRem(f)
	if divErr != nil {
		return nil, nil, divErr
	}

	enc := &EncodingContext{Field: field, R: r, G: ringVector(g, r)}
	dec := &DecodingContext{Field: field, R: r, W: w, H0: h0, H1: h1}
	dbg("keygen: generated key pair fp(g)=%s fp(h0)=%s\n", fingerprint(enc.G), fingerprint(h0))
	return enc, dec, nil
}
