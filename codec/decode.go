package codec

import (
	"fmt"
	"os"

	"golang.org/x/crypto/sha3"

	"mdpc-gf4/internal/gf4"
	"mdpc-gf4/keygen"
)

// Debug toggles per-iteration syndrome-weight narration, mirroring the
// teacher's debug.go-gated stderr tracing.
var Debug = false

func dbg(format string, args ...interface{}) {
	if Debug {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// fingerprint renders a short hex digest of v's integer representation,
// for telling two debug-narrated vectors apart in a log. No
// cryptographic weight; purely a log-line identifier.
func fingerprint(v []gf4.Elem) string {
	raw := make([]byte, len(v))
	for i, e := range v {
		raw[i] = byte(e)
	}
	sum := sha3.Sum256(raw)
	return fmt.Sprintf("%x", sum[:4])
}

// IterationTrace, when non-nil, receives the syndrome Hamming weight
// once before any flip (as iteration 0) and then once after each
// iteration's flip, labelled with that iteration's number. It exists purely for diagnostics — the CLI demo's
// optional -plot flag renders it as a line chart of one decode run —
// and has no effect on the decoder's behavior.
type IterationTrace func(iteration, syndromeWeight int)

// Decode recovers the length-2r error vector e from a possibly
// corrupted codeword y using the iterative symbol-flipping algorithm,
// running at most maxIterations rounds. ok is false when the syndrome
// has not reached zero within the budget; this is the decoder's normal
// probabilistic failure mode, not an error.
func Decode(dec *keygen.DecodingContext, y []gf4.Elem, maxIterations int, trace IterationTrace) (e []gf4.Elem, ok bool, err error) {
	r := dec.R
	if len(y) != 2*r {
		return nil, false, ErrIncorrectInputVectorLength
	}
	field := dec.Field

	s, err := Syndrome(dec, y)
	if err != nil {
		return nil, false, err
	}
	e = make([]gf4.Elem, 2*r)
	omega := weight(field, s)
	dbg("decode: start fp(y)=%s omega=%d\n", fingerprint(y), omega)
	if trace != nil {
		trace(0, omega)
	}
	if omega == 0 {
		return e, true, nil
	}

	candidates := field.NonzeroElements()
	// Sentinel below any achievable sigma (sigma is bounded in
	// [-r, r]), so the first candidate examined always replaces it;
	// from then on a non-strict improvement keeps overwriting, so
	// among equally good candidates the last one scanned wins.
	const impossible = -1 << 30

	for iter := 1; iter <= maxIterations; iter++ {
		bestSigma := impossible
		bestJ, bestA := -1, gf4.Elem(0)
		zeroCount := r - omega

		for j := 0; j < 2*r; j++ {
			var block []gf4.Elem
			var k int
			if j < r {
				block = dec.H0
				k = j
			} else {
				block = dec.H1
				k = j - r
			}
			for _, a := range candidates {
				zeroAfter := 0
				for idx := 0; idx < r; idx++ {
					i := r - idx
					hk := block[(i+k)%r]
					if field.IsZero(field.Sub(s[idx], field.Mul(a, hk))) {
						zeroAfter++
					}
				}
				sigma := zeroAfter - zeroCount
				if sigma >= bestSigma {
					bestSigma = sigma
					bestJ = j
					bestA = a
				}
			}
		}

		var block []gf4.Elem
		var k int
		if bestJ < r {
			block = dec.H0
			k = bestJ
		} else {
			block = dec.H1
			k = bestJ - r
		}
		for idx := 0; idx < r; idx++ {
			i := r - idx
			hk := block[(i+k)%r]
			s[idx] = field.Sub(s[idx], field.Mul(bestA, hk))
		}
		e[bestJ] = field.Add(e[bestJ], bestA)
		omega = weight(field, s)
		if trace != nil {
			trace(iter, omega)
		}
		dbg("decode: iter=%d flip j=%d a=%v sigma=%d omega=%d\n", iter, bestJ, field.String(bestA), bestSigma, omega)

		if omega == 0 {
			return e, true, nil
		}
	}

	if omega == 0 {
		return e, true, nil
	}
	return nil, false, nil
}
