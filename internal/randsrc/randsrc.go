// Package randsrc provides the uniform integer sampling and derived
// vector samplers the rest of the module draws key material and
// messages from. A Source is an explicit handle rather than global
// state (unlike the teacher's own package-level mrand.Seed in
// ntru/random_seed.go) so tests can seed it deterministically without
// touching process-wide state.
package randsrc

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"

	"golang.org/x/crypto/chacha20"

	"mdpc-gf4/internal/gf4"
)

type fmtError string

func (e fmtError) Error() string { return string(e) }

// ErrImpossibleHammingWeight is returned by RandomWeightedVector when
// the requested weight exceeds the vector length.
var ErrImpossibleHammingWeight = fmtError("randsrc: weight exceeds vector length")

// reader is the minimal surface Source needs from its backing
// generator: a way to pull uniformly distributed bytes.
type reader interface {
	Uint64() uint64
}

// mtReader adapts *math/rand.Rand to the reader interface. math/rand's
// generator is the "Mersenne-Twister-grade" default the spec asks for.
type mtReader struct{ r *mrand.Rand }

func (m mtReader) Uint64() uint64 { return m.r.Uint64() }

// chachaReader adapts a chacha20 keystream to the reader interface,
// the "or stronger" PRNG option: a seeded stream cipher run with an
// all-zero plaintext is a uniform keystream, a standard way to turn a
// stream cipher into a fast deterministic PRNG.
type chachaReader struct {
	cipher *chacha20.Cipher
}

func (c chachaReader) Uint64() uint64 {
	var buf [8]byte
	c.cipher.XORKeyStream(buf[:], buf[:])
	return binary.LittleEndian.Uint64(buf[:])
}

// Source is a seeded uniform integer generator plus the vector
// samplers built on top of it.
type Source struct {
	r reader
}

// NewMTSource seeds a Source backed by math/rand, grounded on the
// ntru/rng.go RNG wrapper's explicit-seed constructor.
func NewMTSource(seed int64) *Source {
	return &Source{r: mtReader{r: mrand.New(mrand.NewSource(seed))}}
}

// NewChaChaSource seeds a Source backed by a ChaCha20 keystream. The
// seed is expanded into a 32-byte key and a zero nonce; this is not a
// CSPRNG construction (the spec explicitly does not require one) but
// gives a faster, better-distributed stream than math/rand for large
// vectors.
func NewChaChaSource(seed int64) *Source {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], uint64(seed))
	var nonce [chacha20.NonceSize]byte
	cipher, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		// Only possible if key/nonce lengths are wrong, which they
		// cannot be given the fixed-size arrays above.
		panic(err)
	}
	return &Source{r: chachaReader{cipher: cipher}}
}

// NewSeed draws a fresh int64 seed from the OS entropy source, for
// callers that want a fresh Source without picking a seed by hand
// (e.g. the CLI demo).
func NewSeed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(err)
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}

// IntRange returns a uniform integer in the inclusive range [lo, hi].
func (s *Source) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	span := uint64(hi-lo) + 1
	return lo + int(s.r.Uint64()%span)
}

// RandomVector returns a length-n vector with each entry drawn
// uniformly from field (including zero).
func (s *Source) RandomVector(field gf4.Field, n int) []gf4.Elem {
	out := make([]gf4.Elem, n)
	max := int(field.Max())
	for i := range out {
		out[i] = gf4.Elem(s.IntRange(0, max))
	}
	return out
}

// RandomWeightedVector returns a length-n vector with exactly w
// non-zero entries, each drawn uniformly from field's non-zero
// elements, at uniformly random positions.
//
// Implementation follows spec.md's contract literally: the first w
// slots get non-zero draws, the rest are zero, then the whole vector
// is Fisher-Yates shuffled in place.
func (s *Source) RandomWeightedVector(field gf4.Field, n, w int) ([]gf4.Elem, error) {
	if w > n {
		return nil, ErrImpossibleHammingWeight
	}
	out := make([]gf4.Elem, n)
	nonzero := field.NonzeroElements()
	for i := 0; i < w; i++ {
		out[i] = nonzero[s.IntRange(0, len(nonzero)-1)]
	}
	for i := n - 1; i > 0; i-- {
		j := s.IntRange(0, i)
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}
