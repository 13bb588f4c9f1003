// Package randutil provides random value generation.  The default source is
// cryptographically secure; deterministic seeded generators are available as
// explicit, scoped instances.
package randutil

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"
	mathrand "math/rand"

	"github.com/google/uuid"
	base58 "github.com/jbenet/go-base58"
	"github.com/spaolacci/murmur3"
)

const defaultAlphabet = `abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789`

// Bytes returns n random bytes from a source suitable for cryptographic use.
func Bytes(n int) ([]byte, error) {
	out := make([]byte, n)

	if _, err := rand.Read(out); err == nil {
		return out, nil
	} else {
		return nil, err
	}
}

// Int returns a uniformly random integer in the half-open range [0, max)
// from a cryptographically secure source.
func Int(max int64) (int64, error) {
	if max <= 0 {
		return 0, fmt.Errorf("max must be positive, got %d", max)
	}

	if v, err := rand.Int(rand.Reader, big.NewInt(max)); err == nil {
		return v.Int64(), nil
	} else {
		return 0, err
	}
}

// IntRange returns a uniformly random integer in the half-open range
// [lower, upper).
func IntRange(lower int64, upper int64) (int64, error) {
	if upper <= lower {
		return 0, fmt.Errorf("upper bound %d must exceed lower bound %d", upper, lower)
	}

	if v, err := Int(upper - lower); err == nil {
		return lower + v, nil
	} else {
		return 0, err
	}
}

// String returns a random string of length n drawn from the given alphabet
// (alphanumerics by default).
func String(n int, alphabet ...string) (string, error) {
	chars := []rune(defaultAlphabet)

	if len(alphabet) > 0 && alphabet[0] != `` {
		chars = []rune(alphabet[0])
	}

	out := make([]rune, n)

	for i := range out {
		if v, err := Int(int64(len(chars))); err == nil {
			out[i] = chars[v]
		} else {
			return ``, err
		}
	}

	return string(out), nil
}

// UUID generates a new Version 4 UUID as a string.
func UUID() string {
	return uuid.New().String()
}

// ID returns a short, URL-safe random identifier: n random bytes (12 by
// default) encoded with the Base58 Bitcoin alphabet.
func ID(size ...int) (string, error) {
	n := 12

	if len(size) > 0 && size[0] > 0 {
		n = size[0]
	}

	if data, err := Bytes(n); err == nil {
		return base58.EncodeAlphabet(data, base58.BTCAlphabet), nil
	} else {
		return ``, err
	}
}

// Token returns n random bytes (32 by default) encoded as an unpadded
// URL-safe Base64 string.
func Token(size ...int) (string, error) {
	n := 32

	if len(size) > 0 && size[0] > 0 {
		n = size[0]
	}

	if data, err := Bytes(n); err == nil {
		return base64.RawURLEncoding.EncodeToString(data), nil
	} else {
		return ``, err
	}
}

// Murmur3 hashes the given data using the 64-bit Murmur 3 algorithm.  This is
// a fast non-cryptographic hash suitable for sharding and deduplication.
func Murmur3(data []byte) uint64 {
	return murmur3.Sum64(data)
}

// Seeded returns a deterministic generator seeded with the given value.  The
// returned generator is scoped to the caller; the package-level functions are
// unaffected.
func Seeded(seed int64) *Generator {
	return &Generator{
		rng: mathrand.New(mathrand.NewSource(seed)),
	}
}

// Generator is a deterministic random source created by Seeded.
type Generator struct {
	rng *mathrand.Rand
}

// Int returns a random integer in [0, max), or 0 when max is not positive.
func (self *Generator) Int(max int64) int64 {
	if max <= 0 {
		return 0
	}

	return self.rng.Int63n(max)
}

// Float returns a random float in [0.0, 1.0).
func (self *Generator) Float() float64 {
	return self.rng.Float64()
}

// String returns a random string of length n from the default alphabet.
func (self *Generator) String(n int) string {
	chars := []rune(defaultAlphabet)
	out := make([]rune, n)

	for i := range out {
		out[i] = chars[self.rng.Intn(len(chars))]
	}

	return string(out)
}

// Shuffle randomly reorders the given slice in place.
func (self *Generator) Shuffle(values []interface{}) {
	self.rng.Shuffle(len(values), func(i int, j int) {
		values[i], values[j] = values[j], values[i]
	})
}

// Choice returns a random element of the given slice, or nil if it is empty.
func (self *Generator) Choice(values []interface{}) interface{} {
	if len(values) == 0 {
		return nil
	}

	return values[self.rng.Intn(len(values))]
}

// WeightedChoice returns a random index distributed according to the given
// non-negative weights, or -1 if all weights are zero.
func (self *Generator) WeightedChoice(weights []float64) int {
	var total float64

	for _, w := range weights {
		total += w
	}

	if total <= 0 {
		return -1
	}

	target := self.rng.Float64() * total

	for i, w := range weights {
		target -= w

		if target < 0 {
			return i
		}
	}

	return len(weights) - 1
}

// Sample returns n distinct elements chosen at random from the given slice.
// If n exceeds the slice length, the whole (shuffled) slice is returned.
func (self *Generator) Sample(values []interface{}, n int) []interface{} {
	shuffled := make([]interface{}, len(values))
	copy(shuffled, values)
	self.Shuffle(shuffled)

	if n > len(shuffled) {
		n = len(shuffled)
	}

	return shuffled[:n]
}
