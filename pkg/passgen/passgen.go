// Package passgen generates random passwords from a configurable character
// pool. The pool always contains the 52 Latin letters and optionally the ten
// digits and a fixed 32-character punctuation set. Characters are sampled
// independently and uniformly with replacement, so there is no guarantee that
// an enabled class actually appears in the output. Sampling uses math/rand/v2;
// the generator makes no cryptographic-strength claims.
package passgen

import "math/rand/v2"

// Fixed character sets. The pool is always assembled in this order:
// letters, then digits, then symbols.
const (
	letterChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars  = "0123456789"
	symbolChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Length bounds enforced by callers via ClampLength. Generate itself accepts
// any length and leaves range enforcement to the caller.
const (
	MinLength = 6
	MaxLength = 100
)

// Config selects the pool and the output length for one generation request.
// Construct a fresh value per request; Config is never mutated by this package.
type Config struct {
	Length  int
	Digits  bool
	Symbols bool
}

// DefaultConfig returns the widget defaults: 12 characters, digits on,
// symbols off.
func DefaultConfig() Config {
	return Config{Length: 12, Digits: true}
}

// Pool returns the character pool implied by the config: the base alphabet
// plus the enabled optional sets. It is derived on every call and never empty.
func (c Config) Pool() string {
	pool := letterChars
	if c.Digits {
		pool += digitChars
	}
	if c.Symbols {
		pool += symbolChars
	}
	return pool
}

// ClampLength forces n into [MinLength, MaxLength].
func ClampLength(n int) int {
	if n < MinLength {
		return MinLength
	}
	if n > MaxLength {
		return MaxLength
	}
	return n
}

// Generate returns a password of exactly cfg.Length characters, each drawn
// uniformly and independently from cfg.Pool() using the shared math/rand/v2
// source. A non-positive length yields the empty string. No other validation
// is performed.
func Generate(cfg Config) string {
	return sample(cfg, rand.IntN) //nolint:gosec // non-crypto source
}

// GenerateWith is Generate with an explicit source, for callers that need
// reproducible output.
func GenerateWith(r *rand.Rand, cfg Config) string {
	return sample(cfg, r.IntN)
}

func sample(cfg Config, intN func(n int) int) string {
	if cfg.Length < 1 {
		return ""
	}

	pool := cfg.Pool()
	b := make([]byte, cfg.Length)
	for i := range b {
		b[i] = pool[intN(len(pool))]
	}

	return string(b)
}
