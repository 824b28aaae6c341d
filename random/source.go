// Package random provides the uniform [0,1) random source used by shuffling,
// with a reproducible seeded implementation for tests.
package random

import (
	"encoding/binary"
	"math/rand/v2"
	"sync"

	"golang.org/x/crypto/chacha20"
)

// Source produces uniformly distributed float64 values in [0, 1).
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// Default returns a Source backed by the process-wide math/rand/v2 generator.
// It is safe for concurrent use.
func Default() Source { return globalSource{} }

// Seeded is a deterministic Source: two values created with the same seed
// produce the same sequence on every platform and Go release. Values are
// drawn from a ChaCha20 keystream.
//
// Seeded is safe for concurrent use.
type Seeded struct {
	mu     sync.Mutex
	stream *chacha20.Cipher
}

// NewSeeded returns a Seeded source for seed.
func NewSeeded(seed uint64) *Seeded {
	var key [chacha20.KeySize]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	var nonce [chacha20.NonceSize]byte
	stream, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		// key and nonce have the sizes the cipher requires
		panic("random: " + err.Error())
	}
	return &Seeded{stream: stream}
}

// Uint64 returns the next 64 bits of the keystream.
func (s *Seeded) Uint64() uint64 {
	var buf [8]byte
	s.mu.Lock()
	s.stream.XORKeyStream(buf[:], buf[:])
	s.mu.Unlock()
	return binary.LittleEndian.Uint64(buf[:])
}

// Float64 returns a value in [0, 1) with 53 bits of precision.
func (s *Seeded) Float64() float64 {
	return float64(s.Uint64()>>11) / (1 << 53)
}

// Intn returns a uniform integer in [0, n) drawn from src. n must be positive.
func Intn(src Source, n int) int {
	if n <= 0 {
		panic("random: invalid argument to Intn")
	}
	i := int(src.Float64() * float64(n))
	if i >= n {
		// guards against sources that round up to 1.0
		i = n - 1
	}
	return i
}
