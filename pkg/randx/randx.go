package randx

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

type cryptoSource struct{}

func (s cryptoSource) Int63() int64 {
	// mask off the sign bit to keep the value non-negative
	return int64(s.Uint64() & (1<<63 - 1))
}

func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	_, _ = crand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

func (cryptoSource) Seed(int64) {}

// NewSource returns a rand.Source64 backed by crypto/rand. Seeding is a
// no-op; the source is already unpredictable.
func NewSource() rand.Source64 {
	return cryptoSource{}
}

// New returns a *rand.Rand drawing from the crypto-backed source.
func New() *rand.Rand {
	return rand.New(cryptoSource{})
}
