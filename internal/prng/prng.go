// Package prng provides the solver's deterministic random source: a
// BLAKE2b XOF keystream keyed by the BLAKE3 hash of a seed phrase.
// Two searches run with the same seed phrase visit exactly the same
// states.
package prng

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// Source reads an unbounded BLAKE2b XOF keystream and exposes it as a
// math/rand source.
type Source struct {
	seed string
	xof  blake2b.XOF
	buf  [8]byte
}

// NewSource creates a deterministic source from a seed phrase. An empty
// phrase keys the stream from the operating system's entropy instead.
func NewSource(seed string) (*Source, error) {
	s := &Source{seed: seed}
	if err := s.reset(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Source) reset() error {
	var key [32]byte
	if s.seed == "" {
		if _, err := rand.Read(key[:]); err != nil {
			return fmt.Errorf("failed to draw prng key: %w", err)
		}
	} else {
		key = blake3.Sum256([]byte(s.seed))
	}
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key[:])
	if err != nil {
		return fmt.Errorf("failed to create prng keystream: %w", err)
	}
	s.xof = xof
	return nil
}

// Uint64 returns the next 8 keystream bytes as an integer.
func (s *Source) Uint64() uint64 {
	if _, err := s.xof.Read(s.buf[:]); err != nil {
		// The XOF stream is unbounded; a read can only fail on a
		// corrupted state.
		panic(err)
	}
	return binary.LittleEndian.Uint64(s.buf[:])
}

// Int63 implements math/rand.Source.
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Seed rewinds the keystream to its start; the numeric argument is
// ignored because the stream is keyed by the seed phrase.
func (s *Source) Seed(int64) {
	if err := s.reset(); err != nil {
		panic(err)
	}
}

// New returns a math/rand generator over a keyed keystream.
func New(seed string) (*mrand.Rand, error) {
	src, err := NewSource(seed)
	if err != nil {
		return nil, err
	}
	return mrand.New(src), nil
}
