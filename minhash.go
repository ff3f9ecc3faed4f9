package seqlsh

import (
	"math"

	seqerrors "github.com/kira-bio/seqlsh/errors"
	"github.com/kira-bio/seqlsh/internal/mix"
)

// MinHashSketch is a classic MinHash with numHashes seeded permutations.
// Each update mixes the token under every derived seed and keeps the running
// minimum per position, so position i of the final signature always
// corresponds to the same derived hash function. Two sketches built with the
// same (numHashes, seed0) are directly comparable position by position.
//
// Updates cost O(numHashes); prefer KMVSketch when throughput matters more
// than estimator fidelity.
type MinHashSketch struct {
	seeds    []uint64
	mins     []uint64
	finished bool
}

// NewMinHash creates a MinHash sketch with numHashes permutations derived
// deterministically from seed0 via a SplitMix64 chain. Fails with
// ErrZeroNumHashes if numHashes is zero.
func NewMinHash(numHashes int, seed0 uint64) (*MinHashSketch, error) {
	if numHashes <= 0 {
		return nil, seqerrors.ErrZeroNumHashes
	}
	seeds := make([]uint64, numHashes)
	s := seed0
	for i := range seeds {
		s = mix.SplitMix64(s)
		seeds[i] = s
	}
	mins := make([]uint64, numHashes)
	for i := range mins {
		mins[i] = math.MaxUint64
	}
	return &MinHashSketch{seeds: seeds, mins: mins}, nil
}

// Update incorporates a pre-hashed token into every running minimum.
func (s *MinHashSketch) Update(t Token) {
	if s.finished {
		panic("seqlsh: MinHashSketch.Update called after Finish")
	}
	for i, seed := range s.seeds {
		if h := mix.WithSeed(t, seed); h < s.mins[i] {
			s.mins[i] = h
		}
	}
}

// Finish returns the minima in permutation-index order and invalidates the
// sketch. The signature length always equals numHashes; positions never
// touched by an update remain math.MaxUint64.
func (s *MinHashSketch) Finish() (Signature, error) {
	if s.finished {
		return nil, seqerrors.ErrSketchDone
	}
	s.finished = true
	out := Signature(s.mins)
	s.mins = nil
	s.seeds = nil
	return out, nil
}
