package seqlsh

import (
	"encoding/binary"
	"hash/fnv"
	randv2 "math/rand/v2"
	"testing"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

// newTestRNG returns a deterministic RNG derived from the test name, so
// every test gets an independent but reproducible stream.
func newTestRNG(t testing.TB) *randv2.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return randv2.New(randv2.NewPCG(testSeed1^s1, testSeed2^s2))
}

func mustParams(t testing.TB, bands, rows int) LshParams {
	t.Helper()
	params, err := NewLshParams(bands, rows)
	if err != nil {
		t.Fatalf("NewLshParams(%d, %d): %v", bands, rows, err)
	}
	return params
}

// kmvSignature builds a KMV signature over tokens, failing the test on any
// lifecycle error.
func kmvSignature(t testing.TB, k int, tokens []uint64) Signature {
	t.Helper()
	s, err := NewKMV(k)
	if err != nil {
		t.Fatalf("NewKMV(%d): %v", k, err)
	}
	for _, tok := range tokens {
		s.Update(tok)
	}
	sig, err := s.Finish()
	if err != nil {
		t.Fatalf("KMV Finish: %v", err)
	}
	return sig
}

// minhashSignature builds a MinHash signature over tokens.
func minhashSignature(t testing.TB, numHashes int, seed0 uint64, tokens []uint64) Signature {
	t.Helper()
	s, err := NewMinHash(numHashes, seed0)
	if err != nil {
		t.Fatalf("NewMinHash(%d, %#x): %v", numHashes, seed0, err)
	}
	for _, tok := range tokens {
		s.Update(tok)
	}
	sig, err := s.Finish()
	if err != nil {
		t.Fatalf("MinHash Finish: %v", err)
	}
	return sig
}

// randomTokens returns n random tokens (duplicates possible).
func randomTokens(rng *randv2.Rand, n int) []uint64 {
	tokens := make([]uint64, n)
	for i := range tokens {
		tokens[i] = rng.Uint64()
	}
	return tokens
}

// shuffledWithDuplicates returns a permuted copy of tokens with every value
// appearing at least twice, to exercise order and duplicate insensitivity.
func shuffledWithDuplicates(rng *randv2.Rand, tokens []uint64) []uint64 {
	doubled := make([]uint64, 0, 2*len(tokens))
	doubled = append(doubled, tokens...)
	doubled = append(doubled, tokens...)
	rng.Shuffle(len(doubled), func(i, j int) {
		doubled[i], doubled[j] = doubled[j], doubled[i]
	})
	return doubled
}

func signaturesEqual(a, b Signature) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
