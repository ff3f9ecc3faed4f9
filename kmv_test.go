package seqlsh

import (
	"errors"
	"slices"
	"testing"

	seqerrors "github.com/kira-bio/seqlsh/errors"
)

func TestKMVZeroK(t *testing.T) {
	_, err := NewKMV(0)
	if !errors.Is(err, seqerrors.ErrZeroK) {
		t.Errorf("Expected ErrZeroK, got %v", err)
	}
	if !errors.Is(err, seqerrors.ErrInvalidParameter) {
		t.Errorf("ErrZeroK should match ErrInvalidParameter, got %v", err)
	}
}

func TestKMVOrderIndependence(t *testing.T) {
	rng := newTestRNG(t)
	tokens := randomTokens(rng, 500)

	ref := kmvSignature(t, 64, tokens)
	for trial := 0; trial < 10; trial++ {
		sig := kmvSignature(t, 64, shuffledWithDuplicates(rng, tokens))
		if !signaturesEqual(ref, sig) {
			t.Fatalf("trial %d: signature differs under shuffling/duplication", trial)
		}
	}
}

func TestKMVSignatureLength(t *testing.T) {
	rng := newTestRNG(t)
	for _, tc := range []struct {
		k        int
		distinct int
	}{
		{k: 8, distinct: 3},
		{k: 8, distinct: 8},
		{k: 8, distinct: 100},
		{k: 128, distinct: 8},
		{k: 1, distinct: 50},
	} {
		distinct := make(map[uint64]struct{}, tc.distinct)
		tokens := make([]uint64, 0, tc.distinct)
		for len(tokens) < tc.distinct {
			v := rng.Uint64()
			if _, dup := distinct[v]; dup {
				continue
			}
			distinct[v] = struct{}{}
			tokens = append(tokens, v)
		}

		sig := kmvSignature(t, tc.k, tokens)
		want := min(tc.k, tc.distinct)
		if len(sig) != want {
			t.Errorf("k=%d distinct=%d: signature length %d, want %d", tc.k, tc.distinct, len(sig), want)
		}
	}
}

func TestKMVBottomKProperty(t *testing.T) {
	rng := newTestRNG(t)
	tokens := randomTokens(rng, 1000)
	k := 32

	sig := kmvSignature(t, k, tokens)
	if len(sig) != k {
		t.Fatalf("signature length %d, want %d", len(sig), k)
	}
	if !slices.IsSorted(sig) {
		t.Error("signature is not sorted ascending")
	}
	for i := 1; i < len(sig); i++ {
		if sig[i] == sig[i-1] {
			t.Fatalf("signature contains duplicate value %#x", sig[i])
		}
	}

	// Every retained value must be <= every distinct value not retained.
	retained := make(map[uint64]struct{}, k)
	for _, v := range sig {
		retained[v] = struct{}{}
	}
	maxRetained := sig[len(sig)-1]
	for _, v := range tokens {
		if _, ok := retained[v]; ok {
			continue
		}
		if v < maxRetained {
			t.Fatalf("excluded token %#x is smaller than retained %#x", v, maxRetained)
		}
	}
}

func TestKMVDuplicatesDoNotOccupySlots(t *testing.T) {
	s, err := NewKMV(4)
	if err != nil {
		t.Fatal(err)
	}
	// Flood with one value, then supply four distinct smaller ones.
	for range 100 {
		s.Update(1000)
	}
	for _, v := range []uint64{5, 3, 9, 7} {
		s.Update(v)
	}
	sig, err := s.Finish()
	if err != nil {
		t.Fatal(err)
	}
	want := Signature{3, 5, 7, 9}
	if !signaturesEqual(sig, want) {
		t.Errorf("signature %v, want %v", sig, want)
	}
}

func TestKMVFinishTwice(t *testing.T) {
	s, err := NewKMV(4)
	if err != nil {
		t.Fatal(err)
	}
	s.Update(1)
	if _, err := s.Finish(); err != nil {
		t.Fatalf("first Finish: %v", err)
	}
	_, err = s.Finish()
	if !errors.Is(err, seqerrors.ErrSketchDone) {
		t.Errorf("Expected ErrSketchDone, got %v", err)
	}
	if !errors.Is(err, seqerrors.ErrInvalidState) {
		t.Errorf("ErrSketchDone should match ErrInvalidState, got %v", err)
	}
}

func TestKMVUpdateAfterFinishPanics(t *testing.T) {
	s, err := NewKMV(4)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Finish(); err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Error("Expected panic from Update after Finish")
		}
	}()
	s.Update(1)
}

func TestKMVEmptyInput(t *testing.T) {
	sig := kmvSignature(t, 16, nil)
	if len(sig) != 0 {
		t.Errorf("empty input should give empty signature, got length %d", len(sig))
	}
}
