package seqlsh

import (
	"slices"

	seqerrors "github.com/kira-bio/seqlsh/errors"
)

// KMVSketch keeps the k smallest distinct token values seen so far (a
// bottom-k sketch over a single hash stream). It is typically much faster
// than MinHash because each update costs O(log k) instead of O(num hashes).
//
// The working set is a max-at-top binary heap over a flat []uint64, so the
// current largest retained value sits at heap[0] and is evicted first when a
// smaller distinct token arrives. A membership set keeps duplicates from
// ever occupying heap slots.
type KMVSketch struct {
	k        int
	heap     []uint64
	members  map[uint64]struct{}
	finished bool
}

// NewKMV creates a KMV sketch retaining the k smallest distinct values.
// Fails with ErrZeroK if k is zero.
func NewKMV(k int) (*KMVSketch, error) {
	if k <= 0 {
		return nil, seqerrors.ErrZeroK
	}
	return &KMVSketch{
		k:       k,
		heap:    make([]uint64, 0, k),
		members: make(map[uint64]struct{}, k),
	}, nil
}

// Update incorporates a pre-hashed token. Duplicates and tokens larger than
// the current k-th minimum are no-ops.
func (s *KMVSketch) Update(t Token) {
	if s.finished {
		panic("seqlsh: KMVSketch.Update called after Finish")
	}
	if _, seen := s.members[t]; seen {
		return
	}
	if len(s.heap) < s.k {
		s.members[t] = struct{}{}
		s.heap = append(s.heap, t)
		s.siftUp(len(s.heap) - 1)
		return
	}
	// Full: t displaces the largest retained value only if strictly smaller.
	if top := s.heap[0]; t < top {
		delete(s.members, top)
		s.members[t] = struct{}{}
		s.heap[0] = t
		s.siftDown(0)
	}
}

// Finish returns the retained values sorted ascending and invalidates the
// sketch. If fewer than k distinct tokens were seen, the signature is
// shorter than k; the index will reject such a signature unless its params
// happen to require exactly that length.
func (s *KMVSketch) Finish() (Signature, error) {
	if s.finished {
		return nil, seqerrors.ErrSketchDone
	}
	s.finished = true
	out := Signature(s.heap)
	s.heap = nil
	s.members = nil
	slices.Sort(out)
	return out, nil
}

func (s *KMVSketch) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if s.heap[parent] >= s.heap[i] {
			return
		}
		s.heap[parent], s.heap[i] = s.heap[i], s.heap[parent]
		i = parent
	}
}

func (s *KMVSketch) siftDown(i int) {
	n := len(s.heap)
	for {
		largest := i
		if l := 2*i + 1; l < n && s.heap[l] > s.heap[largest] {
			largest = l
		}
		if r := 2*i + 2; r < n && s.heap[r] > s.heap[largest] {
			largest = r
		}
		if largest == i {
			return
		}
		s.heap[i], s.heap[largest] = s.heap[largest], s.heap[i]
		i = largest
	}
}
