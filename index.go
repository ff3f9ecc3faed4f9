package seqlsh

import (
	"fmt"
	"slices"

	seqerrors "github.com/kira-bio/seqlsh/errors"
)

// LshIndex buckets signatures by band key and answers collision-threshold
// candidate queries. It is append-only: entries can be inserted or
// overwritten but never deleted; to change content wholesale, build a new
// index.
//
// Sharing discipline: the index has a write phase (one logical writer calling
// Insert and Build) and a read phase (arbitrarily many concurrent
// QueryCandidates callers with no synchronization, once no further writes
// occur). The transition between phases is the caller's responsibility; the
// index performs no internal locking.
type LshIndex struct {
	params LshParams
	seed   uint64

	// One map per band: band key -> ids bucketed under that key.
	bands []map[uint64][]SequenceID

	// Every inserted signature, retained for re-insert cleanup and lookup.
	signatures map[SequenceID]Signature
}

// NewIndex creates an empty index with fixed params. The band-folding seed
// defaults to a library-wide constant; override it with WithSeed when
// isolating unrelated datasets.
func NewIndex(params LshParams, opts ...IndexOption) *LshIndex {
	cfg := indexConfig{seed: defaultIndexSeed}
	for _, opt := range opts {
		opt(&cfg)
	}
	bands := make([]map[uint64][]SequenceID, params.Bands())
	for i := range bands {
		bands[i] = make(map[uint64][]SequenceID)
	}
	return &LshIndex{
		params:     params,
		seed:       cfg.seed,
		bands:      bands,
		signatures: make(map[SequenceID]Signature),
	}
}

// Params returns the index shape.
func (x *LshIndex) Params() LshParams { return x.params }

// Len returns the number of indexed sequences.
func (x *LshIndex) Len() int { return len(x.signatures) }

// SignatureOf returns the retained signature for id, if id was inserted.
func (x *LshIndex) SignatureOf(id SequenceID) (Signature, bool) {
	sig, ok := x.signatures[id]
	return sig, ok
}

// Insert records id under every band key of signature. Fails with
// ErrSignatureLength unless len(signature) == params.SignatureLength().
//
// Re-inserting an existing id is idempotent overwrite: the id's bucket
// memberships from the prior signature are removed before the new ones are
// added, so the index always reflects exactly one signature per id.
func (x *LshIndex) Insert(id SequenceID, signature Signature) error {
	need := x.params.SignatureLength()
	if len(signature) != need {
		return fmt.Errorf("%w: got %d, want %d", seqerrors.ErrSignatureLength, len(signature), need)
	}

	if old, ok := x.signatures[id]; ok {
		x.removeMemberships(id, old)
	}

	rows := x.params.Rows()
	folder := newBandFolder(x.seed)
	for b := 0; b < x.params.Bands(); b++ {
		key := folder.fold(b, signature[b*rows:(b+1)*rows])
		x.bands[b][key] = append(x.bands[b][key], id)
	}
	x.signatures[id] = slices.Clone(signature)
	return nil
}

// removeMemberships drops id from the buckets its old signature mapped to.
// The old keys are recomputed; folding is pure, so they are exactly the keys
// the original insert used.
func (x *LshIndex) removeMemberships(id SequenceID, old Signature) {
	rows := x.params.Rows()
	folder := newBandFolder(x.seed)
	for b := 0; b < x.params.Bands(); b++ {
		key := folder.fold(b, old[b*rows:(b+1)*rows])
		bucket := x.bands[b][key]
		for i, member := range bucket {
			if member == id {
				bucket = append(bucket[:i], bucket[i+1:]...)
				break
			}
		}
		if len(bucket) == 0 {
			delete(x.bands[b], key)
		} else {
			x.bands[b][key] = bucket
		}
	}
}

// Build finalizes the index for querying. It sorts each bucket by id and
// clips excess capacity. Build is idempotent, safe to call any number of
// times, and never changes query results, only their cost and the index's
// memory footprint. Calling it is optional.
func (x *LshIndex) Build() {
	for _, band := range x.bands {
		for key, bucket := range band {
			slices.Sort(bucket)
			band[key] = slices.Clip(bucket)
		}
	}
}

// QueryCandidates returns every indexed id whose signature collides with the
// query signature in at least minCollisions bands, together with its
// collision count. Results are ordered by collisions descending, then id
// ascending, so output is deterministic.
//
// Fails with ErrMinCollisionsRange unless 1 <= minCollisions <= bands, and
// with ErrSignatureLength unless the signature matches the index shape.
// Querying a signature equal to one inserted under id always reports id with
// Collisions == bands: identical chunks fold to identical keys.
func (x *LshIndex) QueryCandidates(signature Signature, minCollisions int) ([]Candidate, error) {
	if minCollisions < 1 || minCollisions > x.params.Bands() {
		return nil, fmt.Errorf("%w: got %d with bands=%d", seqerrors.ErrMinCollisionsRange, minCollisions, x.params.Bands())
	}
	need := x.params.SignatureLength()
	if len(signature) != need {
		return nil, fmt.Errorf("%w: got %d, want %d", seqerrors.ErrSignatureLength, len(signature), need)
	}

	rows := x.params.Rows()
	folder := newBandFolder(x.seed)
	counts := make(map[SequenceID]int)
	for b := 0; b < x.params.Bands(); b++ {
		key := folder.fold(b, signature[b*rows:(b+1)*rows])
		for _, id := range x.bands[b][key] {
			counts[id]++
		}
	}

	out := make([]Candidate, 0, len(counts))
	for id, c := range counts {
		if c >= minCollisions {
			out = append(out, Candidate{ID: id, Collisions: c})
		}
	}
	slices.SortFunc(out, func(a, b Candidate) int {
		if a.Collisions != b.Collisions {
			return b.Collisions - a.Collisions
		}
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
	return out, nil
}
