package seqlsh

// A Token is an opaque pre-hashed 64-bit value, typically a k-mer hash
// produced by an upstream hasher. The library never interprets tokens beyond
// comparing and mixing them.
type Token = uint64

// A Signature is the fixed-shape output of a sketch: an ordered sequence of
// 64-bit values. KMV signatures are sorted ascending with distinct values;
// MinHash signatures are ordered by permutation index. The index accepts any
// signature whose length matches its configured bands*rows.
type Signature []uint64

// SequenceID identifies one input sequence within an index.
type SequenceID uint32

// Candidate is one query result: a sequence id and the number of bands in
// which it collided with the query signature.
type Candidate struct {
	ID         SequenceID
	Collisions int
}

// Sketch turns a stream of tokens into a Signature. Implementations must be
// order independent: the final signature depends only on the set of distinct
// tokens supplied, never on update order or duplicates.
//
// A sketch is single use. Finish consumes it; calling Finish a second time
// fails with ErrSketchDone, and Update after Finish panics (a lifecycle bug
// in the caller, not a recoverable input error).
type Sketch interface {
	// Update incorporates one token. Safe to call with duplicates.
	Update(t Token)

	// Finish produces the signature and invalidates the sketch.
	Finish() (Signature, error)
}
