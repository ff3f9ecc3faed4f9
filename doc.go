// Package seqlsh implements approximate candidate retrieval between
// sequences represented as sets of pre-hashed 64-bit tokens (e.g. k-mer
// hashes). It narrows all-pairs similarity comparison down to a short
// candidate list per sequence using probabilistic sketches and
// locality-sensitive banding, leaving exact verification and clustering to
// the caller.
//
// # Basic Usage
//
// Sketching and indexing:
//
//	sketch, err := seqlsh.NewKMV(128)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, token := range tokens {
//	    sketch.Update(token)
//	}
//	sig, err := sketch.Finish()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	params, err := seqlsh.NewLshParams(32, 4) // 32 bands x 4 rows = 128
//	if err != nil {
//	    log.Fatal(err)
//	}
//	idx := seqlsh.NewIndex(params)
//	if err := idx.Insert(0, sig); err != nil {
//	    log.Fatal(err)
//	}
//	idx.Build()
//
// Querying candidates:
//
//	cands, err := idx.QueryCandidates(sig, 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, c := range cands {
//	    fmt.Printf("id=%d collided in %d bands\n", c.ID, c.Collisions)
//	}
//
// Use MinHashSketch instead of KMVSketch when estimator fidelity matters
// more than update cost, and EstimateJaccardMinHash/EstimateJaccardKMV to
// score candidate pairs before exact verification.
//
// # Concurrency
//
// The index has two phases: a write phase with a single logical writer
// (Insert, Build) and a read phase where the index is an immutable snapshot
// safe for any number of concurrent QueryCandidates callers. BuildIndex and
// QueryAll fan sketching and querying out across a worker pool while
// preserving that discipline; the resulting index contents never depend on
// scheduling.
//
// # Package Structure
//
//   - Sketches: kmv.go, minhash.go (Sketch interface in sketch.go)
//   - Index: params.go, index.go, fold.go (band key folding)
//   - Estimators: estimate.go
//   - Parallel coordinator: parallel.go (BuildIndex, QueryAll)
//   - Token hashing convenience: prehash.go (PreHash, PreHashSeeded)
//   - Errors: errors/ (sentinels shared across packages)
package seqlsh
