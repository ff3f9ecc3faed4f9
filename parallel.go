package seqlsh

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// workChanBufferMultiplier is the multiplier for work channel buffer size.
const workChanBufferMultiplier = 2

// SequenceTokens is one unit of work for the parallel build: a sequence id
// and its token stream.
type SequenceTokens struct {
	ID     SequenceID
	Tokens []Token
}

// sketchWork carries one sequence to a worker. pos is the sequence's
// position in the input slice, used by the inserter to apply results in
// input order.
type sketchWork struct {
	pos int
	seq SequenceTokens
}

// sketchResult holds one finished signature.
type sketchResult struct {
	pos int
	id  SequenceID
	sig Signature
}

// BuildIndex sketches every sequence concurrently and assembles one
// LshIndex. newSketch must return a fresh sketch per call (e.g. a closure
// over NewKMV or NewMinHash); MinHash factories must fix (numHashes, seed0)
// so all signatures are comparable.
//
// The sketching phase shares no mutable state between workers. A single
// inserter then applies (id, signature) pairs in input order, so the
// resulting index is identical regardless of worker count or scheduling;
// when the input repeats an id, the later position wins, matching a serial
// insert loop. The index is built (compacted) before being returned and is
// ready for concurrent readers.
//
// Any sketch or insert error aborts the build; the first error is returned.
func BuildIndex(ctx context.Context, params LshParams, seqs []SequenceTokens, newSketch func() (Sketch, error), opts ...CoordinatorOption) (*LshIndex, error) {
	cfg := coordinatorConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	workers := cfg.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(seqs) {
		workers = len(seqs)
	}

	idx := NewIndex(params)
	if len(seqs) == 0 {
		idx.Build()
		return idx, nil
	}

	workChan := make(chan sketchWork, workers*workChanBufferMultiplier)
	resultChan := make(chan sketchResult, workers*workChanBufferMultiplier)

	// Explicit cancel so a failed inserter can unblock workers stuck sending
	// results.
	buildCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	group, groupCtx := errgroup.WithContext(buildCtx)
	for range workers {
		group.Go(func() error {
			for work := range workChan {
				s, err := newSketch()
				if err != nil {
					return err
				}
				for _, t := range work.seq.Tokens {
					s.Update(t)
				}
				sig, err := s.Finish()
				if err != nil {
					return err
				}
				select {
				case resultChan <- sketchResult{pos: work.pos, id: work.seq.ID, sig: sig}:
				case <-groupCtx.Done():
					return groupCtx.Err()
				}
			}
			return nil
		})
	}

	// Inserter: single writer applying results in input order. Out-of-order
	// arrivals wait in pending until their turn.
	inserterDone := make(chan error, 1)
	go func() {
		defer close(inserterDone)
		pending := make(map[int]sketchResult)
		next := 0
		for result := range resultChan {
			pending[result.pos] = result
			for r, ok := pending[next]; ok; r, ok = pending[next] {
				delete(pending, next)
				if err := idx.Insert(r.id, r.sig); err != nil {
					inserterDone <- err
					cancel()
					return
				}
				next++
			}
		}
	}()

	// Dispatch all work, then drain the pipeline.
	var dispatchErr error
dispatch:
	for pos, seq := range seqs {
		select {
		case workChan <- sketchWork{pos: pos, seq: seq}:
		case <-groupCtx.Done():
			dispatchErr = groupCtx.Err()
			break dispatch
		}
	}
	close(workChan)

	workerErr := group.Wait()
	close(resultChan)
	insertErr := <-inserterDone

	// Insert errors first: a failed insert cancels the workers, so their
	// context errors are secondary.
	switch {
	case insertErr != nil:
		return nil, insertErr
	case workerErr != nil:
		return nil, workerErr
	case dispatchErr != nil:
		return nil, dispatchErr
	}

	idx.Build()
	return idx, nil
}

// QueryAll runs QueryCandidates for every query signature against an
// immutable index, fanning the queries out across workers. Slot i of the
// result always holds the candidates for queries[i], so output is
// independent of scheduling.
//
// The index must be in its read phase: no Insert or Build may run
// concurrently. Queries are read-only, so any number of QueryAll calls may
// also run concurrently with each other.
func QueryAll(ctx context.Context, idx *LshIndex, queries []Signature, minCollisions int, opts ...CoordinatorOption) ([][]Candidate, error) {
	cfg := coordinatorConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	workers := cfg.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(queries) {
		workers = len(queries)
	}

	results := make([][]Candidate, len(queries))
	if len(queries) == 0 {
		return results, nil
	}

	// Contiguous chunks: workers write disjoint slots, no locks needed.
	group, groupCtx := errgroup.WithContext(ctx)
	chunk := (len(queries) + workers - 1) / workers
	for start := 0; start < len(queries); start += chunk {
		end := min(start+chunk, len(queries))
		group.Go(func() error {
			for i := start; i < end; i++ {
				if err := groupCtx.Err(); err != nil {
					return err
				}
				cands, err := idx.QueryCandidates(queries[i], minCollisions)
				if err != nil {
					return err
				}
				results[i] = cands
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
