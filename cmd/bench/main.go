// Bench is a benchmarking tool for measuring seqlsh sketch construction,
// index build, and candidate query throughput.
//
// Usage:
//
//	go run ./cmd/bench -seqs 10000 -tokens 512 -k 128 -bands 32 -rows 4
//
// Flags:
//
//	-seqs       Number of sequences to index (default: 10,000)
//	-tokens     Tokens per sequence (default: 512)
//	-k          KMV bottom-k size; must equal bands*rows (default: 128)
//	-bands      LSH bands (default: 32)
//	-rows       LSH rows per band (default: 4)
//	-minhash    Use MinHash sketches instead of KMV (default: false)
//	-workers    Parallel workers for build and query (default: NumCPU)
//	-queries    Number of query signatures (default: 1,000)
//	-mincoll    Minimum band collisions per candidate (default: 1)
package main

import (
	"context"
	"flag"
	"fmt"
	mrand "math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/kira-bio/seqlsh"
)

func main() {
	seqsFlag := flag.Int("seqs", 10_000, "number of sequences")
	tokensFlag := flag.Int("tokens", 512, "tokens per sequence")
	kFlag := flag.Int("k", 128, "KMV bottom-k size (must equal bands*rows)")
	bandsFlag := flag.Int("bands", 32, "LSH bands")
	rowsFlag := flag.Int("rows", 4, "LSH rows per band")
	minhashFlag := flag.Bool("minhash", false, "use MinHash instead of KMV")
	workersFlag := flag.Int("workers", runtime.NumCPU(), "parallel workers")
	queriesFlag := flag.Int("queries", 1_000, "number of queries")
	mincollFlag := flag.Int("mincoll", 1, "minimum band collisions")
	flag.Parse()

	params, err := seqlsh.NewLshParams(*bandsFlag, *rowsFlag)
	if err != nil {
		fmt.Printf("Invalid params: %v\n", err)
		os.Exit(1)
	}
	sigLen := params.SignatureLength()
	if !*minhashFlag && *kFlag != sigLen {
		fmt.Printf("KMV k=%d must equal bands*rows=%d\n", *kFlag, sigLen)
		os.Exit(1)
	}

	fmt.Println("Generating token streams...")
	rng := mrand.New(mrand.NewPCG(0x5E15E9C3, 0))
	seqs := make([]seqlsh.SequenceTokens, *seqsFlag)
	for i := range seqs {
		tokens := make([]seqlsh.Token, *tokensFlag)
		for j := range tokens {
			tokens[j] = rng.Uint64()
		}
		seqs[i] = seqlsh.SequenceTokens{ID: seqlsh.SequenceID(i), Tokens: tokens}
	}

	newSketch := func() (seqlsh.Sketch, error) {
		if *minhashFlag {
			return seqlsh.NewMinHash(sigLen, 0x1234567890abcdef)
		}
		return seqlsh.NewKMV(*kFlag)
	}

	fmt.Printf("Building index (%d workers)...\n", *workersFlag)
	buildStart := time.Now()
	idx, err := seqlsh.BuildIndex(context.Background(), params, seqs, newSketch,
		seqlsh.WithWorkers(*workersFlag))
	if err != nil {
		fmt.Printf("Build failed: %v\n", err)
		os.Exit(1)
	}
	buildDuration := time.Since(buildStart)
	fmt.Printf("Build: %d sequences in %v (%.0f seq/s)\n",
		idx.Len(), buildDuration, float64(idx.Len())/buildDuration.Seconds())

	numQueries := min(*queriesFlag, len(seqs))
	queries := make([]seqlsh.Signature, numQueries)
	for i := range queries {
		sig, ok := idx.SignatureOf(seqlsh.SequenceID(i))
		if !ok {
			fmt.Printf("Missing signature for id %d\n", i)
			os.Exit(1)
		}
		queries[i] = sig
	}

	fmt.Printf("Querying %d signatures (%d workers)...\n", numQueries, *workersFlag)
	queryStart := time.Now()
	results, err := seqlsh.QueryAll(context.Background(), idx, queries, *mincollFlag,
		seqlsh.WithWorkers(*workersFlag))
	if err != nil {
		fmt.Printf("Query failed: %v\n", err)
		os.Exit(1)
	}
	queryDuration := time.Since(queryStart)

	total := 0
	for _, cands := range results {
		total += len(cands)
	}
	fmt.Printf("Query: %d queries in %v (%.0f q/s), %.1f candidates/query\n",
		numQueries, queryDuration, float64(numQueries)/queryDuration.Seconds(),
		float64(total)/float64(numQueries))
}
