package seqlsh

import (
	"fmt"

	seqerrors "github.com/kira-bio/seqlsh/errors"
)

// EstimateJaccardMinHash estimates Jaccard similarity from two
// position-aligned MinHash signatures built with identical (numHashes,
// seed0): the fraction of positions where the signatures agree. The result
// is in [0,1]. Fails with ErrEstimatorLengths on mismatched lengths.
//
// Feeding KMV signatures to this estimator yields a biased result, since
// their positions are sorted ranks, not aligned hash functions; use
// EstimateJaccardKMV for those.
func EstimateJaccardMinHash(a, b Signature) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", seqerrors.ErrEstimatorLengths, len(a), len(b))
	}
	if len(a) == 0 {
		return 0, nil
	}
	eq := 0
	for i := range a {
		if a[i] == b[i] {
			eq++
		}
	}
	return float64(eq) / float64(len(a)), nil
}

// EstimateJaccardKMV estimates Jaccard similarity from two KMV (bottom-k)
// signatures: sorted ascending, distinct values, drawn from the same single
// hash stream. A linear merge counts shared values and the size of the
// merged union, and reports their ratio. The result is in [0,1]. Fails with
// ErrEstimatorLengths on mismatched lengths.
//
// Both sketches must have been built with the same k and fed enough distinct
// tokens to fill it; the estimate degrades when either signature is
// truncated below k.
func EstimateJaccardKMV(a, b Signature) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", seqerrors.ErrEstimatorLengths, len(a), len(b))
	}
	if len(a) == 0 {
		return 0, nil
	}
	shared, union := 0, 0
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		union++
		switch {
		case a[i] == b[j]:
			shared++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	union += (len(a) - i) + (len(b) - j)
	return float64(shared) / float64(union), nil
}
