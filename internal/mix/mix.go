// Package mix provides the deterministic 64-bit avalanche mixing primitives
// shared by the MinHash permutations and the band folder.
//
// All functions are pure integer arithmetic, so results are identical on
// every platform and in every run. That property underpins the library's
// reproducibility contract: two machines indexing the same sequences must
// produce the same band keys.
package mix

const golden = 0x9E3779B97F4A7C15

// SplitMix64 is the SplitMix64 output function (Steele et al.). It adds the
// golden-ratio increment and applies the avalanching finalizer, so successive
// inputs x, x+golden, ... reproduce the reference generator's output stream.
func SplitMix64(x uint64) uint64 {
	x += golden
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// WithSeed mixes x under a seed, acting as a cheap deterministic permutation
// of the uint64 space. Distinct seeds give effectively independent mixes.
func WithSeed(x, seed uint64) uint64 {
	return SplitMix64(x ^ seed)
}
