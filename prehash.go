package seqlsh

import (
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// PreHash turns raw bytes (e.g. a canonical k-mer) into an opaque 64-bit
// token using xxHash3. Sketches require uniformly distributed tokens;
// pre-hashing transforms arbitrary input into them.
//
// This is a convenience for callers without their own upstream hasher. Any
// deterministic 64-bit hash works as a token source; the library never
// assumes tokens came from PreHash. Whichever hasher produced the tokens,
// every sequence fed into one comparison must use the same one.
func PreHash(data []byte) Token {
	return xxh3.Hash(data)
}

// PreHashSeeded is PreHash under an explicit seed, using murmur3. Distinct
// seeds yield effectively independent token streams, useful when a caller
// wants repeated KMV trials over the same input to behave like independent
// hash streams.
func PreHashSeeded(data []byte, seed uint32) Token {
	return murmur3.Sum64WithSeed(data, seed)
}
