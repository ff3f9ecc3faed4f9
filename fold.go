package seqlsh

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/kira-bio/seqlsh/internal/mix"
)

// defaultIndexSeed is the band-folding seed used unless WithSeed overrides
// it. Indexes must share a seed to produce comparable band keys.
const defaultIndexSeed = 0xC0FFEEFADE

// bandFolder folds one band's chunk of a signature into a single 64-bit key.
// The per-band seed is derived from (index seed, band index) with SplitMix64
// and fed into a streaming xxHash64 digest ahead of the chunk values, so the
// key is a pure function of (seed, band index, chunk) with no platform or
// run-to-run variation.
//
// A folder is cheap, holds only scratch state, and is not safe for
// concurrent use; insert and query each construct their own.
type bandFolder struct {
	seed uint64
	d    xxhash.Digest
	buf  [8]byte
}

func newBandFolder(seed uint64) *bandFolder {
	return &bandFolder{seed: seed}
}

// fold returns the band key for chunk within band b.
func (f *bandFolder) fold(b int, chunk []uint64) uint64 {
	f.d.Reset()
	binary.LittleEndian.PutUint64(f.buf[:], mix.WithSeed(uint64(b), f.seed))
	f.d.Write(f.buf[:])
	for _, v := range chunk {
		binary.LittleEndian.PutUint64(f.buf[:], v)
		f.d.Write(f.buf[:])
	}
	return f.d.Sum64()
}
