package seqlsh

import (
	seqerrors "github.com/kira-bio/seqlsh/errors"
)

// LshParams fixes the shape of an index: bands many bands of rows values
// each. The only signature length the index accepts is bands*rows.
type LshParams struct {
	bands int
	rows  int
}

// NewLshParams validates and constructs index parameters. Fails with
// ErrZeroBands or ErrZeroRows unless both are strictly positive.
func NewLshParams(bands, rows int) (LshParams, error) {
	if bands <= 0 {
		return LshParams{}, seqerrors.ErrZeroBands
	}
	if rows <= 0 {
		return LshParams{}, seqerrors.ErrZeroRows
	}
	return LshParams{bands: bands, rows: rows}, nil
}

// Bands returns the number of bands.
func (p LshParams) Bands() int { return p.bands }

// Rows returns the number of rows per band.
func (p LshParams) Rows() int { return p.rows }

// SignatureLength returns bands*rows, the required signature length.
func (p LshParams) SignatureLength() int { return p.bands * p.rows }
