// SPDX-License-Identifier: MIT
// Package block: vector encodings and the on-disk format version.

package block

import "fmt"

// FormatVersion is the version of the block file layout described in this
// package. It changes whenever a reader of the previous version would
// misinterpret new files.
const FormatVersion = 1

// Encoding selects how block indices are written.
type Encoding string

const (
	// EncodingGrid writes the index pair on every record, vectors included.
	EncodingGrid Encoding = "grid"
	// EncodingCollapsed writes one index per record; vectors only.
	EncodingCollapsed Encoding = "collapsed"
)

// ParseEncoding maps a name to an Encoding. The empty string means EncodingGrid.
func ParseEncoding(s string) (Encoding, error) {
	switch Encoding(s) {
	case "", EncodingGrid:
		return EncodingGrid, nil
	case EncodingCollapsed:
		return EncodingCollapsed, nil
	}

	return "", fmt.Errorf("encoding %q: %w", s, ErrUnsupportedEncoding)
}

// Check reports whether e can encode geometry g.
func (e Encoding) Check(g Geometry) error {
	switch e {
	case EncodingGrid:
		return nil
	case EncodingCollapsed:
		if !g.IsVector() {
			return fmt.Errorf("%s requires a vector geometry, got %s: %w", e, g, ErrUnsupportedEncoding)
		}
		return nil
	}

	return fmt.Errorf("encoding %q: %w", string(e), ErrUnsupportedEncoding)
}

// indexFields is the number of leading index tokens per record.
func (e Encoding) indexFields() int {
	if e == EncodingCollapsed {
		return 1
	}
	return 2
}

// collapse maps a block position to the single index of a collapsed vector.
func collapse(g Geometry, bi, bj int) int {
	if g.Rows == 1 {
		return bj
	}
	return bi
}

// expand is the inverse of collapse.
func expand(g Geometry, idx int) (bi, bj int) {
	if g.Rows == 1 {
		return 0, idx
	}
	return idx, 0
}
