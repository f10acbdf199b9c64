// SPDX-License-Identifier: MIT
// Package block: manifest sidecar.
//
// A block file carries no header, so its layout lives in a one-line JSON
// record stored as "<file>.mtd". ReadManifest rejects unknown formats and
// versions instead of guessing.

package block

import (
	"encoding/json"
	"fmt"
	"io"
)

// ManifestFormat is the format tag of block file manifests.
const ManifestFormat = "block"

const opReadManifest = "ReadManifest"

// Manifest describes one block file.
type Manifest struct {
	Format        string   `json:"format"`
	Version       int      `json:"version"`
	Encoding      Encoding `json:"encoding"`
	Rows          int      `json:"rows"`
	Cols          int      `json:"cols"`
	BlockRowSize  int      `json:"block_row_size"`
	BlockColSize  int      `json:"block_col_size"`
	BlockRowCount int      `json:"block_row_count"`
	BlockColCount int      `json:"block_col_count"`
	Blocks        int      `json:"blocks"`
	Compression   string   `json:"compression,omitempty"`
}

// NewManifest describes a block file of geometry g written with enc.
func NewManifest(g Geometry, enc Encoding) Manifest {
	return Manifest{
		Format:        ManifestFormat,
		Version:       FormatVersion,
		Encoding:      enc,
		Rows:          g.Rows,
		Cols:          g.Cols,
		BlockRowSize:  g.BlockRowSize,
		BlockColSize:  g.BlockColSize,
		BlockRowCount: g.BlockRowCount,
		BlockColCount: g.BlockColCount,
		Blocks:        g.BlockCount(),
	}
}

// Geometry recomputes and cross-checks the geometry recorded in m.
func (m Manifest) Geometry() (Geometry, error) {
	g, err := ComputeGeometry(m.Rows, m.Cols, m.BlockRowSize, m.BlockColSize)
	if err != nil {
		return Geometry{}, err
	}
	if g.BlockRowCount != m.BlockRowCount || g.BlockColCount != m.BlockColCount || g.BlockCount() != m.Blocks {
		return Geometry{}, fmt.Errorf("manifest counts disagree with %s: %w", g, ErrDimensionMismatch)
	}

	return g, nil
}

// WriteManifest writes m as one JSON line.
func WriteManifest(w io.Writer, m Manifest) error {
	return json.NewEncoder(w).Encode(m)
}

// ReadManifest decodes and validates a manifest.
//
// Errors:
//   - ErrUnsupportedEncoding for a foreign format, a newer version or an
//     unknown encoding.
//   - ErrDimensionMismatch / ErrInvalidDimension for an inconsistent geometry.
func ReadManifest(r io.Reader) (Manifest, error) {
	var m Manifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return Manifest{}, fmt.Errorf("%s: %w", opReadManifest, err)
	}
	if m.Format != ManifestFormat || m.Version < 1 || m.Version > FormatVersion {
		return Manifest{}, fmt.Errorf("%s: format %q version %d: %w", opReadManifest, m.Format, m.Version, ErrUnsupportedEncoding)
	}
	g, err := m.Geometry()
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: %w", opReadManifest, err)
	}
	if err = m.Encoding.Check(g); err != nil {
		return Manifest{}, fmt.Errorf("%s: %w", opReadManifest, err)
	}

	return m, nil
}
