// SPDX-License-Identifier: MIT
// Package block: block file writer.
//
// Contract:
//   - One record per line, single spaces, newline-terminated, no header or footer.
//   - Values use the shortest decimal form that parses back to the same float64.
//   - Blocks must arrive in file order; the writer never reorders.
//   - Output is buffered; call Flush once all blocks are written.

package block

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/blockgen/matrix"
)

const (
	opWriteBlock  = "WriteBlock"
	opWriteMatrix = "WriteMatrix"
	opNewWriter   = "NewWriter"

	writerBufferSize = 1 << 16
)

// Writer serializes the blocks of one matrix or vector.
type Writer struct {
	bw   *bufio.Writer
	g    Geometry
	enc  Encoding
	next int    // file-order position of the next expected block
	line []byte // reused record buffer
}

// NewWriter returns a Writer for blocks of geometry g encoded with enc.
//
// Errors: ErrUnsupportedEncoding if enc cannot encode g.
func NewWriter(w io.Writer, g Geometry, enc Encoding) (*Writer, error) {
	if err := enc.Check(g); err != nil {
		return nil, fmt.Errorf("%s: %w", opNewWriter, err)
	}

	return &Writer{bw: bufio.NewWriterSize(w, writerBufferSize), g: g, enc: enc}, nil
}

// WriteBlock appends one record.
//
// Errors:
//   - ErrOutOfOrder if b is not the next block in file order (or all blocks
//     were already written).
//   - ErrDimensionMismatch if len(b.Values) != BlockLen().
//   - any error from the underlying writer.
func (w *Writer) WriteBlock(b Block) error {
	if w.next >= w.g.BlockCount() {
		return fmt.Errorf("%s: (%d,%d) after last block: %w", opWriteBlock, b.RowIndex, b.ColIndex, ErrOutOfOrder)
	}
	bi, bj := w.g.Index(w.next)
	if b.RowIndex != bi || b.ColIndex != bj {
		return fmt.Errorf("%s: got (%d,%d), want (%d,%d): %w",
			opWriteBlock, b.RowIndex, b.ColIndex, bi, bj, ErrOutOfOrder)
	}
	if len(b.Values) != w.g.BlockLen() {
		return fmt.Errorf("%s: %d values, want %d: %w", opWriteBlock, len(b.Values), w.g.BlockLen(), ErrDimensionMismatch)
	}

	line := w.line[:0]
	if w.enc == EncodingCollapsed {
		line = strconv.AppendInt(line, int64(collapse(w.g, bi, bj)), 10)
	} else {
		line = strconv.AppendInt(line, int64(bi), 10)
		line = append(line, ' ')
		line = strconv.AppendInt(line, int64(bj), 10)
	}
	for _, v := range b.Values {
		line = append(line, ' ')
		line = strconv.AppendFloat(line, v, 'g', -1, 64)
	}
	line = append(line, '\n')
	w.line = line

	if _, err := w.bw.Write(line); err != nil {
		return fmt.Errorf("%s: %w", opWriteBlock, err)
	}
	w.next++

	return nil
}

// Written returns the number of blocks accepted so far.
func (w *Writer) Written() int { return w.next }

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}

// WriteMatrix partitions m by g and writes every block to w, then flushes.
// It returns the number of blocks written.
func WriteMatrix(w io.Writer, m *matrix.Dense, g Geometry, enc Encoding) (int, error) {
	bw, err := NewWriter(w, g, enc)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opWriteMatrix, err)
	}
	if err = Partition(m, g, bw.WriteBlock); err != nil {
		return bw.Written(), fmt.Errorf("%s: %w", opWriteMatrix, err)
	}
	if err = bw.Flush(); err != nil {
		return bw.Written(), fmt.Errorf("%s: %w", opWriteMatrix, err)
	}

	return bw.Written(), nil
}
