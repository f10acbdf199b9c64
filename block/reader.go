// SPDX-License-Identifier: MIT
// Package block: block file reader.
//
// The reader is strict: it accepts exactly the output of Writer for the same
// geometry and encoding, and reports the first deviation.

package block

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/blockgen/matrix"
)

const (
	opNext       = "Next"
	opReadMatrix = "ReadMatrix"
	opNewReader  = "NewReader"

	// maxTokenBytes bounds one formatted float64 plus its separator.
	maxTokenBytes = 32
)

// Reader parses block records of a known geometry.
type Reader struct {
	sc   *bufio.Scanner
	g    Geometry
	enc  Encoding
	next int
	line int
}

// NewReader returns a Reader for blocks of geometry g encoded with enc.
func NewReader(r io.Reader, g Geometry, enc Encoding) (*Reader, error) {
	if err := enc.Check(g); err != nil {
		return nil, fmt.Errorf("%s: %w", opNewReader, err)
	}

	sc := bufio.NewScanner(r)
	maxLine := (g.BlockLen() + 2) * maxTokenBytes
	if maxLine < bufio.MaxScanTokenSize {
		maxLine = bufio.MaxScanTokenSize
	}
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLine)

	return &Reader{sc: sc, g: g, enc: enc}, nil
}

// Next returns the next block. It returns io.EOF after the last record and
// ErrMalformedRecord if the stream ends early or holds surplus lines.
func (r *Reader) Next() (Block, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return Block{}, fmt.Errorf("%s: line %d: %w", opNext, r.line+1, err)
		}
		if r.next < r.g.BlockCount() {
			return Block{}, fmt.Errorf("%s: %d of %d blocks: %w", opNext, r.next, r.g.BlockCount(), ErrMalformedRecord)
		}
		return Block{}, io.EOF
	}
	r.line++

	if r.next >= r.g.BlockCount() {
		return Block{}, fmt.Errorf("%s: line %d: surplus record: %w", opNext, r.line, ErrMalformedRecord)
	}

	fields := bytes.Split(r.sc.Bytes(), []byte{' '})
	nIdx := r.enc.indexFields()
	if len(fields) != nIdx+r.g.BlockLen() {
		return Block{}, fmt.Errorf("%s: line %d: %d tokens, want %d: %w",
			opNext, r.line, len(fields), nIdx+r.g.BlockLen(), ErrMalformedRecord)
	}

	idx := make([]int, nIdx)
	for k := range idx {
		v, err := strconv.Atoi(string(fields[k]))
		if err != nil {
			return Block{}, fmt.Errorf("%s: line %d: index %q: %w", opNext, r.line, fields[k], ErrMalformedRecord)
		}
		idx[k] = v
	}
	var bi, bj int
	if r.enc == EncodingCollapsed {
		bi, bj = expand(r.g, idx[0])
	} else {
		bi, bj = idx[0], idx[1]
	}
	wi, wj := r.g.Index(r.next)
	if bi != wi || bj != wj {
		return Block{}, fmt.Errorf("%s: line %d: got (%d,%d), want (%d,%d): %w",
			opNext, r.line, bi, bj, wi, wj, ErrOutOfOrder)
	}

	vals := make([]float64, r.g.BlockLen())
	for k := range vals {
		v, err := strconv.ParseFloat(string(fields[nIdx+k]), 64)
		if err != nil {
			return Block{}, fmt.Errorf("%s: line %d: value %q: %w", opNext, r.line, fields[nIdx+k], ErrMalformedRecord)
		}
		vals[k] = v
	}
	r.next++

	return Block{RowIndex: bi, ColIndex: bj, Values: vals}, nil
}

// ReadMatrix reassembles a whole block file into a matrix of geometry g.
func ReadMatrix(r io.Reader, g Geometry, enc Encoding) (*matrix.Dense, error) {
	br, err := NewReader(r, g, enc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReadMatrix, err)
	}

	data := make([]float64, g.Rows*g.Cols)
	for {
		b, err := br.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opReadMatrix, err)
		}
		r0, c0 := b.RowIndex*g.BlockRowSize, b.ColIndex*g.BlockColSize
		for i := 0; i < g.BlockRowSize; i++ {
			copy(data[(r0+i)*g.Cols+c0:], b.Values[i*g.BlockColSize:(i+1)*g.BlockColSize])
		}
	}

	m, err := matrix.NewDenseFrom(g.Rows, g.Cols, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReadMatrix, err)
	}

	return m, nil
}
