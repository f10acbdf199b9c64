// SPDX-License-Identifier: MIT
// Package script: script documents.

package script

import (
	"bufio"
	"fmt"
	"io"
)

// Document is an ordered script: input declarations first, computation last.
type Document struct {
	Dialect    Dialect
	Statements []Statement
}

// NewDocument returns an empty document in dialect d.
func NewDocument(d Dialect) *Document {
	return &Document{Dialect: d}
}

// Add appends statements in order.
func (doc *Document) Add(stmts ...Statement) *Document {
	doc.Statements = append(doc.Statements, stmts...)
	return doc
}

// WriteTo writes one statement per line, each newline-terminated.
// Rendering errors are reported before anything is written.
func (doc *Document) WriteTo(w io.Writer) (int64, error) {
	lines := make([]string, 0, len(doc.Statements))
	for i, s := range doc.Statements {
		line, err := s.Render(doc.Dialect)
		if err != nil {
			return 0, fmt.Errorf("statement %d: %w", i, err)
		}
		lines = append(lines, line)
	}

	bw := bufio.NewWriter(w)
	var total int64
	for _, line := range lines {
		n, err := bw.WriteString(line)
		total += int64(n)
		if err != nil {
			return total, err
		}
		if err = bw.WriteByte('\n'); err != nil {
			return total, err
		}
		total++
	}

	return total, bw.Flush()
}
