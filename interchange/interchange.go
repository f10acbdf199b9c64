// SPDX-License-Identifier: MIT
// Package interchange: dense CSV, metadata sidecar and indexed text writers.
//
// Contract:
//   - One line per matrix row, newline-terminated, no header.
//   - CSV values are separated by ", "; indexed text by ",".
//   - Values use the shortest decimal form that parses back to the same float64.

package interchange

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/blockgen/matrix"
)

const (
	opWriteCSV         = "WriteCSV"
	opWriteIndexedText = "WriteIndexedText"
	opWriteMetadata    = "WriteMetadata"

	// FormatCSV is the format tag recorded in CSV metadata sidecars.
	FormatCSV = "csv"

	csvSeparator  = ", "
	textSeparator = ","
)

// Metadata is the sidecar record of a CSV export.
type Metadata struct {
	Rows   int    `json:"rows"`
	Cols   int    `json:"cols"`
	Format string `json:"format"`
}

// MetadataFor describes m exported as CSV.
func MetadataFor(m *matrix.Dense) Metadata {
	return Metadata{Rows: m.Rows(), Cols: m.Cols(), Format: FormatCSV}
}

// WriteCSV writes m one row per line with values separated by ", ".
func WriteCSV(w io.Writer, m *matrix.Dense) error {
	if err := writeRows(w, m, false, csvSeparator); err != nil {
		return fmt.Errorf("%s: %w", opWriteCSV, err)
	}
	return nil
}

// WriteIndexedText writes m one row per line as "i,v0,v1,…".
func WriteIndexedText(w io.Writer, m *matrix.Dense) error {
	if err := writeRows(w, m, true, textSeparator); err != nil {
		return fmt.Errorf("%s: %w", opWriteIndexedText, err)
	}
	return nil
}

// WriteMetadata writes md as a single JSON line.
func WriteMetadata(w io.Writer, md Metadata) error {
	if err := json.NewEncoder(w).Encode(md); err != nil {
		return fmt.Errorf("%s: %w", opWriteMetadata, err)
	}
	return nil
}

func writeRows(w io.Writer, m *matrix.Dense, indexed bool, sep string) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	line := make([]byte, 0, 64)
	var (
		row []float64
		err error
	)
	for i := 0; i < m.Rows(); i++ {
		if row, err = m.Row(i); err != nil {
			return err
		}
		line = line[:0]
		if indexed {
			line = strconv.AppendInt(line, int64(i), 10)
			line = append(line, sep...)
		}
		for j, v := range row {
			if j > 0 {
				line = append(line, sep...)
			}
			line = strconv.AppendFloat(line, v, 'g', -1, 64)
		}
		line = append(line, '\n')
		if _, err = bw.Write(line); err != nil {
			return err
		}
	}

	return bw.Flush()
}
