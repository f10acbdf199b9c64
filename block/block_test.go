// SPDX-License-Identifier: MIT
package block_test

import (
	"bytes"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/blockgen/block"
	"github.com/katalvlaran/blockgen/matrix"
	"github.com/stretchr/testify/require"
)

// seq returns a rows×cols matrix holding 0,1,2,… row-major.
func seq(t *testing.T, rows, cols int) *matrix.Dense {
	t.Helper()
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = float64(i)
	}
	m, err := matrix.NewDenseFrom(rows, cols, data)
	require.NoError(t, err)
	return m
}

func TestExtract(t *testing.T) {
	t.Parallel()

	m := seq(t, 4, 4)
	g, err := block.ComputeGeometry(4, 4, 2, 2)
	require.NoError(t, err)

	b, err := block.Extract(m, g, 1, 0)
	require.NoError(t, err)
	require.Equal(t, block.Block{RowIndex: 1, ColIndex: 0, Values: []float64{8, 9, 12, 13}}, b)

	_, err = block.Extract(m, g, 2, 0)
	require.ErrorIs(t, err, block.ErrOutOfRange)

	other, err := block.ComputeGeometry(2, 4, 2, 2)
	require.NoError(t, err)
	_, err = block.Extract(m, other, 0, 0)
	require.ErrorIs(t, err, block.ErrDimensionMismatch)
}

func TestWriteMatrixFourByFour(t *testing.T) {
	t.Parallel()

	m := seq(t, 4, 4)
	g, err := block.ComputeGeometry(4, 4, 2, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := block.WriteMatrix(&buf, m, g, block.EncodingGrid)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, ""+
		"0 0 0 1 4 5\n"+
		"0 1 2 3 6 7\n"+
		"1 0 8 9 12 13\n"+
		"1 1 10 11 14 15\n", buf.String())
}

func TestLineAndTokenCounts(t *testing.T) {
	t.Parallel()

	cases := []struct{ rows, cols, brs, bcs int }{
		{6, 4, 3, 2}, {8, 8, 8, 1}, {1, 12, 1, 4}, {10, 1, 5, 1}, {9, 9, 3, 3},
	}
	for _, tc := range cases {
		m := seq(t, tc.rows, tc.cols)
		g, err := block.ComputeGeometry(tc.rows, tc.cols, tc.brs, tc.bcs)
		require.NoError(t, err)

		var buf bytes.Buffer
		_, err = block.WriteMatrix(&buf, m, g, block.EncodingGrid)
		require.NoError(t, err)

		out := buf.String()
		require.True(t, strings.HasSuffix(out, "\n"))
		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		require.Len(t, lines, (tc.rows/tc.brs)*(tc.cols/tc.bcs))
		for _, line := range lines {
			require.Len(t, strings.Split(line, " "), 2+tc.brs*tc.bcs, line)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	data := []float64{
		0.1, 1.0 / 3, math.Pi, -2.5e-300, 1e21, 0,
		math.MaxFloat64, math.SmallestNonzeroFloat64, 7, 0.30000000000000004, -0, 42,
	}
	m, err := matrix.NewDenseFrom(4, 3, data)
	require.NoError(t, err)
	g, err := block.ComputeGeometry(4, 3, 2, 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = block.WriteMatrix(&buf, m, g, block.EncodingGrid)
	require.NoError(t, err)

	back, err := block.ReadMatrix(&buf, g, block.EncodingGrid)
	require.NoError(t, err)
	require.Equal(t, m.Values(), back.Values())
}

func TestCollapsedVector(t *testing.T) {
	t.Parallel()

	v := seq(t, 6, 1)
	g, err := block.VectorGeometry(6, 2, block.Column)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = block.WriteMatrix(&buf, v, g, block.EncodingCollapsed)
	require.NoError(t, err)
	require.Equal(t, "0 0 1\n1 2 3\n2 4 5\n", buf.String())

	back, err := block.ReadMatrix(strings.NewReader(buf.String()), g, block.EncodingCollapsed)
	require.NoError(t, err)
	require.True(t, v.Equal(back))

	// Grid keeps both indices for the same vector.
	buf.Reset()
	_, err = block.WriteMatrix(&buf, v, g, block.EncodingGrid)
	require.NoError(t, err)
	require.Equal(t, "0 0 0 1\n1 0 2 3\n2 0 4 5\n", buf.String())
}

func TestCollapsedRejectedForMatrix(t *testing.T) {
	t.Parallel()

	g, err := block.ComputeGeometry(4, 4, 2, 2)
	require.NoError(t, err)
	_, err = block.NewWriter(io.Discard, g, block.EncodingCollapsed)
	require.ErrorIs(t, err, block.ErrUnsupportedEncoding)

	_, err = block.ParseEncoding("diagonal")
	require.ErrorIs(t, err, block.ErrUnsupportedEncoding)
}

func TestWriterRejectsOutOfOrder(t *testing.T) {
	t.Parallel()

	g, err := block.ComputeGeometry(4, 4, 2, 2)
	require.NoError(t, err)
	w, err := block.NewWriter(io.Discard, g, block.EncodingGrid)
	require.NoError(t, err)

	vals := []float64{1, 2, 3, 4}
	require.NoError(t, w.WriteBlock(block.Block{RowIndex: 0, ColIndex: 0, Values: vals}))
	require.ErrorIs(t, w.WriteBlock(block.Block{RowIndex: 1, ColIndex: 0, Values: vals}), block.ErrOutOfOrder)
	require.ErrorIs(t, w.WriteBlock(block.Block{RowIndex: 0, ColIndex: 1, Values: vals[:3]}), block.ErrDimensionMismatch)
	require.Equal(t, 1, w.Written())
}

func TestReaderErrors(t *testing.T) {
	t.Parallel()

	g, err := block.ComputeGeometry(2, 2, 1, 2)
	require.NoError(t, err)

	cases := []struct {
		name, in string
		want     error
	}{
		{"swapped order", "1 0 3 4\n0 0 1 2\n", block.ErrOutOfOrder},
		{"truncated", "0 0 1 2\n", block.ErrMalformedRecord},
		{"surplus", "0 0 1 2\n1 0 3 4\n2 0 5 6\n", block.ErrMalformedRecord},
		{"short record", "0 0 1\n1 0 3 4\n", block.ErrMalformedRecord},
		{"bad value", "0 0 1 x\n1 0 3 4\n", block.ErrMalformedRecord},
		{"double space", "0 0  1 2\n1 0 3 4\n", block.ErrMalformedRecord},
	}
	for _, tc := range cases {
		_, err := block.ReadMatrix(strings.NewReader(tc.in), g, block.EncodingGrid)
		require.ErrorIs(t, err, tc.want, tc.name)
	}
}

func TestPartitionStopsOnCallbackError(t *testing.T) {
	t.Parallel()

	m := seq(t, 4, 4)
	g, err := block.ComputeGeometry(4, 4, 2, 2)
	require.NoError(t, err)

	seen := 0
	err = block.Partition(m, g, func(block.Block) error {
		seen++
		if seen == 2 {
			return io.ErrShortWrite
		}
		return nil
	})
	require.ErrorIs(t, err, io.ErrShortWrite)
	require.Equal(t, 2, seen)
}
