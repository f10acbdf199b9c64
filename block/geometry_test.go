// SPDX-License-Identifier: MIT
package block_test

import (
	"testing"

	"github.com/katalvlaran/blockgen/block"
	"github.com/stretchr/testify/require"
)

func TestComputeGeometry(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name                 string
		rows, cols, brs, bcs int
		wantErr              error
		wantRN, wantCN       int
	}{
		{name: "square", rows: 4, cols: 4, brs: 2, bcs: 2, wantRN: 2, wantCN: 2},
		{name: "tall", rows: 640, cols: 64, brs: 64, bcs: 64, wantRN: 10, wantCN: 1},
		{name: "single block", rows: 3, cols: 5, brs: 3, bcs: 5, wantRN: 1, wantCN: 1},
		{name: "rows not divisible", rows: 5, cols: 4, brs: 2, bcs: 2, wantErr: block.ErrDimensionMismatch},
		{name: "cols not divisible", rows: 4, cols: 5, brs: 2, bcs: 2, wantErr: block.ErrDimensionMismatch},
		{name: "zero rows", rows: 0, cols: 4, brs: 2, bcs: 2, wantErr: block.ErrInvalidDimension},
		{name: "negative block", rows: 4, cols: 4, brs: -2, bcs: 2, wantErr: block.ErrInvalidDimension},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := block.ComputeGeometry(tc.rows, tc.cols, tc.brs, tc.bcs)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantRN, g.BlockRowCount)
			require.Equal(t, tc.wantCN, g.BlockColCount)
			require.Equal(t, tc.wantRN*tc.wantCN, g.BlockCount())
			require.Equal(t, tc.brs*tc.bcs, g.BlockLen())
		})
	}
}

func TestVectorGeometry(t *testing.T) {
	t.Parallel()

	row, err := block.VectorGeometry(8, 4, block.Row)
	require.NoError(t, err)
	require.Equal(t, block.Geometry{Rows: 1, Cols: 8, BlockRowSize: 1, BlockColSize: 4, BlockRowCount: 1, BlockColCount: 2}, row)
	require.True(t, row.IsVector())

	col, err := block.VectorGeometry(8, 2, block.Column)
	require.NoError(t, err)
	require.Equal(t, 4, col.BlockRowCount)
	require.Equal(t, 1, col.BlockColCount)

	_, err = block.VectorGeometry(9, 2, block.Column)
	require.ErrorIs(t, err, block.ErrDimensionMismatch)
}

func TestIndexIsRowMajor(t *testing.T) {
	t.Parallel()

	g, err := block.ComputeGeometry(4, 6, 2, 2)
	require.NoError(t, err)

	var got [][2]int
	for i := 0; i < g.BlockCount(); i++ {
		bi, bj := g.Index(i)
		got = append(got, [2]int{bi, bj})
	}
	require.Equal(t, [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}, got)
}
