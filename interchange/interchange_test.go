// SPDX-License-Identifier: MIT
package interchange_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/blockgen/interchange"
	"github.com/katalvlaran/blockgen/matrix"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(2, 3, []float64{0.5, 1, 2.25, -3, 1e-7, 6})
	require.NoError(t, err)
	return m
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, interchange.WriteCSV(&buf, sample(t)))
	require.Equal(t, "0.5, 1, 2.25\n-3, 1e-07, 6\n", buf.String())
}

func TestWriteIndexedText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, interchange.WriteIndexedText(&buf, sample(t)))
	require.Equal(t, "0,0.5,1,2.25\n1,-3,1e-07,6\n", buf.String())
}

func TestWriteMetadata(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, interchange.WriteMetadata(&buf, interchange.MetadataFor(sample(t))))
	require.Equal(t, "{\"rows\":2,\"cols\":3,\"format\":\"csv\"}\n", buf.String())
}

func TestNilMatrix(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.ErrorIs(t, interchange.WriteCSV(&buf, nil), matrix.ErrNilMatrix)
	require.Empty(t, buf.String())
}
