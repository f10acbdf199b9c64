// SPDX-License-Identifier: MIT
package script_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/blockgen/block"
	"github.com/katalvlaran/blockgen/script"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, doc *script.Document) string {
	t.Helper()
	var buf bytes.Buffer
	n, err := doc.WriteTo(&buf)
	require.NoError(t, err)
	require.EqualValues(t, buf.Len(), n)
	return buf.String()
}

func TestGramScript(t *testing.T) {
	t.Parallel()

	g, err := block.ComputeGeometry(640, 64, 64, 64)
	require.NoError(t, err)

	doc := script.NewDocument(script.DialectPDML).
		Add(script.Load{Var: "X", Geometry: g, Path: "out/GRAM_X_640_64_64_64.data"}).
		Add(script.GramProduct("X", "M")...)

	require.Equal(t, ""+
		"X = load(64,64,10,1,\"out/GRAM_X_640_64_64_64.data\")\n"+
		"M = X' * X\n", render(t, doc))
}

func TestRegressionScript(t *testing.T) {
	t.Parallel()

	gx, err := block.ComputeGeometry(100, 10, 10, 5)
	require.NoError(t, err)
	gy, err := block.VectorGeometry(100, 10, block.Column)
	require.NoError(t, err)

	doc := script.NewDocument(script.DialectPDML).Add(
		script.Load{Var: "X", Geometry: gx, Path: "X.data"},
		script.Load{Var: "y", Geometry: gy, Path: "y.data"},
	).Add(script.NormalEquation("X", "y", "beta")...)

	require.Equal(t, ""+
		"X = load(10,5,10,2,\"X.data\")\n"+
		"y = load(10,1,10,1,\"y.data\")\n"+
		"beta = (X' * X)^-1 %*% (X' * y)\n", render(t, doc))
}

func TestNearestNeighborScript(t *testing.T) {
	t.Parallel()

	g, err := block.ComputeGeometry(40, 8, 10, 4)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(render(t,
		script.NewDocument(script.DialectPDML).Add(script.NearestNeighbor("X", "t", "M", g, "result")...)), "\n"), "\n")
	require.Equal(t, []string{
		"D = X - duplicateRow(t,10,4)",
		"result = min(rowSum(D %*% M * D))",
	}, lines)
}

func TestDMLScript(t *testing.T) {
	t.Parallel()

	doc := script.NewDocument(script.DialectDML).
		Add(script.Read{Var: "X", Path: "GRAM_X_8_4.csv"}).
		Add(script.GramProductDML("X", "M")...)

	out := render(t, doc)
	require.True(t, strings.HasPrefix(out, "X = read(\"GRAM_X_8_4.csv\");\nM = t(X) %*% X;\n"), out)

	nn := render(t, script.NewDocument(script.DialectDML).Add(script.NearestNeighborDML("X", "t", "M", "i")...))
	require.Contains(t, nn, "duplicateRow = function")
	require.Contains(t, nn, "i = rowIndexMin(t(rowSums(Diff %*% M * Diff)));\n")
}

func TestWrongDialectWritesNothing(t *testing.T) {
	t.Parallel()

	g, err := block.ComputeGeometry(2, 2, 1, 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = script.NewDocument(script.DialectDML).Add(script.Load{Var: "X", Geometry: g, Path: "x"}).WriteTo(&buf)
	require.ErrorIs(t, err, script.ErrWrongDialect)
	require.Zero(t, buf.Len())

	_, err = script.NewDocument(script.DialectPDML).Add(script.Read{Var: "X", Path: "x"}).WriteTo(&buf)
	require.ErrorIs(t, err, script.ErrWrongDialect)
}

func TestDialects(t *testing.T) {
	t.Parallel()

	ds, err := script.ParseDialects([]string{"pdml", " DML", "pdml"})
	require.NoError(t, err)
	require.Equal(t, []script.Dialect{script.DialectPDML, script.DialectDML}, ds)
	require.Equal(t, ".dml", script.DialectDML.Ext())

	_, err = script.ParseDialect("sql")
	require.ErrorIs(t, err, script.ErrUnknownDialect)

	require.ErrorIs(t, script.DialectDML.CheckExports(false), script.ErrDialectNeedsCSV)
	require.NoError(t, script.DialectDML.CheckExports(true))
	require.NoError(t, script.DialectPDML.CheckExports(false))
}
