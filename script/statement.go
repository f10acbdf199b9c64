// SPDX-License-Identifier: MIT
// Package script: statements.

package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/blockgen/block"
)

// Statement is one line (or, for Raw, one fixed block of lines) of a script.
type Statement interface {
	Render(d Dialect) (string, error)
}

// Load declares a block file: Var = load(brs,bcs,brn,bcn,"Path").
type Load struct {
	Var      string
	Geometry block.Geometry
	Path     string
}

// Render implements Statement. Load exists only in DialectPDML.
func (l Load) Render(d Dialect) (string, error) {
	if d != DialectPDML {
		return "", fmt.Errorf("load %s in %s: %w", l.Var, d, ErrWrongDialect)
	}
	g := l.Geometry

	return fmt.Sprintf("%s = load(%d,%d,%d,%d,%s)",
		l.Var, g.BlockRowSize, g.BlockColSize, g.BlockRowCount, g.BlockColCount, strconv.Quote(l.Path)), nil
}

// Read declares a CSV input: Var = read("Path"); DialectDML only.
type Read struct {
	Var  string
	Path string
}

// Render implements Statement.
func (r Read) Render(d Dialect) (string, error) {
	if d != DialectDML {
		return "", fmt.Errorf("read %s in %s: %w", r.Var, d, ErrWrongDialect)
	}

	return fmt.Sprintf("%s = read(%s)%s", r.Var, strconv.Quote(r.Path), d.terminator()), nil
}

// Assign binds an expression: Var = Expr.
type Assign struct {
	Var  string
	Expr string
}

// Render implements Statement.
func (a Assign) Render(d Dialect) (string, error) {
	return a.Var + " = " + a.Expr + d.terminator(), nil
}

// Raw is emitted verbatim, trailing newlines trimmed. It is used for DML
// function definitions and print calls.
type Raw struct {
	Text string
}

// Render implements Statement.
func (r Raw) Render(Dialect) (string, error) {
	return strings.TrimRight(r.Text, "\n"), nil
}
