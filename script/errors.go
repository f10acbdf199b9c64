// SPDX-License-Identifier: MIT
// Package script: sentinel error set.

package script

import "errors"

var (
	// ErrUnknownDialect indicates an unsupported dialect name.
	ErrUnknownDialect = errors.New("script: unknown dialect")

	// ErrDialectNeedsCSV indicates a dialect that reads CSV exports while
	// the CSV export is disabled.
	ErrDialectNeedsCSV = errors.New("script: dialect requires csv export")

	// ErrWrongDialect indicates a statement that has no form in the
	// document's dialect, e.g. a block load in a DML script.
	ErrWrongDialect = errors.New("script: statement not valid in dialect")
)
