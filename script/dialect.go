// SPDX-License-Identifier: MIT
// Package script: dialects.

package script

import (
	"fmt"
	"strings"
)

// Dialect selects the script language.
type Dialect string

const (
	// DialectPDML is the block-aware load/compute language.
	DialectPDML Dialect = "pdml"
	// DialectDML is SystemML over CSV inputs.
	DialectDML Dialect = "dml"
)

// ParseDialect maps a name to a Dialect.
func ParseDialect(s string) (Dialect, error) {
	switch Dialect(strings.ToLower(strings.TrimSpace(s))) {
	case DialectPDML:
		return DialectPDML, nil
	case DialectDML:
		return DialectDML, nil
	}

	return "", fmt.Errorf("dialect %q: %w", s, ErrUnknownDialect)
}

// ParseDialects parses a list of names, dropping duplicates while keeping order.
func ParseDialects(names []string) ([]Dialect, error) {
	out := make([]Dialect, 0, len(names))
	seen := make(map[Dialect]bool, len(names))
	for _, n := range names {
		d, err := ParseDialect(n)
		if err != nil {
			return nil, err
		}
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}

	return out, nil
}

// Ext is the script file extension, dot included.
func (d Dialect) Ext() string { return "." + string(d) }

// CheckExports reports whether d can run given the enabled exports.
func (d Dialect) CheckExports(csv bool) error {
	if d == DialectDML && !csv {
		return fmt.Errorf("%s: %w", d, ErrDialectNeedsCSV)
	}
	return nil
}

// terminator ends every statement line.
func (d Dialect) terminator() string {
	if d == DialectDML {
		return ";"
	}
	return ""
}
