// SPDX-License-Identifier: MIT
// Package scenario: sentinel error set.

package scenario

import "errors"

var (
	// ErrUnknownScenario indicates an unsupported scenario name or kind.
	ErrUnknownScenario = errors.New("scenario: unknown scenario")

	// ErrInvalidParams indicates non-positive record count, dimension or block sizes.
	ErrInvalidParams = errors.New("scenario: invalid parameters")

	// ErrMissingInput indicates that a generator did not produce a planned input.
	ErrMissingInput = errors.New("scenario: generated data missing planned input")
)
