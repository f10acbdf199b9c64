// SPDX-License-Identifier: MIT
// Package artifact: sentinel error set.

package artifact

import "errors"

var (
	// ErrUnknownCodec indicates an unsupported compression codec name.
	ErrUnknownCodec = errors.New("artifact: unknown codec")

	// ErrDuplicate indicates a second Create for a name already in the set.
	ErrDuplicate = errors.New("artifact: file already created in this run")
)
