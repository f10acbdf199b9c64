// SPDX-License-Identifier: MIT
// Package config: sentinel error set.

package config

import "errors"

// ErrInvalidConfig indicates a run file that parses but holds unusable values,
// or one that does not parse at all.
var ErrInvalidConfig = errors.New("config: invalid configuration")
