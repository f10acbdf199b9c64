// SPDX-License-Identifier: MIT
package dataset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResampleUntil(t *testing.T) {
	t.Parallel()

	n := 0
	sample := func() (int, error) { n++; return n, nil }

	v, attempts, err := resampleUntil(10, sample, func(x int) (bool, error) { return x == 3, nil })
	require.NoError(t, err)
	require.Equal(t, 3, v)
	require.Equal(t, 3, attempts)

	n = 0
	_, attempts, err = resampleUntil(2, sample, func(int) (bool, error) { return false, nil })
	require.ErrorIs(t, err, errAttemptsExhausted)
	require.Equal(t, 2, attempts)

	boom := errors.New("boom")
	_, _, err = resampleUntil(5, func() (int, error) { return 0, boom }, func(int) (bool, error) { return true, nil })
	require.ErrorIs(t, err, boom)
}
