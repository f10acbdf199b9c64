// SPDX-License-Identifier: MIT
// Package: blockgen/dataset
//
// retry.go - bounded resample-until-accepted loop.

package dataset

// resampleUntil calls sample up to maxAttempts times and returns the first
// value accepted by accept, together with the number of attempts used.
// A sample error stops the loop immediately. Exhaustion returns
// errAttemptsExhausted; callers map it to their own sentinel.
func resampleUntil[T any](maxAttempts int, sample func() (T, error), accept func(T) (bool, error)) (T, int, error) {
	var zero T
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		v, err := sample()
		if err != nil {
			return zero, attempt, err
		}
		ok, err := accept(v)
		if err != nil {
			return zero, attempt, err
		}
		if ok {
			return v, attempt, nil
		}
	}

	return zero, maxAttempts, errAttemptsExhausted
}
