// SPDX-License-Identifier: MIT
// Package scenario: progress reporting hook.

package scenario

// Reporter receives coarse progress of a run. Stages never overlap: every
// Begin is followed by Advance calls and exactly one End.
type Reporter interface {
	Begin(stage string, total int)
	Advance(n int)
	End()
}

// NopReporter discards progress.
type NopReporter struct{}

func (NopReporter) Begin(string, int) {}
func (NopReporter) Advance(int)       {}
func (NopReporter) End()              {}
