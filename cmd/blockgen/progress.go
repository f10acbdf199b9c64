// SPDX-License-Identifier: MIT
// Progress bars for interactive runs.

package main

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
)

// barReporter renders each runner stage as its own progress bar.
type barReporter struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

func newBarReporter(w io.Writer) *barReporter {
	return &barReporter{w: w}
}

func (r *barReporter) Begin(stage string, total int) {
	r.bar = progressbar.NewOptions64(int64(total),
		progressbar.OptionSetWriter(r.w),
		progressbar.OptionSetDescription(stage),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(r.w) }),
	)
}

func (r *barReporter) Advance(n int) {
	if r.bar != nil {
		_ = r.bar.Add(n)
	}
}

func (r *barReporter) End() {
	if r.bar != nil {
		_ = r.bar.Finish()
		r.bar = nil
	}
}
