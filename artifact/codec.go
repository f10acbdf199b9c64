// SPDX-License-Identifier: MIT
// Package artifact: compression codecs.
//
// Contract:
//   - CodecNone writes bytes as-is; the others add a file suffix (.gz, .zst).
//   - Codecs are stateless values; each Create gets its own encoder.

package artifact

import (
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Codec names a payload compression.
type Codec string

const (
	CodecNone Codec = "none"
	CodecGzip Codec = "gzip"
	CodecZstd Codec = "zstd"
)

// ParseCodec maps a name to a Codec. The empty string means CodecNone.
func ParseCodec(s string) (Codec, error) {
	switch Codec(strings.ToLower(s)) {
	case "", CodecNone:
		return CodecNone, nil
	case CodecGzip:
		return CodecGzip, nil
	case CodecZstd:
		return CodecZstd, nil
	}

	return "", fmt.Errorf("codec %q: %w", s, ErrUnknownCodec)
}

// Ext is the file suffix appended to compressed payloads.
func (c Codec) Ext() string {
	switch c {
	case CodecGzip:
		return ".gz"
	case CodecZstd:
		return ".zst"
	}
	return ""
}

// CodecFor infers the codec from a file name suffix.
func CodecFor(name string) Codec {
	switch {
	case strings.HasSuffix(name, CodecGzip.Ext()):
		return CodecGzip
	case strings.HasSuffix(name, CodecZstd.Ext()):
		return CodecZstd
	}
	return CodecNone
}

// nopWriteCloser adapts a plain writer for CodecNone.
type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// NewWriter wraps w with the codec's encoder. Closing the result flushes the
// encoder but never closes w.
func (c Codec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	switch c {
	case CodecNone, "":
		return nopWriteCloser{w}, nil
	case CodecGzip:
		return gzip.NewWriterLevel(w, gzip.BestSpeed)
	case CodecZstd:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	}

	return nil, fmt.Errorf("codec %q: %w", string(c), ErrUnknownCodec)
}

// NewReader wraps r with the codec's decoder.
func (c Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	switch c {
	case CodecNone, "":
		return io.NopCloser(r), nil
	case CodecGzip:
		return gzip.NewReader(r)
	case CodecZstd:
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	}

	return nil, fmt.Errorf("codec %q: %w", string(c), ErrUnknownCodec)
}
