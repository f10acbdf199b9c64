// SPDX-License-Identifier: MIT
// Package artifact: run-scoped output directory.
//
// Contract:
//   - Every path returned by Create is recorded until Abort or Commit.
//   - Abort removes recorded files in reverse creation order and reports
//     every removal failure, not only the first.
//   - Dir is not safe for concurrent use; a run is sequential.

package artifact

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	opNew    = "New"
	opCreate = "Create"
	opAbort  = "Abort"

	dirPerm = 0o755
)

// Option customizes a Dir.
type Option func(*Dir)

// WithLogger sets the logger for file lifecycle events. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("artifact: WithLogger(nil)")
	}
	return func(d *Dir) { d.log = l }
}

// WithCodec sets the codec applied to payload files. Panics on an unknown codec.
func WithCodec(c Codec) Option {
	if _, err := ParseCodec(string(c)); err != nil {
		panic("artifact: WithCodec(" + string(c) + ")")
	}
	return func(d *Dir) { d.codec = c }
}

// Dir tracks the files of one run under a root directory.
type Dir struct {
	root    string
	codec   Codec
	log     *zap.Logger
	created []string
	seen    map[string]struct{}
}

// New prepares root (creating it if needed) and returns an empty set.
func New(root string, opts ...Option) (*Dir, error) {
	d := &Dir{root: root, codec: CodecNone, log: zap.NewNop(), seen: make(map[string]struct{})}
	for _, opt := range opts {
		opt(d)
	}
	if err := os.MkdirAll(root, dirPerm); err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}

	return d, nil
}

// Root is the output directory.
func (d *Dir) Root() string { return d.root }

// Codec is the payload codec of the set.
func (d *Dir) Codec() Codec { return d.codec }

// File is one artifact being written.
type File struct {
	f    *os.File
	enc  io.WriteCloser
	path string
}

// Write implements io.Writer.
func (f *File) Write(p []byte) (int, error) { return f.enc.Write(p) }

// Path is the on-disk path of the file.
func (f *File) Path() string { return f.path }

// Close flushes the encoder, syncs and closes the file.
func (f *File) Close() error {
	err := f.enc.Close()
	err = multierr.Append(err, f.f.Sync())
	return multierr.Append(err, f.f.Close())
}

// Create opens name under the root. Payload files get the codec suffix and
// encoder; sidecars and scripts pass payload=false and stay plain text.
// The file is recorded before any byte is written.
func (d *Dir) Create(name string, payload bool) (*File, error) {
	codec := CodecNone
	if payload {
		codec = d.codec
	}
	path := filepath.Join(d.root, name+codec.Ext())
	if _, ok := d.seen[path]; ok {
		return nil, fmt.Errorf("%s: %s: %w", opCreate, path, ErrDuplicate)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCreate, err)
	}
	d.seen[path] = struct{}{}
	d.created = append(d.created, path)

	enc, err := codec.NewWriter(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %s: %w", opCreate, path, err)
	}
	d.log.Debug("artifact created", zap.String("path", path), zap.String("codec", string(codec)))

	return &File{f: f, enc: enc, path: path}, nil
}

// Files returns the paths created so far, in creation order.
func (d *Dir) Files() []string {
	out := make([]string, len(d.created))
	copy(out, d.created)
	return out
}

// Abort removes every file of the set. Missing files are not an error.
func (d *Dir) Abort() error {
	var errs error
	for i := len(d.created) - 1; i >= 0; i-- {
		path := d.created[i]
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			errs = multierr.Append(errs, err)
			continue
		}
		d.log.Debug("artifact removed", zap.String("path", path))
	}
	d.created = nil
	d.seen = make(map[string]struct{})
	if errs != nil {
		return fmt.Errorf("%s: %w", opAbort, errs)
	}

	return nil
}

// Open opens a payload for reading, decompressing by file suffix.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	rc, err := CodecFor(path).NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &readCloser{ReadCloser: rc, f: f}, nil
}

// readCloser closes both the decoder and the file.
type readCloser struct {
	io.ReadCloser
	f *os.File
}

func (r *readCloser) Close() error {
	return multierr.Append(r.ReadCloser.Close(), r.f.Close())
}
