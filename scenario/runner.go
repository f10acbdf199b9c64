// SPDX-License-Identifier: MIT
// Package scenario: the generation pipeline.
//
// Stages of Run:
//   1. plan      geometry validation; no directory or file is touched.
//   2. generate  all datasets are drawn before the first file is opened.
//   3. write     per input: block file + manifest, then optional CSV + .mtd
//                and indexed text.
//   4. scripts   one document per configured dialect.
// Any failure after stage 2 removes every file created by the run.

package scenario

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/blockgen/artifact"
	"github.com/katalvlaran/blockgen/block"
	"github.com/katalvlaran/blockgen/dataset"
	"github.com/katalvlaran/blockgen/interchange"
	"github.com/katalvlaran/blockgen/matrix"
	"github.com/katalvlaran/blockgen/script"
)

const sidecarExt = ".mtd"

// Config is the runtime configuration of a Runner.
type Config struct {
	OutputDir      string
	VectorEncoding block.Encoding   // applied to vector inputs; matrices always use EncodingGrid
	Dialects       []script.Dialect // defaults to DialectPDML
	CSV            bool
	Text           bool
	Codec          artifact.Codec
}

// Validate checks encodings, codec and dialect requirements.
func (c Config) Validate() error {
	if _, err := block.ParseEncoding(string(c.VectorEncoding)); err != nil {
		return err
	}
	if _, err := artifact.ParseCodec(string(c.Codec)); err != nil {
		return err
	}
	for _, d := range c.Dialects {
		if _, err := script.ParseDialect(string(d)); err != nil {
			return err
		}
		if err := d.CheckExports(c.CSV); err != nil {
			return err
		}
	}
	return nil
}

// RunnerOption customizes a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the run logger. Panics on nil.
func WithLogger(l *zap.Logger) RunnerOption {
	if l == nil {
		panic("scenario: WithLogger(nil)")
	}
	return func(r *Runner) { r.log = l }
}

// WithReporter sets the progress reporter. Panics on nil.
func WithReporter(rep Reporter) RunnerOption {
	if rep == nil {
		panic("scenario: WithReporter(nil)")
	}
	return func(r *Runner) { r.rep = rep }
}

// WithGenerator sets the dataset generator, typically a seeded one.
func WithGenerator(g *dataset.Generator) RunnerOption {
	if g == nil {
		panic("scenario: WithGenerator(nil)")
	}
	return func(r *Runner) { r.gen = g }
}

// Runner executes scenarios against one configuration.
type Runner struct {
	cfg Config
	log *zap.Logger
	rep Reporter
	gen *dataset.Generator
}

// NewRunner validates cfg, fills defaults and applies opts.
func NewRunner(cfg Config, opts ...RunnerOption) (*Runner, error) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.VectorEncoding == "" {
		cfg.VectorEncoding = block.EncodingGrid
	}
	if cfg.Codec == "" {
		cfg.Codec = artifact.CodecNone
	}
	if len(cfg.Dialects) == 0 {
		cfg.Dialects = []script.Dialect{script.DialectPDML}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scenario: config: %w", err)
	}

	r := &Runner{cfg: cfg, log: zap.NewNop(), rep: NopReporter{}}
	for _, opt := range opts {
		opt(r)
	}
	if r.gen == nil {
		r.gen = dataset.New()
	}

	return r, nil
}

// Result lists the artifacts of a successful run.
type Result struct {
	Plan    Plan
	Files   []string                  // every file written, in creation order
	Scripts map[script.Dialect]string // script path per dialect
	Blocks  int                       // total block records written
}

// Run executes scenario kind with parameters p.
func (r *Runner) Run(kind Kind, p Params) (Result, error) {
	sc, err := For(kind)
	if err != nil {
		return Result{}, err
	}
	start := time.Now()

	plan, err := sc.Plan(p)
	if err != nil {
		return Result{}, err
	}
	for _, in := range plan.Inputs {
		if in.CSVOnly {
			continue
		}
		if err = r.encodingFor(in).Check(in.Geometry); err != nil {
			return Result{}, planError(kind, err)
		}
	}
	r.log.Info("scenario planned",
		zap.Stringer("scenario", kind),
		zap.Int("records", p.Records),
		zap.Int("dimension", p.Dimension),
		zap.Int("block_row_size", p.BlockRowSize),
		zap.Int("block_col_size", p.BlockColSize))

	r.rep.Begin("generate", 1)
	data, err := sc.Generate(r.gen, plan)
	r.rep.Advance(1)
	r.rep.End()
	if err != nil {
		return Result{}, fmt.Errorf("%s: generate: %w", kind, err)
	}
	for _, in := range plan.Inputs {
		m, ok := data[in.Var]
		if !ok || m == nil || m.Rows() != in.Rows || m.Cols() != in.Cols {
			return Result{}, fmt.Errorf("%s: generate: %s: %w", kind, in.Var, ErrMissingInput)
		}
	}

	dir, err := artifact.New(r.cfg.OutputDir, artifact.WithCodec(r.cfg.Codec), artifact.WithLogger(r.log))
	if err != nil {
		return Result{}, err
	}

	res, err := r.write(dir, sc, plan, data)
	if err != nil {
		if abortErr := dir.Abort(); abortErr != nil {
			err = multierr.Append(err, abortErr)
		}
		r.log.Error("scenario aborted", zap.Stringer("scenario", kind), zap.Error(err))
		return Result{}, fmt.Errorf("%s: %w", kind, err)
	}

	r.log.Info("scenario written",
		zap.Stringer("scenario", kind),
		zap.Int("files", len(res.Files)),
		zap.Int("blocks", res.Blocks),
		zap.Duration("elapsed", time.Since(start)))

	return res, nil
}

// encodingFor picks the configured vector encoding for vectors and the grid
// encoding for everything else.
func (r *Runner) encodingFor(in Input) block.Encoding {
	if in.Geometry.IsVector() {
		return r.cfg.VectorEncoding
	}
	return block.EncodingGrid
}

// write produces every artifact of the run into dir.
func (r *Runner) write(dir *artifact.Dir, sc Scenario, plan Plan, data map[string]*matrix.Dense) (Result, error) {
	res := Result{Plan: plan, Scripts: make(map[script.Dialect]string)}
	blockPaths := make(map[string]string)
	csvPaths := make(map[string]string)

	for _, in := range plan.Inputs {
		m := data[in.Var]

		if !in.CSVOnly {
			path, n, err := r.writeBlocks(dir, plan, in, m)
			if err != nil {
				return Result{}, err
			}
			blockPaths[in.Var] = path
			res.Blocks += n
		}
		if r.cfg.CSV {
			path, err := r.writeCSV(dir, plan, in, m)
			if err != nil {
				return Result{}, err
			}
			csvPaths[in.Var] = path
		}
		if r.cfg.Text {
			if _, err := writeFile(dir, plan.DenseFileName(in, ".txt"), true, func(w io.Writer) error {
				return interchange.WriteIndexedText(w, m)
			}); err != nil {
				return Result{}, err
			}
		}
	}

	r.rep.Begin("scripts", len(r.cfg.Dialects))
	defer r.rep.End()
	for _, d := range r.cfg.Dialects {
		doc := script.NewDocument(d)
		for _, in := range plan.Inputs {
			if in.CSVOnly {
				continue
			}
			if d == script.DialectDML {
				doc.Add(script.Read{Var: in.Var, Path: csvPaths[in.Var]})
			} else {
				doc.Add(script.Load{Var: in.Var, Geometry: in.Geometry, Path: blockPaths[in.Var]})
			}
		}
		if d == script.DialectDML {
			doc.Add(sc.DMLComputation(plan)...)
		} else {
			doc.Add(sc.Computation(plan)...)
		}

		path, err := writeFile(dir, plan.ScriptFileName(d.Ext()), false, func(w io.Writer) error {
			_, err := doc.WriteTo(w)
			return err
		})
		if err != nil {
			return Result{}, err
		}
		res.Scripts[d] = path
		r.rep.Advance(1)
	}

	res.Files = dir.Files()
	return res, nil
}

// writeBlocks writes one block file and its manifest. It returns the block
// file path and the number of blocks written.
func (r *Runner) writeBlocks(dir *artifact.Dir, plan Plan, in Input, m *matrix.Dense) (string, int, error) {
	g := in.Geometry
	enc := r.encodingFor(in)

	r.rep.Begin("write "+in.Var, g.BlockCount())
	defer r.rep.End()

	var written int
	path, err := writeFile(dir, plan.BlockFileName(in), true, func(w io.Writer) error {
		bw, err := block.NewWriter(w, g, enc)
		if err != nil {
			return err
		}
		err = block.Partition(m, g, func(b block.Block) error {
			if err := bw.WriteBlock(b); err != nil {
				return err
			}
			r.rep.Advance(1)
			return nil
		})
		written = bw.Written()
		if err != nil {
			return err
		}
		return bw.Flush()
	})
	if err != nil {
		return "", written, err
	}

	man := block.NewManifest(g, enc)
	if dir.Codec() != artifact.CodecNone {
		man.Compression = string(dir.Codec())
	}
	if _, err = writeFile(dir, filepath.Base(path)+sidecarExt, false, func(w io.Writer) error {
		return block.WriteManifest(w, man)
	}); err != nil {
		return "", written, err
	}
	r.log.Debug("block file written",
		zap.String("path", path),
		zap.Stringer("geometry", g),
		zap.String("encoding", string(enc)),
		zap.Int("blocks", written))

	return path, written, nil
}

// writeCSV writes the dense CSV export and its metadata sidecar.
func (r *Runner) writeCSV(dir *artifact.Dir, plan Plan, in Input, m *matrix.Dense) (string, error) {
	path, err := writeFile(dir, plan.DenseFileName(in, ".csv"), true, func(w io.Writer) error {
		return interchange.WriteCSV(w, m)
	})
	if err != nil {
		return "", err
	}
	if _, err = writeFile(dir, filepath.Base(path)+sidecarExt, false, func(w io.Writer) error {
		return interchange.WriteMetadata(w, interchange.MetadataFor(m))
	}); err != nil {
		return "", err
	}

	return path, nil
}

// writeFile creates name in dir, runs fill and closes the file, keeping the
// first error.
func writeFile(dir *artifact.Dir, name string, payload bool, fill func(io.Writer) error) (string, error) {
	f, err := dir.Create(name, payload)
	if err != nil {
		return "", err
	}
	err = fill(f)
	err = multierr.Append(err, f.Close())
	if err != nil {
		return "", fmt.Errorf("%s: %w", f.Path(), err)
	}

	return f.Path(), nil
}
