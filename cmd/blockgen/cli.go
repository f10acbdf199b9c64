// SPDX-License-Identifier: MIT
// Command-line parsing and the generate command.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/blockgen/config"
	"github.com/katalvlaran/blockgen/dataset"
	"github.com/katalvlaran/blockgen/scenario"
)

const (
	exitFailure = 1
	exitUsage   = 2

	verifyCommand = "verify"
)

// ExitError carries the process exit code of a failure.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) error {
	return &ExitError{Code: exitUsage, Message: fmt.Sprintf(format, args...)}
}

// invocation is a parsed generate command.
type invocation struct {
	kind     scenario.Kind
	params   scenario.Params
	cfg      config.Config
	progress bool
}

// parseArgs parses flags and positional arguments. Flags override the run
// file, which overrides the defaults. help is true when usage was requested.
func parseArgs(args []string, output io.Writer) (inv invocation, help bool, err error) {
	fs := flag.NewFlagSet("blockgen", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
blockgen - block-partitioned benchmark data and script generator.

Usage:
  blockgen [options] <gram|regression|nn> <records> <dimension> <blockRowSize> <blockColSize>
  blockgen verify <file.data>

Options:
`)
		fs.PrintDefaults()
	}

	def := config.Default()
	configPath := fs.String("config", "", "Path to an HCL run file.")
	outDir := fs.String("out", def.OutputDir, "Output directory.")
	seed := fs.Int64("seed", 0, "Random seed; unset means seeded from the clock.")
	csv := fs.Bool("csv", false, "Also write dense CSV exports with .mtd sidecars.")
	text := fs.Bool("text", false, "Also write row-indexed text exports.")
	dialects := fs.String("dialect", strings.Join(def.Dialects, ","), "Comma-separated script dialects: pdml, dml.")
	encoding := fs.String("encoding", def.VectorEncoding, "Vector block encoding: grid or collapsed.")
	compress := fs.String("compress", def.Compression, "Payload compression: none, gzip or zstd.")
	maxAttempts := fs.Int("max-attempts", def.MaxAttempts, "Positive-definite resampling limit.")
	logLevel := fs.String("log-level", string(def.Log.Level), "Log level: debug, info, warn, error.")
	logFormat := fs.String("log-format", def.Log.Format, "Log format: console or json.")
	progress := fs.Bool("progress", false, "Show progress bars on stderr.")

	if err = fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return invocation{}, true, nil
		}
		return invocation{}, false, &ExitError{Code: exitUsage, Message: err.Error()}
	}

	if fs.NArg() != 5 {
		fs.Usage()
		return invocation{}, false, usageError("expected 5 arguments, got %d", fs.NArg())
	}
	kind, err := scenario.ParseKind(fs.Arg(0))
	if err != nil {
		return invocation{}, false, usageError("%v", err)
	}
	nums := make([]int, 4)
	names := []string{"records", "dimension", "blockRowSize", "blockColSize"}
	for i := range nums {
		v, convErr := strconv.Atoi(fs.Arg(i + 1))
		if convErr != nil || v <= 0 {
			return invocation{}, false, usageError("%s must be a positive integer, got %q", names[i], fs.Arg(i+1))
		}
		nums[i] = v
	}

	cfg := def
	if *configPath != "" {
		if cfg, err = config.Load(*configPath); err != nil {
			return invocation{}, false, usageError("%v", err)
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.OutputDir = *outDir
		case "seed":
			s := *seed
			cfg.Seed = &s
		case "csv":
			cfg.CSV = *csv
		case "text":
			cfg.Text = *text
		case "dialect":
			cfg.Dialects = strings.Split(*dialects, ",")
		case "encoding":
			cfg.VectorEncoding = *encoding
		case "compress":
			cfg.Compression = *compress
		case "max-attempts":
			cfg.MaxAttempts = *maxAttempts
		case "log-level":
			cfg.Log.Level = config.LogLevel(strings.ToLower(*logLevel))
		case "log-format":
			cfg.Log.Format = strings.ToLower(*logFormat)
		}
	})
	if err = cfg.Validate(); err != nil {
		return invocation{}, false, usageError("%v", err)
	}

	return invocation{
		kind: kind,
		params: scenario.Params{
			Records:      nums[0],
			Dimension:    nums[1],
			BlockRowSize: nums[2],
			BlockColSize: nums[3],
		},
		cfg:      cfg,
		progress: *progress,
	}, false, nil
}

// generate runs one scenario and prints every written path to outW.
func generate(outW, errW io.Writer, inv invocation) error {
	logger, err := inv.cfg.Log.Build(errW)
	if err != nil {
		return usageError("%v", err)
	}
	defer func() { _ = logger.Sync() }()

	rc, err := inv.cfg.RunConfig()
	if err != nil {
		return usageError("%v", err)
	}
	opts := []scenario.RunnerOption{
		scenario.WithLogger(logger),
		scenario.WithGenerator(dataset.New(inv.cfg.DatasetOptions()...)),
	}
	if inv.progress {
		opts = append(opts, scenario.WithReporter(newBarReporter(errW)))
	}
	runner, err := scenario.NewRunner(rc, opts...)
	if err != nil {
		return usageError("%v", err)
	}

	res, err := runner.Run(inv.kind, inv.params)
	if err != nil {
		return &ExitError{Code: exitFailure, Message: err.Error()}
	}
	for _, path := range res.Files {
		fmt.Fprintln(outW, path)
	}

	return nil
}
