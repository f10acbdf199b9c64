// SPDX-License-Identifier: MIT
// Package config: run file schema, defaults and conversion.
//
// Precedence (lowest first): Default, run file, command-line flags. The
// command line applies its overrides directly on the returned Config.

package config

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/blockgen/artifact"
	"github.com/katalvlaran/blockgen/block"
	"github.com/katalvlaran/blockgen/dataset"
	"github.com/katalvlaran/blockgen/scenario"
	"github.com/katalvlaran/blockgen/script"
)

// Config is a fully resolved run configuration.
type Config struct {
	OutputDir      string
	Seed           *int64 // nil: seed from the clock
	VectorEncoding string
	Dialects       []string
	MaxAttempts    int
	NoiseSigma     float64
	CSV            bool
	Text           bool
	Compression    string
	Log            Log
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutputDir:      ".",
		VectorEncoding: string(block.EncodingGrid),
		Dialects:       []string{string(script.DialectPDML)},
		MaxAttempts:    dataset.DefaultMaxAttempts,
		NoiseSigma:     dataset.DefaultNoiseSigma,
		Compression:    string(artifact.CodecNone),
		Log:            Log{Level: LogLevelInfo, Format: LogFormatConsole},
	}
}

// fileRoot mirrors the run file. Pointers distinguish absent from zero.
type fileRoot struct {
	OutputDir      *string      `hcl:"output_dir,optional"`
	Seed           *int64       `hcl:"seed,optional"`
	VectorEncoding *string      `hcl:"vector_encoding,optional"`
	Dialects       *[]string    `hcl:"dialects,optional"`
	MaxAttempts    *int         `hcl:"max_attempts,optional"`
	NoiseSigma     *float64     `hcl:"noise_sigma,optional"`
	Export         *exportBlock `hcl:"export,block"`
	Log            *logBlock    `hcl:"log,block"`
}

type exportBlock struct {
	CSV         *bool   `hcl:"csv,optional"`
	Text        *bool   `hcl:"text,optional"`
	Compression *string `hcl:"compression,optional"`
}

type logBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// Load reads and decodes the run file at path against Default, with the
// process environment available as env.
func Load(path string) (Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(src, path, environ())
}

// Parse decodes run file source. filename is used in diagnostics only.
func Parse(src []byte, filename string, env map[string]string) (Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("%w: parse %s: %s", ErrInvalidConfig, filename, diags.Error())
	}

	var root fileRoot
	if diags = gohcl.DecodeBody(file.Body, evalContext(env), &root); diags.HasErrors() {
		return Config{}, fmt.Errorf("%w: decode %s: %s", ErrInvalidConfig, filename, diags.Error())
	}

	cfg := Default()
	root.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", filename, err)
	}

	return cfg, nil
}

func (r fileRoot) apply(cfg *Config) {
	if r.OutputDir != nil {
		cfg.OutputDir = *r.OutputDir
	}
	if r.Seed != nil {
		s := *r.Seed
		cfg.Seed = &s
	}
	if r.VectorEncoding != nil {
		cfg.VectorEncoding = *r.VectorEncoding
	}
	if r.Dialects != nil {
		cfg.Dialects = append([]string(nil), *r.Dialects...)
	}
	if r.MaxAttempts != nil {
		cfg.MaxAttempts = *r.MaxAttempts
	}
	if r.NoiseSigma != nil {
		cfg.NoiseSigma = *r.NoiseSigma
	}
	if e := r.Export; e != nil {
		if e.CSV != nil {
			cfg.CSV = *e.CSV
		}
		if e.Text != nil {
			cfg.Text = *e.Text
		}
		if e.Compression != nil {
			cfg.Compression = *e.Compression
		}
	}
	if l := r.Log; l != nil {
		if l.Level != nil {
			cfg.Log.Level = LogLevel(strings.ToLower(*l.Level))
		}
		if l.Format != nil {
			cfg.Log.Format = strings.ToLower(*l.Format)
		}
	}
}

// evalContext exposes env as an object variable.
func evalContext(env map[string]string) *hcl.EvalContext {
	vals := make(map[string]cty.Value, len(env))
	for k, v := range env {
		vals[k] = cty.StringVal(v)
	}
	return &hcl.EvalContext{Variables: map[string]cty.Value{"env": cty.ObjectVal(vals)}}
}

func environ() map[string]string {
	out := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			out[k] = v
		}
	}
	return out
}

// Validate checks every value. All failures wrap ErrInvalidConfig.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is empty: %w", ErrInvalidConfig)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts %d < 1: %w", c.MaxAttempts, ErrInvalidConfig)
	}
	if c.NoiseSigma < 0 || math.IsNaN(c.NoiseSigma) || math.IsInf(c.NoiseSigma, 0) {
		return fmt.Errorf("noise_sigma %g: %w", c.NoiseSigma, ErrInvalidConfig)
	}
	if _, err := c.RunConfig(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return c.Log.Validate()
}

// RunConfig converts c into the runner configuration.
func (c Config) RunConfig() (scenario.Config, error) {
	enc, err := block.ParseEncoding(c.VectorEncoding)
	if err != nil {
		return scenario.Config{}, err
	}
	codec, err := artifact.ParseCodec(c.Compression)
	if err != nil {
		return scenario.Config{}, err
	}
	dialects, err := script.ParseDialects(c.Dialects)
	if err != nil {
		return scenario.Config{}, err
	}
	rc := scenario.Config{
		OutputDir:      c.OutputDir,
		VectorEncoding: enc,
		Dialects:       dialects,
		CSV:            c.CSV,
		Text:           c.Text,
		Codec:          codec,
	}
	if err = rc.Validate(); err != nil {
		return scenario.Config{}, err
	}

	return rc, nil
}

// DatasetOptions returns the generator options implied by c.
// Call Validate first; the options panic on out-of-range values.
func (c Config) DatasetOptions() []dataset.Option {
	opts := []dataset.Option{
		dataset.WithMaxAttempts(c.MaxAttempts),
		dataset.WithNoise(c.NoiseSigma),
	}
	if c.Seed != nil {
		opts = append(opts, dataset.WithSeed(*c.Seed))
	}
	return opts
}
