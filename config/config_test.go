// SPDX-License-Identifier: MIT
package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/blockgen/artifact"
	"github.com/katalvlaran/blockgen/block"
	"github.com/katalvlaran/blockgen/config"
	"github.com/katalvlaran/blockgen/dataset"
	"github.com/katalvlaran/blockgen/script"
)

func TestParseFull(t *testing.T) {
	t.Parallel()

	src := []byte(`
output_dir      = "${env.BENCH_ROOT}/out"
seed            = 42
vector_encoding = "collapsed"
dialects        = ["pdml", "dml"]
max_attempts    = 8
noise_sigma     = 0.5

export {
  csv         = true
  text        = true
  compression = "zstd"
}

log {
  level  = "DEBUG"
  format = "json"
}
`)
	cfg, err := config.Parse(src, "run.hcl", map[string]string{"BENCH_ROOT": "/data"})
	require.NoError(t, err)

	require.Equal(t, "/data/out", cfg.OutputDir)
	require.NotNil(t, cfg.Seed)
	require.EqualValues(t, 42, *cfg.Seed)
	require.Equal(t, "collapsed", cfg.VectorEncoding)
	require.Equal(t, []string{"pdml", "dml"}, cfg.Dialects)
	require.Equal(t, 8, cfg.MaxAttempts)
	require.Equal(t, 0.5, cfg.NoiseSigma)
	require.True(t, cfg.CSV)
	require.True(t, cfg.Text)
	require.Equal(t, "zstd", cfg.Compression)
	require.Equal(t, config.Log{Level: config.LogLevelDebug, Format: config.LogFormatJSON}, cfg.Log)

	rc, err := cfg.RunConfig()
	require.NoError(t, err)
	require.Equal(t, block.EncodingCollapsed, rc.VectorEncoding)
	require.Equal(t, artifact.CodecZstd, rc.Codec)
	require.Equal(t, []script.Dialect{script.DialectPDML, script.DialectDML}, rc.Dialects)
}

func TestParseEmptyKeepsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse(nil, "empty.hcl", nil)
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
	require.Nil(t, cfg.Seed)
}

func TestParseRejects(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"syntax":          `output_dir = `,
		"unknown attr":    `colour = "blue"`,
		"wrong type":      `max_attempts = "many"`,
		"zero attempts":   `max_attempts = 0`,
		"negative noise":  `noise_sigma = -1`,
		"bad encoding":    `vector_encoding = "sparse"`,
		"bad codec":       "export {\n  compression = \"lz4\"\n}",
		"dml without csv": `dialects = ["dml"]`,
		"bad log format":  "log {\n  format = \"xml\"\n}",
		"bad log level":   "log {\n  level = \"loud\"\n}",
	}
	for name, src := range cases {
		_, err := config.Parse([]byte(src), name+".hcl", nil)
		require.ErrorIs(t, err, config.ErrInvalidConfig, name)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "run.hcl")
	require.NoError(t, os.WriteFile(path, []byte("seed = 7\n"), 0o644))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.EqualValues(t, 7, *cfg.Seed)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.Error(t, err)
}

func TestDatasetOptionsAreDeterministicWithSeed(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	seed := int64(3)
	cfg.Seed = &seed

	a, err := dataset.New(cfg.DatasetOptions()...).Dense(3, 3)
	require.NoError(t, err)
	b, err := dataset.New(cfg.DatasetOptions()...).Dense(3, 3)
	require.NoError(t, err)
	require.True(t, a.Equal(b))
}

func TestLogLevelZap(t *testing.T) {
	t.Parallel()

	require.Equal(t, zapcore.DebugLevel, config.LogLevel("trace").Zap().Level())
	require.Equal(t, zapcore.InfoLevel, config.LogLevelInfo.Zap().Level())
	require.Equal(t, zapcore.WarnLevel, config.LogLevel("warning").Zap().Level())
	require.Equal(t, zapcore.ErrorLevel, config.LogLevel("unknown").Zap().Level())
}

func TestLogBuild(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := config.Log{Level: config.LogLevelInfo, Format: config.LogFormatJSON}.Build(&buf)
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("shown")
	require.NoError(t, logger.Sync())
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"msg":"shown"`)

	_, err = config.Log{Level: config.LogLevelInfo, Format: "xml"}.Build(&buf)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
