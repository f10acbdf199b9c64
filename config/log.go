// SPDX-License-Identifier: MIT
// Package config: logging settings.

package config

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

func (l LogLevel) String() string {
	return string(l)
}

// Zap maps l to a zap level. Aliases are accepted; unknown names map to error.
func (l LogLevel) Zap() zap.AtomicLevel {
	switch l {
	case LogLevelDebug, "trace":
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	case LogLevelInfo, "information", "notice":
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	case LogLevelWarn, "warning":
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	default:
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	}
}

func (l LogLevel) valid() bool {
	switch l {
	case LogLevelDebug, "trace", LogLevelInfo, "information", "notice", LogLevelWarn, "warning", LogLevelError:
		return true
	}
	return false
}

const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Log holds the logger settings of a run.
type Log struct {
	Level  LogLevel
	Format string
}

// Validate rejects unknown levels and formats.
func (l Log) Validate() error {
	if !l.Level.valid() {
		return fmt.Errorf("log level %q: %w", l.Level, ErrInvalidConfig)
	}
	if l.Format != LogFormatConsole && l.Format != LogFormatJSON {
		return fmt.Errorf("log format %q: %w", l.Format, ErrInvalidConfig)
	}
	return nil
}

// Build returns a logger writing to w. The logger is not installed globally.
func (l Log) Build(w io.Writer) (*zap.Logger, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	if l.Format == LogFormatJSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), l.Level.Zap())), nil
}
