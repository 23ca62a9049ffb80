// Package logging builds the zap loggers used by the command line.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options select the logger output.
type Options struct {
	// Verbose enables debug traces of the resolution.
	Verbose bool
	// JSON switches to structured output for machine consumption.
	JSON bool
}

// New builds a logger writing to stderr. Plans and reports go to stdout, so
// logs never interleave with them.
func New(opts Options) *zap.Logger {
	return NewWithSink(zapcore.Lock(os.Stderr), opts)
}

// NewWithSink builds a logger writing to sink.
func NewWithSink(sink zapcore.WriteSyncer, opts Options) *zap.Logger {
	level := zap.InfoLevel
	if opts.Verbose {
		level = zap.DebugLevel
	}

	var encoder zapcore.Encoder
	if opts.JSON {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		encoder = zapcore.NewConsoleEncoder(minimalEncoderConfig())
	}

	return zap.New(zapcore.NewCore(encoder, sink, level))
}

// minimalEncoderConfig drops timestamps and callers from console output.
func minimalEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	cfg.CallerKey = ""
	cfg.NameKey = ""
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder

	return cfg
}
