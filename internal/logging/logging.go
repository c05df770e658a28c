// Package logging builds the zap logger used by the demo harness.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	// Level is a zap level name (debug, info, warn, error). Empty means warn.
	Level string

	// Development switches the console sink to the human-readable encoder.
	Development bool

	// File, when set, adds a rotated JSON sink.
	File string
}

// New returns a logger writing to console and, optionally, to a rotated file.
//
// Demo output never goes through this logger; console should be stderr so
// stdout stays exactly the snippets' lines.
func New(opts Options, console io.Writer) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, err
		}
	}

	var consoleEncoder zapcore.Encoder
	if opts.Development {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		consoleEncoder = zapcore.NewConsoleEncoder(encCfg)
	} else {
		consoleEncoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.AddSync(console), level),
	}

	if opts.File != "" {
		fileSyncer := zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     7, // days
		})
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), fileSyncer, level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}
