// Package logging provides structured progress tracing using zap,
// adapted from the teacher repository's internal/logging package. It is
// strictly a --verbose side channel: by default the logger writes to
// io.Discard so it never interleaves with the protocol-exact
// stderr diagnostics spec.md requires (see SPEC_FULL.md "AMBIENT STACK").
package logging

import (
	"io"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
	sugar  *zap.SugaredLogger
	once   sync.Once
)

// InitDiscard initializes the global logger to discard all output. This
// is the default for both binaries when --verbose is not given.
func InitDiscard() {
	once.Do(func() {
		logger = zap.NewNop()
		sugar = logger.Sugar()
	})
}

// InitVerbose initializes the global logger to write human-readable
// progress lines to w (the process's stderr, already wrapped by
// errwriter so a logging failure never escapes as a surprise error).
func InitVerbose(w io.Writer) {
	once.Do(func() {
		encoderCfg := zap.NewDevelopmentEncoderConfig()
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoderCfg.TimeKey = ""
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderCfg),
			zapcore.AddSync(w),
			zapcore.DebugLevel,
		)
		logger = zap.New(core)
		sugar = logger.Sugar()
	})
}

func ensureInit() {
	if logger == nil {
		InitDiscard()
	}
}

// Infof logs a formatted progress message.
func Infof(template string, args ...interface{}) {
	ensureInit()
	sugar.Infof(template, args...)
}

// Debugf logs a formatted debug message.
func Debugf(template string, args ...interface{}) {
	ensureInit()
	sugar.Debugf(template, args...)
}

// Sync flushes any buffered log entries.
func Sync() error {
	ensureInit()
	return logger.Sync()
}
