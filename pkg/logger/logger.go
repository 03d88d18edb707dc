// Package logger is the process-wide key/value logger.
package logger

import (
	"strings"

	"go.uber.org/zap"
)

var sugar = zap.NewNop().Sugar()

// Init builds the logger for the given environment. Anything other than
// "production" gets the human readable development encoder.
func Init(env string) {
	var (
		base *zap.Logger
		err  error
	)

	if strings.EqualFold(env, "production") {
		cfg := zap.NewProductionConfig()
		cfg.DisableStacktrace = true
		base, err = cfg.Build(zap.AddCallerSkip(1))
	} else {
		base, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	}
	if err != nil {
		base = zap.NewExample()
	}

	sugar = base.Sugar()
}

// L returns the underlying zap logger.
func L() *zap.Logger {
	return sugar.Desugar()
}

func Debug(msg string, keysAndValues ...any) {
	sugar.Debugw(msg, keysAndValues...)
}

func Info(msg string, keysAndValues ...any) {
	sugar.Infow(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...any) {
	sugar.Warnw(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...any) {
	sugar.Errorw(msg, keysAndValues...)
}

// Fatal logs and exits the process.
func Fatal(msg string, keysAndValues ...any) {
	sugar.Fatalw(msg, keysAndValues...)
}

// Sync flushes buffered entries; call it before exit.
func Sync() {
	_ = sugar.Sync()
}
