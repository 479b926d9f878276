// Package logging provides the small structured-logging wrapper threaded
// through mutating MST operations, in the shape of the `Log logger.Logger`
// field convention used by massifs.MassifCommitter, but backed directly by
// go.uber.org/zap rather than a private wrapper module.
package logging

import "go.uber.org/zap"

// Logger is a thin handle over a zap.SugaredLogger. A nil *Logger is valid
// everywhere it is accepted: all methods degrade to no-ops, so callers that
// do not care about MST diagnostics never have to construct one.
type Logger struct {
	sugar *zap.SugaredLogger
}

// New wraps an existing zap logger.
func New(z *zap.Logger) *Logger {
	if z == nil {
		return nil
	}
	return &Logger{sugar: z.Sugar()}
}

// NewDevelopment builds a human-readable logger suitable for tests and local
// runs on zap.NewDevelopment, which enables debug level, so Debugw output is
// printed.
func NewDevelopment() (*Logger, error) {
	z, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return New(z), nil
}

// Debugw logs a debug-level structured message. A nil Logger is a no-op.
func (l *Logger) Debugw(msg string, keysAndValues ...interface{}) {
	if l == nil {
		return
	}
	l.sugar.Debugw(msg, keysAndValues...)
}

// Warnw logs a warn-level structured message. A nil Logger is a no-op.
func (l *Logger) Warnw(msg string, keysAndValues ...interface{}) {
	if l == nil {
		return
	}
	l.sugar.Warnw(msg, keysAndValues...)
}
