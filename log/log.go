// Package log provides a simple logging facade for kitup.
package log

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Attribute keys used throughout the codebase.
const (
	KeyCommand  = "command"
	KeyError    = "error"
	KeyExitCode = "exitCode"
	KeyFile     = "file"
	KeyBytes    = "bytes"
	KeySudo     = "sudo"
	KeyPackage  = "package"
	KeyPath     = "path"
	KeyTool     = "tool"
	KeyURL      = "url"
)

// Logger interface is implemented by slog.Logger and most other structured
// logging packages. The functions are not sprintf-style, keys and values are
// key-value pairs.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// Null is a logger that discards everything.
var Null Logger = slog.New(discardHandler{})

var defaultLogger atomic.Value

func init() {
	defaultLogger.Store(Null)
}

// Default returns the package level default logger.
func Default() Logger { return defaultLogger.Load().(Logger) } //nolint:forcetypeassert

// SetDefault sets the package level default logger.
func SetDefault(l Logger) { defaultLogger.Store(l) }

var trace = sync.OnceValue(func() TraceLogger {
	return slog.New(discardHandler{})
})

// TraceLogger is implemented by slog.Logger.
type TraceLogger interface {
	Log(ctx context.Context, level slog.Level, msg string, keysAndValues ...any)
}

// SetTraceLogger enables the internal trace logging. It must be set before any
// trace output is produced.
func SetTraceLogger(l TraceLogger) {
	trace = sync.OnceValue(func() TraceLogger { return l })
}

// Trace is for internal trace logging that must be separately enabled via
// SetTraceLogger.
func Trace(ctx context.Context, msg string, keysAndValues ...any) {
	trace().Log(ctx, slog.LevelDebug, msg, keysAndValues...)
}

// ErrorAttr returns a slog attr for an error value.
func ErrorAttr(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}

// FileAttr returns a slog attr for a file path.
func FileAttr(file string) slog.Attr {
	return slog.String(KeyFile, file)
}

type withAttrs struct {
	logger Logger
	attrs  []any
}

func (w *withAttrs) kv(kv []any) []any {
	return append(w.attrs, kv...)
}

func (w *withAttrs) Debug(msg string, keysAndValues ...any) {
	w.logger.Debug(msg, w.kv(keysAndValues)...)
}

func (w *withAttrs) Info(msg string, keysAndValues ...any) {
	w.logger.Info(msg, w.kv(keysAndValues)...)
}

func (w *withAttrs) Warn(msg string, keysAndValues ...any) {
	w.logger.Warn(msg, w.kv(keysAndValues)...)
}

func (w *withAttrs) Error(msg string, keysAndValues ...any) {
	w.logger.Error(msg, w.kv(keysAndValues)...)
}

// WithAttrs returns a logger that prepends the given attributes to every message.
func WithAttrs(logger Logger, attrs ...any) Logger {
	return &withAttrs{logger, attrs}
}

// LoggerInjectable can be embedded in other structs to provide a logger and a
// log setter.
type LoggerInjectable struct {
	logger Logger
}

// Log returns the instance's logger or the package default when none is set.
func (li *LoggerInjectable) Log() Logger {
	if li.logger == nil {
		return Default()
	}
	return li.logger
}

// SetLogger sets the instance's logger.
func (li *LoggerInjectable) SetLogger(logger Logger) {
	li.logger = logger
}

// HasLogger returns true if a logger has been set on the instance.
func (li *LoggerInjectable) HasLogger() bool {
	return li.logger != nil && li.logger != Null
}

// InjectLoggerTo sets the logger of the given object if it accepts one.
func (li *LoggerInjectable) InjectLoggerTo(obj any, attrs ...any) {
	InjectLogger(li.Log(), obj, attrs...)
}

type injectable interface {
	SetLogger(logger Logger)
}

// InjectLogger sets the logger for the given object if it implements the
// injectable interface.
func InjectLogger(l Logger, obj any, attrs ...any) {
	if o, ok := obj.(injectable); ok {
		if len(attrs) > 0 {
			o.SetLogger(WithAttrs(l, attrs...))
		} else {
			o.SetLogger(l)
		}
	}
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
