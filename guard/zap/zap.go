package zap

import (
	"context"

	glog "github.com/LerianStudio/lib-guard/guard/log"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger implements log.Logger on top of a *zap.Logger.
type Logger struct {
	logger *zap.Logger
}

var _ glog.Logger = (*Logger)(nil)

// New wraps logger. A nil logger yields a Logger that discards everything.
func New(logger *zap.Logger) *Logger {
	return &Logger{logger: logger}
}

func (l *Logger) must() *zap.Logger {
	if l == nil || l.logger == nil {
		return zap.NewNop()
	}

	return l.logger
}

// Log writes msg at level. When ctx carries a valid span context, trace_id and
// span_id are appended so the entry correlates with the trace.
func (l *Logger) Log(ctx context.Context, level glog.Level, msg string, fields ...glog.Field) {
	zapFields := fieldsToZap(fields)

	if ctx != nil {
		if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
			zapFields = append(zapFields,
				zap.String("trace_id", sc.TraceID().String()),
				zap.String("span_id", sc.SpanID().String()),
			)
		}
	}

	if ce := l.must().Check(levelToZap(level), msg); ce != nil {
		ce.Write(zapFields...)
	}
}

// With returns a child logger carrying fields on every entry.
//
//nolint:ireturn
func (l *Logger) With(fields ...glog.Field) glog.Logger {
	return &Logger{logger: l.must().With(fieldsToZap(fields)...)}
}

// Enabled reports whether an entry at level would be written.
func (l *Logger) Enabled(level glog.Level) bool {
	return l.must().Core().Enabled(levelToZap(level))
}

// Sync flushes buffered entries, giving up when ctx is done first. A nil ctx
// waits for the flush to finish.
func (l *Logger) Sync(ctx context.Context) error {
	if ctx == nil {
		return l.must().Sync()
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan error, 1)

	go func() {
		done <- l.must().Sync()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}

// Raw returns the underlying zap logger.
func (l *Logger) Raw() *zap.Logger {
	return l.must()
}

func levelToZap(level glog.Level) zapcore.Level {
	switch level {
	case glog.LevelDebug:
		return zapcore.DebugLevel
	case glog.LevelInfo:
		return zapcore.InfoLevel
	case glog.LevelWarn:
		return zapcore.WarnLevel
	case glog.LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func fieldsToZap(fields []glog.Field) []zap.Field {
	zapFields := make([]zap.Field, len(fields))
	for i, f := range fields {
		if err, ok := f.Value.(error); ok && f.Key == "error" {
			zapFields[i] = zap.Error(err)
			continue
		}

		zapFields[i] = zap.Any(f.Key, f.Value)
	}

	return zapFields
}
