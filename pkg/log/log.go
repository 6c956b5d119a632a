package log

import (
	"context"
	"log/slog"
)

// Logger is the logging surface the rest of the service uses. Format-style
// calls keep call sites terse; the Ctx variants forward request context to
// the underlying handler.
type Logger interface {
	Debug(format string, v ...any)
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)

	CtxDebug(ctx context.Context, format string, v ...any)
	CtxInfo(ctx context.Context, format string, v ...any)
	CtxWarn(ctx context.Context, format string, v ...any)
	CtxError(ctx context.Context, format string, v ...any)

	SetLevel(slog.Level)
}

func SetLevel(lv slog.Level) {
	logger.SetLevel(lv)
}

func DefaultLogger() Logger {
	return logger
}

func SetLogger(v Logger) {
	logger = v
}

func Debug(format string, v ...any) {
	logger.Debug(format, v...)
}

func Info(format string, v ...any) {
	logger.Info(format, v...)
}

func Warn(format string, v ...any) {
	logger.Warn(format, v...)
}

func Error(format string, v ...any) {
	logger.Error(format, v...)
}

func CtxDebug(ctx context.Context, format string, v ...any) {
	logger.CtxDebug(ctx, format, v...)
}

func CtxInfo(ctx context.Context, format string, v ...any) {
	logger.CtxInfo(ctx, format, v...)
}

func CtxWarn(ctx context.Context, format string, v ...any) {
	logger.CtxWarn(ctx, format, v...)
}

func CtxError(ctx context.Context, format string, v ...any) {
	logger.CtxError(ctx, format, v...)
}
