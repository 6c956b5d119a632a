package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

var logger Logger = newDefaultLogger()

type defaultLogger struct {
	sl    *slog.Logger
	level *slog.LevelVar
}

func newDefaultLogger() *defaultLogger {
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)
	return &defaultLogger{
		sl: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:     level,
			AddSource: true,
		})),
		level: level,
	}
}

func (d *defaultLogger) SetLevel(lv slog.Level) {
	d.level.Set(lv)
}

func (d *defaultLogger) Debug(format string, v ...any) {
	d.sl.Debug(fmt.Sprintf(format, v...))
}

func (d *defaultLogger) Info(format string, v ...any) {
	d.sl.Info(fmt.Sprintf(format, v...))
}

func (d *defaultLogger) Warn(format string, v ...any) {
	d.sl.Warn(fmt.Sprintf(format, v...))
}

func (d *defaultLogger) Error(format string, v ...any) {
	d.sl.Error(fmt.Sprintf(format, v...))
}

func (d *defaultLogger) CtxDebug(ctx context.Context, format string, v ...any) {
	d.sl.DebugContext(ctx, fmt.Sprintf(format, v...))
}

func (d *defaultLogger) CtxInfo(ctx context.Context, format string, v ...any) {
	d.sl.InfoContext(ctx, fmt.Sprintf(format, v...))
}

func (d *defaultLogger) CtxWarn(ctx context.Context, format string, v ...any) {
	d.sl.WarnContext(ctx, fmt.Sprintf(format, v...))
}

func (d *defaultLogger) CtxError(ctx context.Context, format string, v ...any) {
	d.sl.ErrorContext(ctx, fmt.Sprintf(format, v...))
}
