package log

import (
	"context"
	"log/slog"
	"testing"
)

func TestLogger(t *testing.T) {
	Info("hello world")
	Info("hello %v", "world")
	CtxInfo(context.TODO(), "hello %v", "world")

	SetLevel(slog.LevelDebug)
	Debug("now visible at %v", slog.LevelDebug)
	CtxWarn(context.TODO(), "warn with %d arg", 1)
	SetLevel(slog.LevelInfo)
}
