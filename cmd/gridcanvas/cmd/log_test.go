package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/OpenTraceLab/gridcanvas/internal/config"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Fatalf("logged = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	if loggerFromContext(ctx) == nil {
		t.Fatal("empty context should give the default logger")
	}
	if configFromContext(ctx).BoardWidth != config.Default().BoardWidth {
		t.Fatal("empty context should give the default config")
	}

	l := log.New(&bytes.Buffer{})
	cfg := config.Default()
	cfg.BoardWidth = 7
	ctx = withConfig(withLogger(ctx, l), cfg)
	if loggerFromContext(ctx) != l {
		t.Fatal("logger not retrieved from context")
	}
	if configFromContext(ctx).BoardWidth != 7 {
		t.Fatal("config not retrieved from context")
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(newLogger(&buf, log.InfoLevel))
	p.done("rendered", "nodes", 4)
	out := buf.String()
	if !strings.Contains(out, "rendered") || !strings.Contains(out, "took") {
		t.Fatalf("output = %q", out)
	}
}
