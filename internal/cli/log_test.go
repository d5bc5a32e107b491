package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/elitelau/frog-leap-problem/pkg/observability"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("test") },
			wantLog: true,
		},
		{
			name:    "debug at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: false,
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			tt.logFunc(logger)

			if gotLog := buf.Len() > 0; gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	time.Sleep(10 * time.Millisecond)
	prog.done("Found 2 solutions")

	if !strings.Contains(buf.String(), "Found 2 solutions (") {
		t.Errorf("progress output = %q", buf.String())
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Error("loggerFromContext should fall back to the default logger")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), custom)
	if loggerFromContext(ctx) != custom {
		t.Error("loggerFromContext should return the attached logger")
	}
}

func TestLogHooks(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		level log.Level
		emit  func(h *logHooks)
		want  string
	}{
		{
			name:  "search complete",
			level: log.DebugLevel,
			emit: func(h *logHooks) {
				h.OnSearchComplete(ctx, "run-1", observability.SearchSummary{Expanded: 109, DeadEnds: 34, Solutions: 2}, time.Millisecond, nil)
			},
			want: "dead_ends=34",
		},
		{
			name:  "search aborted is a warning",
			level: log.WarnLevel,
			emit: func(h *logHooks) {
				h.OnSearchComplete(ctx, "run-1", observability.SearchSummary{}, time.Millisecond, errors.New("boom"))
			},
			want: "search aborted",
		},
		{
			name:  "cache hit",
			level: log.DebugLevel,
			emit:  func(h *logHooks) { h.OnCacheHit(ctx, "svg") },
			want:  "cache hit",
		},
		{
			name:  "access log",
			level: log.InfoLevel,
			emit:  func(h *logHooks) { h.OnResponse(ctx, "GET", "/solutions", 200, time.Millisecond) },
			want:  "GET /solutions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &logHooks{logger: newLogger(&buf, tt.level)}
			tt.emit(h)
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("log output %q should contain %q", buf.String(), tt.want)
			}
		})
	}
}
