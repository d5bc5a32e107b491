package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/elitelau/frog-leap-problem/pkg/observability"
)

// newLogger creates a logger with "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs the elapsed time of an operation when it completes.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Found 2 solutions (3ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the attached logger, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability Hooks
// =============================================================================

// logHooks turns search, cache and HTTP events into log lines. Per-node
// search events stay with the search package's own debug output.
type logHooks struct {
	observability.NoopSearchHooks
	logger *log.Logger
}

func (h *logHooks) OnSearchStart(_ context.Context, runID string) {
	h.logger.Debug("search started", "run", runID)
}

func (h *logHooks) OnSearchComplete(_ context.Context, runID string, s observability.SearchSummary, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("search aborted", "run", runID, "expanded", s.Expanded, "err", err)
		return
	}
	h.logger.Debug("search complete",
		"run", runID,
		"expanded", s.Expanded,
		"generated", s.Generated,
		"dead_ends", s.DeadEnds,
		"reclaimed", s.Reclaimed,
		"solutions", s.Solutions,
		"took", d.Round(time.Microsecond),
	)
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache store", "type", keyType, "bytes", size)
}

func (h *logHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("request", "method", method, "path", path)
}

func (h *logHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.logger.Info(method+" "+path, "status", status, "took", d.Round(time.Microsecond))
}

var (
	_ observability.SearchHooks = (*logHooks)(nil)
	_ observability.CacheHooks  = (*logHooks)(nil)
	_ observability.HTTPHooks   = (*logHooks)(nil)
)
