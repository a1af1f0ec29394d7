package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bsaintjo/advent2024/pkg/observability"
)

// newLogger creates a logger with "HH:MM:SS.ms" timestamps writing to w.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of an operation with its elapsed time.
// Not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Rendered graph (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// logHooks forwards pipeline and cache events to the debug log.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.PipelineHooks = (*logHooks)(nil)
	_ observability.CacheHooks    = (*logHooks)(nil)
)

func (h *logHooks) OnParseStart(_ context.Context, inputSize int) {
	h.logger.Debug("parse started", "bytes", inputSize)
}

func (h *logHooks) OnParseComplete(_ context.Context, rules, sequences int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("parse failed", "duration", d, "error", err)
		return
	}
	h.logger.Debug("parse finished", "rules", rules, "sequences", sequences, "duration", d)
}

func (h *logHooks) OnEvaluateStart(_ context.Context, mode string, sequences int) {
	h.logger.Debug("evaluation started", "mode", mode, "sequences", sequences)
}

func (h *logHooks) OnEvaluateComplete(_ context.Context, mode string, valid, invalid int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("evaluation failed", "mode", mode, "duration", d, "error", err)
		return
	}
	h.logger.Debug("evaluation finished", "mode", mode, "valid", valid, "invalid", invalid, "duration", d)
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache stored", "type", keyType, "bytes", size)
}
