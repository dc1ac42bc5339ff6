// Package slog provides logging decorators for domain interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/rplatt/edenweb"
)

// Ensure LoggingExtractor implements edenweb.Extractor.
var _ edenweb.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging of extraction
// outcomes and durations.
type LoggingExtractor struct {
	next   edenweb.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next edenweb.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor, logging the outcome.
func (e *LoggingExtractor) Extract(html string) (*edenweb.ExtractResult, error) {
	begin := time.Now()
	res, err := e.next.Extract(html)
	if err != nil {
		e.logger.Debug("extraction failed",
			"error", err,
			"duration", time.Since(begin),
		)
		return nil, err
	}
	e.logger.Debug("extracted page",
		"title", res.Title,
		"fragment_bytes", len(res.ContentHTML),
		"duration", time.Since(begin),
	)
	return res, nil
}
