// Package slog provides logging decorators for pipeline services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rezept"
)

// Ensure LoggingLayoutExtractor implements rezept.LayoutExtractor.
var _ rezept.LayoutExtractor = (*LoggingLayoutExtractor)(nil)

// LoggingLayoutExtractor wraps a LayoutExtractor with debug logging.
type LoggingLayoutExtractor struct {
	next   rezept.LayoutExtractor
	logger *slog.Logger
}

// NewLoggingLayoutExtractor creates a new LoggingLayoutExtractor.
func NewLoggingLayoutExtractor(next rezept.LayoutExtractor, logger *slog.Logger) *LoggingLayoutExtractor {
	return &LoggingLayoutExtractor{next: next, logger: logger}
}

// ExtractLayout delegates to the wrapped extractor and logs the operation.
func (s *LoggingLayoutExtractor) ExtractLayout(ctx context.Context, path string) (layout *rezept.Layout, err error) {
	defer func(begin time.Time) {
		pages := 0
		if layout != nil {
			pages = len(layout.Pages)
		}
		s.logger.Info("layout extraction",
			"path", path,
			"pages", pages,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ExtractLayout(ctx, path)
}
