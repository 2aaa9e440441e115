package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rezept"
)

// Ensure LoggingRecipeExtractor implements rezept.RecipeExtractor.
var _ rezept.RecipeExtractor = (*LoggingRecipeExtractor)(nil)

// LoggingRecipeExtractor wraps a RecipeExtractor with debug logging.
type LoggingRecipeExtractor struct {
	next   rezept.RecipeExtractor
	logger *slog.Logger
}

// NewLoggingRecipeExtractor creates a new LoggingRecipeExtractor.
func NewLoggingRecipeExtractor(next rezept.RecipeExtractor, logger *slog.Logger) *LoggingRecipeExtractor {
	return &LoggingRecipeExtractor{next: next, logger: logger}
}

// ExtractRecipe delegates to the wrapped extractor and logs the outcome.
func (s *LoggingRecipeExtractor) ExtractRecipe(ctx context.Context, path string) *rezept.Extraction {
	begin := time.Now()
	e := s.next.ExtractRecipe(ctx, path)
	s.logger.Info("recipe extraction",
		"path", path,
		"valid", e.Valid(),
		"strategy", e.Strategy,
		"ocr", e.OCR,
		"duration", time.Since(begin),
		"err", e.Err,
	)
	return e
}
