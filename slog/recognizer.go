package slog

import (
	"context"
	"image"
	"log/slog"
	"time"

	"github.com/fwojciec/rezept"
)

// Ensure LoggingTextRecognizer implements rezept.TextRecognizer.
var _ rezept.TextRecognizer = (*LoggingTextRecognizer)(nil)

// LoggingTextRecognizer wraps a TextRecognizer with debug logging.
type LoggingTextRecognizer struct {
	next   rezept.TextRecognizer
	logger *slog.Logger
}

// NewLoggingTextRecognizer creates a new LoggingTextRecognizer.
func NewLoggingTextRecognizer(next rezept.TextRecognizer, logger *slog.Logger) *LoggingTextRecognizer {
	return &LoggingTextRecognizer{next: next, logger: logger}
}

// Recognize delegates to the wrapped recognizer and logs the operation.
func (s *LoggingTextRecognizer) Recognize(ctx context.Context, img image.Image) (text string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("text recognition",
			"size", img.Bounds().Size().String(),
			"chars", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Recognize(ctx, img)
}
