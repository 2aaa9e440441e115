package gosseract

import (
	"context"
	"image"

	"golang.org/x/time/rate"

	"github.com/fwojciec/rezept"
)

// RateLimited throttles recognition calls so a shared Tesseract
// installation is not saturated when several pages are recognized at
// once.
type RateLimited struct {
	next    rezept.TextRecognizer
	limiter *rate.Limiter
}

var _ rezept.TextRecognizer = (*RateLimited)(nil)

// NewRateLimited returns a recognizer that admits at most limit
// recognitions per second.
func NewRateLimited(next rezept.TextRecognizer, limit rate.Limit) *RateLimited {
	return &RateLimited{next: next, limiter: rate.NewLimiter(limit, 1)}
}

// Recognize implements rezept.TextRecognizer.
func (r *RateLimited) Recognize(ctx context.Context, img image.Image) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return r.next.Recognize(ctx, img)
}
