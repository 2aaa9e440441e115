package mock

import (
	"context"

	"github.com/fwojciec/rezept"
)

var _ rezept.LayoutExtractor = (*LayoutExtractor)(nil)

// LayoutExtractor is a mock implementation of rezept.LayoutExtractor.
type LayoutExtractor struct {
	ExtractLayoutFn func(ctx context.Context, path string) (*rezept.Layout, error)
}

func (e *LayoutExtractor) ExtractLayout(ctx context.Context, path string) (*rezept.Layout, error) {
	return e.ExtractLayoutFn(ctx, path)
}

var _ rezept.Validator = (*Validator)(nil)

// Validator is a mock implementation of rezept.Validator.
type Validator struct {
	ValidateFn func(ctx context.Context, path string) error
}

func (v *Validator) Validate(ctx context.Context, path string) error {
	return v.ValidateFn(ctx, path)
}

var _ rezept.ImageExtractor = (*ImageExtractor)(nil)

// ImageExtractor is a mock implementation of rezept.ImageExtractor.
type ImageExtractor struct {
	ExtractImagesFn func(ctx context.Context, path string, store rezept.ImageStore) ([]string, error)
}

func (e *ImageExtractor) ExtractImages(ctx context.Context, path string, store rezept.ImageStore) ([]string, error) {
	return e.ExtractImagesFn(ctx, path, store)
}
