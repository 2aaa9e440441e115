package mock

import (
	"context"
	"image"

	"github.com/fwojciec/rezept"
)

var _ rezept.PageRasterizer = (*PageRasterizer)(nil)

// PageRasterizer is a mock implementation of rezept.PageRasterizer.
type PageRasterizer struct {
	RasterizePagesFn func(ctx context.Context, path string, dpi int) ([]image.Image, error)
}

func (r *PageRasterizer) RasterizePages(ctx context.Context, path string, dpi int) ([]image.Image, error) {
	return r.RasterizePagesFn(ctx, path, dpi)
}

var _ rezept.TextRecognizer = (*TextRecognizer)(nil)

// TextRecognizer is a mock implementation of rezept.TextRecognizer.
type TextRecognizer struct {
	RecognizeFn func(ctx context.Context, img image.Image) (string, error)
}

func (r *TextRecognizer) Recognize(ctx context.Context, img image.Image) (string, error) {
	return r.RecognizeFn(ctx, img)
}
