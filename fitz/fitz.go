// Package fitz implements PDF page rasterization using
// github.com/gen2brain/go-fitz (MuPDF bindings).
package fitz

import (
	"context"
	"image"

	"github.com/gen2brain/go-fitz"

	"github.com/fwojciec/rezept"
)

// Rasterizer renders PDF pages to images.
type Rasterizer struct{}

var _ rezept.PageRasterizer = (*Rasterizer)(nil)

// NewRasterizer returns a new Rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{}
}

// RasterizePages implements rezept.PageRasterizer.
func (r *Rasterizer) RasterizePages(ctx context.Context, path string, dpi int) ([]image.Image, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, rezept.Errorf(rezept.EUNREADABLE, "open pdf %s: %s", path, err)
	}
	defer doc.Close()

	images := make([]image.Image, 0, doc.NumPage())
	for i := 0; i < doc.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		img, err := doc.ImageDPI(i, float64(dpi))
		if err != nil {
			return nil, rezept.Errorf(rezept.EUNREADABLE, "render page %d of %s: %s", i+1, path, err)
		}
		images = append(images, img)
	}
	return images, nil
}
