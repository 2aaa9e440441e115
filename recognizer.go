package rezept

import (
	"context"
	"image"
)

// minNativeTextLen is the threshold below which the native text layer of
// a PDF is considered empty and the document is treated as scanned.
const minNativeTextLen = 100

// NeedsOCR reports whether the document's native text layer is too thin
// to work with and the pages should be rasterized and OCRed instead.
func NeedsOCR(l *Layout) bool {
	return len(l.Text()) < minNativeTextLen
}

// PageRasterizer renders PDF pages to images for OCR.
type PageRasterizer interface {
	// RasterizePages renders every page of the document at the given
	// DPI, in page order.
	RasterizePages(ctx context.Context, path string, dpi int) ([]image.Image, error)
}

// TextRecognizer turns a page image into text.
type TextRecognizer interface {
	// Recognize runs OCR over a single page image.
	Recognize(ctx context.Context, img image.Image) (string, error)
}
