package extract

import (
	"context"
	"image"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/rezept"
	"github.com/fwojciec/rezept/imaging"
)

// DefaultDPI is the rendering resolution for OCR.
const DefaultDPI = 300

// DefaultOCRTimeout bounds the OCR phase for a single document.
const DefaultOCRTimeout = 2 * time.Minute

// ocrResult holds the recognized text of a single page.
type ocrResult struct {
	position int
	text     string
	err      error
}

// OCRReader rasterizes a document and recognizes its pages concurrently.
// Page order of the input document is preserved in the output regardless
// of worker completion order.
type OCRReader struct {
	Rasterizer  rezept.PageRasterizer
	Recognizer  rezept.TextRecognizer
	DPI         int
	Timeout     time.Duration
	Concurrency int
}

// Read renders every page at the configured DPI, preprocesses it and runs
// OCR. Pages that fail to recognize contribute empty text; the document
// fails only when rasterization fails. The first rendered page is
// returned alongside the text so callers can keep it as a preview image
// for documents that carry no embedded images of their own.
func (r *OCRReader) Read(ctx context.Context, path string) (string, image.Image, error) {
	dpi := r.DPI
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultOCRTimeout
	}
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 2
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	pages, err := r.Rasterizer.RasterizePages(ctx, path, dpi)
	if err != nil {
		return "", nil, err
	}
	if len(pages) == 0 {
		return "", nil, nil
	}

	resultCh := make(chan ocrResult, len(pages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, page := range pages {
			i, page := i, page
			g.Go(func() error {
				prepared := imaging.Preprocess(page)
				text, err := r.Recognizer.Recognize(gctx, prepared)
				resultCh <- ocrResult{position: i, text: text, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in page order
	results := make([]ocrResult, len(pages))
	for result := range resultCh {
		results[result.position] = result
	}

	var parts []string
	for _, result := range results {
		if result.err != nil {
			continue
		}
		if t := strings.TrimSpace(result.text); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n\n"), pages[0], nil
}
