package rezept

import (
	"context"
	"strings"
)

// Line is a single line of text with its position on the page. Coordinates
// are normalized to the page size, so X values run 0..1 left to right and
// Y values 0..1 top to bottom.
type Line struct {
	Text string  `json:"text"`
	Page int     `json:"page"` // 1-based
	X0   float64 `json:"x0"`
	Y0   float64 `json:"y0"`
	X1   float64 `json:"x1"`
	Y1   float64 `json:"y1"`
}

// CenterX returns the horizontal center of the line.
func (l Line) CenterX() float64 {
	return (l.X0 + l.X1) / 2
}

// Page holds the extracted content of a single PDF page.
type Page struct {
	Number int     `json:"number"` // 1-based
	Width  float64 `json:"width"`  // points
	Height float64 `json:"height"` // points
	Text   string  `json:"text"`
	Lines  []Line  `json:"lines,omitempty"`
}

// Layout is the positioned text content of a whole PDF document.
type Layout struct {
	Path  string `json:"path"`
	Pages []Page `json:"pages"`
}

// Text returns the document text with pages joined by blank lines.
func (l *Layout) Text() string {
	parts := make([]string, 0, len(l.Pages))
	for _, p := range l.Pages {
		if strings.TrimSpace(p.Text) != "" {
			parts = append(parts, strings.TrimSpace(p.Text))
		}
	}
	return strings.Join(parts, "\n\n")
}

// Lines returns all positioned lines of the document in reading order.
func (l *Layout) Lines() []Line {
	var lines []Line
	for _, p := range l.Pages {
		lines = append(lines, p.Lines...)
	}
	return lines
}

// LayoutExtractor reads the native text layer of a PDF, including line
// positions where the backend can provide them.
type LayoutExtractor interface {
	// ExtractLayout returns the positioned text of the document.
	// Returns EUNREADABLE if the file is not a readable PDF.
	ExtractLayout(ctx context.Context, path string) (*Layout, error)
}

// ImageExtractor pulls embedded raster images out of a PDF.
type ImageExtractor interface {
	// ExtractImages stores the embedded images of the document and
	// returns their references in page order.
	ExtractImages(ctx context.Context, path string, store ImageStore) ([]string, error)
}

// Validator checks that a file is a well-formed PDF before the pipeline
// spends any work on it.
type Validator interface {
	// Validate returns EUNREADABLE if the file cannot be processed.
	Validate(ctx context.Context, path string) error
}
