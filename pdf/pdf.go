// Package pdf implements native PDF text extraction using
// github.com/ledongthuc/pdf, which exposes per-fragment positions.
package pdf

import (
	"context"
	"sort"
	"strings"

	"github.com/fwojciec/rezept"
	"github.com/ledongthuc/pdf"
)

// rowTolerance is the vertical distance in points within which text
// fragments are considered to sit on the same line.
const rowTolerance = 3.0

// fragmentGap is the horizontal distance in points above which a space is
// inserted between adjacent fragments of a line.
const fragmentGap = 1.0

// LayoutExtractor reads the native text layer of a PDF.
type LayoutExtractor struct{}

var _ rezept.LayoutExtractor = (*LayoutExtractor)(nil)

// NewLayoutExtractor returns a new LayoutExtractor.
func NewLayoutExtractor() *LayoutExtractor {
	return &LayoutExtractor{}
}

// ExtractLayout implements rezept.LayoutExtractor.
func (e *LayoutExtractor) ExtractLayout(ctx context.Context, path string) (_ *rezept.Layout, err error) {
	// the underlying parser panics on some malformed files
	defer func() {
		if r := recover(); r != nil {
			err = rezept.Errorf(rezept.EUNREADABLE, "parse pdf %s: %v", path, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, rezept.Errorf(rezept.EUNREADABLE, "open pdf %s: %s", path, err)
	}
	defer f.Close()

	layout := &rezept.Layout{Path: path}
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		width, height := pageSize(p)
		lines := AssembleLines(p.Content().Text, i, width, height)
		texts := make([]string, len(lines))
		for j, l := range lines {
			texts[j] = l.Text
		}
		layout.Pages = append(layout.Pages, rezept.Page{
			Number: i,
			Width:  width,
			Height: height,
			Text:   strings.Join(texts, "\n"),
			Lines:  lines,
		})
	}
	return layout, nil
}

// AssembleLines groups positioned text fragments into lines in reading
// order. Fragments whose baselines are within rowTolerance points share a
// line. Coordinates on the returned lines are normalized to the page
// size, with Y growing downward.
func AssembleLines(texts []pdf.Text, page int, width, height float64) []rezept.Line {
	if len(texts) == 0 {
		return nil
	}

	sorted := make([]pdf.Text, len(texts))
	copy(sorted, texts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y // PDF Y grows upward
		}
		return sorted[i].X < sorted[j].X
	})

	var lines []rezept.Line
	var row []pdf.Text
	flush := func() {
		if len(row) == 0 {
			return
		}
		lines = append(lines, buildLine(row, page, width, height))
		row = nil
	}
	for _, t := range sorted {
		if len(row) > 0 && row[0].Y-t.Y > rowTolerance {
			flush()
		}
		row = append(row, t)
	}
	flush()
	return lines
}

func buildLine(row []pdf.Text, page int, width, height float64) rezept.Line {
	sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })

	var b strings.Builder
	minX, maxX := row[0].X, row[0].X+row[0].W
	baseline, size := row[0].Y, row[0].FontSize
	prevEnd := row[0].X
	for i, t := range row {
		if i > 0 && t.X-prevEnd > fragmentGap && !strings.HasSuffix(b.String(), " ") {
			b.WriteString(" ")
		}
		b.WriteString(t.S)
		prevEnd = t.X + t.W
		if t.X < minX {
			minX = t.X
		}
		if t.X+t.W > maxX {
			maxX = t.X + t.W
		}
		if t.FontSize > size {
			size = t.FontSize
		}
	}

	return rezept.Line{
		Text: rezept.Normalize(strings.TrimSpace(b.String())),
		Page: page,
		X0:   minX / width,
		Y0:   1 - (baseline+size)/height,
		X1:   maxX / width,
		Y1:   1 - baseline/height,
	}
}

func pageSize(p pdf.Page) (width, height float64) {
	// US Letter fallback when the MediaBox is missing or malformed
	width, height = 612, 792

	box := p.V.Key("MediaBox")
	if box.IsNull() || box.Kind() != pdf.Array || box.Len() < 4 {
		return width, height
	}
	coords := make([]float64, 4)
	for i := range coords {
		v := box.Index(i)
		switch v.Kind() {
		case pdf.Integer:
			coords[i] = float64(v.Int64())
		case pdf.Real:
			coords[i] = v.Float64()
		default:
			return width, height
		}
	}
	w, h := coords[2]-coords[0], coords[3]-coords[1]
	if w <= 0 || h <= 0 {
		return width, height
	}
	return w, h
}
