package extract_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/rezept"
	"github.com/fwojciec/rezept/extract"
)

// twoColumnLayout builds a classic recipe layout: a title line on top, a
// narrow ingredient column on the left and an instruction column on the
// right.
func twoColumnLayout() *rezept.Layout {
	lines := []rezept.Line{
		{Text: "Apfelkuchen", Page: 1, X0: 0.40, X1: 0.60, Y0: 0.05, Y1: 0.08},
		{Text: "200 g Mehl", Page: 1, X0: 0.15, X1: 0.35, Y0: 0.20, Y1: 0.22},
		{Text: "100 g Zucker", Page: 1, X0: 0.15, X1: 0.35, Y0: 0.24, Y1: 0.26},
		{Text: "2 Eier", Page: 1, X0: 0.15, X1: 0.35, Y0: 0.28, Y1: 0.30},
		{Text: "Mehl und Zucker mischen", Page: 1, X0: 0.55, X1: 0.85, Y0: 0.20, Y1: 0.22},
		{Text: "Eier einzeln zugeben", Page: 1, X0: 0.55, X1: 0.85, Y0: 0.24, Y1: 0.26},
		{Text: "Bei 180 Grad backen", Page: 1, X0: 0.55, X1: 0.85, Y0: 0.28, Y1: 0.30},
	}
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.Text
	}
	return &rezept.Layout{
		Path: "apfelkuchen.pdf",
		Pages: []rezept.Page{{
			Number: 1,
			Width:  612,
			Height: 792,
			Text:   strings.Join(texts, "\n"),
			Lines:  lines,
		}},
	}
}

func inputFromLayout(l *rezept.Layout) *extract.Input {
	text := rezept.Normalize(l.Text())
	return &extract.Input{
		Layout:     l,
		Text:       text,
		Sections:   rezept.SplitSections(text),
		SourcePath: l.Path,
	}
}

func TestColumnStrategy_TwoColumnRecipe(t *testing.T) {
	t.Parallel()

	s := &extract.ColumnStrategy{}
	out := s.Extract(context.Background(), inputFromLayout(twoColumnLayout()))

	require.True(t, out.OK(), "declined: %s", out.Reason)
	e := out.Extraction

	assert.Equal(t, "Apfelkuchen", e.Title)
	assert.Equal(t, "200 g Mehl\n100 g Zucker\n2 Eier", e.Ingredients)
	assert.Contains(t, e.Instructions, "Mehl und Zucker mischen")
	assert.Contains(t, e.Instructions, "Bei 180 Grad backen")
}

func TestColumnStrategy_IngredientsInRightColumn(t *testing.T) {
	t.Parallel()

	// mirrored layout: instructions left, ingredient amounts right
	lines := []rezept.Line{
		{Text: "Apfelkuchen", Page: 1, X0: 0.40, X1: 0.60, Y0: 0.05, Y1: 0.08},
		{Text: "Mehl und Zucker mischen", Page: 1, X0: 0.10, X1: 0.40, Y0: 0.20, Y1: 0.22},
		{Text: "Eier einzeln zugeben", Page: 1, X0: 0.10, X1: 0.40, Y0: 0.24, Y1: 0.26},
		{Text: "Bei 180 Grad backen", Page: 1, X0: 0.10, X1: 0.40, Y0: 0.28, Y1: 0.30},
		{Text: "200 g Mehl", Page: 1, X0: 0.65, X1: 0.85, Y0: 0.20, Y1: 0.22},
		{Text: "100 g Zucker", Page: 1, X0: 0.65, X1: 0.85, Y0: 0.24, Y1: 0.26},
		{Text: "2 Eier", Page: 1, X0: 0.65, X1: 0.85, Y0: 0.28, Y1: 0.30},
	}
	layout := &rezept.Layout{
		Path:  "apfelkuchen.pdf",
		Pages: []rezept.Page{{Number: 1, Width: 612, Height: 792, Lines: lines}},
	}

	s := &extract.ColumnStrategy{}
	out := s.Extract(context.Background(), inputFromLayout(layout))

	require.True(t, out.OK(), "declined: %s", out.Reason)
	e := out.Extraction

	assert.Equal(t, "200 g Mehl\n100 g Zucker\n2 Eier", e.Ingredients)
	assert.Contains(t, e.Instructions, "Mehl und Zucker mischen")
	assert.NotContains(t, e.Ingredients, "backen")
}

func TestColumnStrategy_DeclinesWithoutLayout(t *testing.T) {
	t.Parallel()

	s := &extract.ColumnStrategy{}
	out := s.Extract(context.Background(), &extract.Input{Text: "Zutaten\n200 g Mehl"})

	assert.False(t, out.OK())
	assert.NotEmpty(t, out.Reason)
}

func TestColumnStrategy_DeclinesSingleColumn(t *testing.T) {
	t.Parallel()

	// all lines share one x-band, so there is no second cluster
	var lines []rezept.Line
	for i, text := range []string{
		"Apfelkuchen", "200 g Mehl", "100 g Zucker", "2 Eier",
		"Alles mischen", "Teig kneten", "Backen und servieren",
	} {
		lines = append(lines, rezept.Line{
			Text: text, Page: 1,
			X0: 0.2, X1: 0.8,
			Y0: float64(i) * 0.05, Y1: float64(i)*0.05 + 0.02,
		})
	}
	layout := &rezept.Layout{Pages: []rezept.Page{{Number: 1, Lines: lines}}}

	s := &extract.ColumnStrategy{}
	out := s.Extract(context.Background(), &extract.Input{Layout: layout})

	assert.False(t, out.OK())
}

func TestColumnStrategy_DeclinesSmallColumns(t *testing.T) {
	t.Parallel()

	// two clusters but the right column has fewer than three lines
	lines := []rezept.Line{
		{Text: "200 g Mehl", Page: 1, X0: 0.1, X1: 0.3, Y0: 0.2, Y1: 0.22},
		{Text: "100 g Zucker", Page: 1, X0: 0.1, X1: 0.3, Y0: 0.24, Y1: 0.26},
		{Text: "2 Eier", Page: 1, X0: 0.1, X1: 0.3, Y0: 0.28, Y1: 0.3},
		{Text: "Alles mischen", Page: 1, X0: 0.6, X1: 0.9, Y0: 0.2, Y1: 0.22},
		{Text: "Dann backen", Page: 1, X0: 0.6, X1: 0.9, Y0: 0.24, Y1: 0.26},
		{Text: "4 Portionen", Page: 1, X0: 0.1, X1: 0.3, Y0: 0.32, Y1: 0.34},
	}
	layout := &rezept.Layout{Pages: []rezept.Page{{Number: 1, Lines: lines}}}

	s := &extract.ColumnStrategy{}
	out := s.Extract(context.Background(), &extract.Input{Layout: layout})

	assert.False(t, out.OK())
	assert.Equal(t, "column too small", out.Reason)
}
