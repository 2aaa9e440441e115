package extract

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/rezept"
	"github.com/fwojciec/rezept/profile"
)

// Compile-time interface verification.
var _ rezept.RecipeExtractor = (*Extractor)(nil)

// Extractor orchestrates the extraction pipeline for a single PDF: read
// the native text layer, fall back to OCR for scanned documents, run the
// strategy cascade, then attach metadata and images.
type Extractor struct {
	Layout     rezept.LayoutExtractor // required
	Validator  rezept.Validator       // optional pre-flight check
	Rasterizer rezept.PageRasterizer  // optional, enables OCR together with Recognizer
	Recognizer rezept.TextRecognizer
	Classifier rezept.SectionClassifier // optional, enables the learned strategy
	Images     rezept.ImageExtractor    // optional, enables image extraction
	ImageStore rezept.ImageStore

	Profiles    []profile.Profile
	DPI         int
	OCRTimeout  time.Duration
	Concurrency int
}

// ExtractRecipe runs the pipeline over one document. It always returns an
// extraction: unreadable documents come back with Err set, readable
// documents without recipe content come back as a stub titled after the
// file name.
func (x *Extractor) ExtractRecipe(ctx context.Context, path string) *rezept.Extraction {
	failed := &rezept.Extraction{SourcePath: path}

	if x.Validator != nil {
		if err := x.Validator.Validate(ctx, path); err != nil {
			failed.Err = rezept.ErrorMessage(err)
			return failed
		}
	}

	layout, err := x.Layout.ExtractLayout(ctx, path)
	if err != nil {
		failed.Err = rezept.ErrorMessage(err)
		return failed
	}

	text := rezept.Normalize(layout.Text())
	usedOCR := false
	var preview image.Image
	if rezept.NeedsOCR(layout) && x.Rasterizer != nil && x.Recognizer != nil {
		reader := &OCRReader{
			Rasterizer:  x.Rasterizer,
			Recognizer:  x.Recognizer,
			DPI:         x.DPI,
			Timeout:     x.OCRTimeout,
			Concurrency: x.Concurrency,
		}
		ocrText, firstPage, err := reader.Read(ctx, path)
		// OCR output supersedes the native layer only when it says more
		if err == nil && len(ocrText) > len(text) {
			text = rezept.Normalize(ocrText)
			usedOCR = true
			preview = firstPage
		}
	}

	in := &Input{
		Text:       text,
		Sections:   rezept.SplitSections(text),
		SourcePath: path,
	}
	if !usedOCR {
		// OCR text has no positions, so the layout is only useful for
		// native extractions
		in.Layout = layout
	}

	var result *rezept.Extraction
	for _, s := range x.strategies() {
		if err := ctx.Err(); err != nil {
			failed.Err = err.Error()
			return failed
		}
		out := s.Extract(ctx, in)
		if out.OK() {
			result = out.Extraction
			result.Strategy = s.Name()
			break
		}
	}
	if result == nil {
		// Readable but not a recipe. Callers still get a record for the
		// upload: filename-stem title, empty fields, no error.
		return &rezept.Extraction{
			SourcePath: path,
			Title:      TitleFromFilename(path),
			OCR:        usedOCR,
		}
	}

	result.OCR = usedOCR
	if result.Title == "" {
		result.Title = TitleFromFilename(path)
	}
	result.Servings = rezept.ParseServings(text)
	result.PrepTime, result.CookTime = rezept.ParseTimes(text)
	result.Nutrition = rezept.ParseNutrition(text)

	if x.Images != nil && x.ImageStore != nil {
		if refs, err := x.Images.ExtractImages(ctx, path, x.ImageStore); err == nil {
			result.Images = refs
		}
	}
	// Scanned documents rarely carry extractable images; keep the first
	// rendered page as the recipe preview instead.
	if len(result.Images) == 0 && preview != nil && x.ImageStore != nil {
		if ref, err := savePreview(x.ImageStore, path, preview); err == nil {
			result.Images = []string{ref}
		}
	}
	return result
}

func savePreview(store rezept.ImageStore, path string, img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + ".png"
	return store.SaveImage(name, &buf)
}

func (x *Extractor) strategies() []Strategy {
	strategies := []Strategy{
		&ColumnStrategy{},
		NewPatternStrategy(x.Profiles),
	}
	if x.Classifier != nil {
		strategies = append(strategies, NewLearnedStrategy(x.Classifier))
	}
	return append(strategies, &RuleStrategy{})
}
