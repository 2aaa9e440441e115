package rezept

import "context"

// Extraction is the result of running the extraction pipeline over a
// single PDF. It is always produced: unreadable documents carry the
// reason in Err, and readable documents without recipe content come
// back as a stub with a filename-derived title and empty fields.
type Extraction struct {
	SourcePath   string    `json:"sourcePath"`
	Title        string    `json:"title"`
	Ingredients  string    `json:"ingredients"`  // one ingredient per line
	Instructions string    `json:"instructions"` // one step per line
	Servings     string    `json:"servings,omitempty"`
	PrepTime     int       `json:"prepTime,omitempty"` // minutes
	CookTime     int       `json:"cookTime,omitempty"` // minutes
	Nutrition    Nutrition `json:"nutrition,omitzero"`
	Images       []string  `json:"images,omitempty"` // stored image references
	Strategy     string    `json:"strategy,omitempty"`
	OCR          bool      `json:"ocr,omitempty"` // text came from OCR
	Err          string    `json:"err,omitempty"`
}

// Valid reports whether the extraction carries a complete recipe: a
// title, at least one ingredient and at least one instruction.
func (e *Extraction) Valid() bool {
	return e.Title != "" && e.Ingredients != "" && e.Instructions != ""
}

// RecipeExtractor runs the full extraction pipeline over a single PDF.
type RecipeExtractor interface {
	// ExtractRecipe always returns an extraction; failures are reported
	// through the Err field rather than an error return.
	ExtractRecipe(ctx context.Context, path string) *Extraction
}

// Outcome is the result of asking a single extraction strategy to handle
// a document. A strategy either produces an extraction or declines with a
// reason; declining is not an error.
type Outcome struct {
	Extraction *Extraction
	Reason     string // why the strategy declined, empty when applicable
}

// Applicable wraps a successful strategy result.
func Applicable(e *Extraction) Outcome {
	return Outcome{Extraction: e}
}

// NotApplicable records that a strategy declined to handle the document.
func NotApplicable(reason string) Outcome {
	return Outcome{Reason: reason}
}

// OK reports whether the strategy produced an extraction.
func (o Outcome) OK() bool {
	return o.Extraction != nil
}
