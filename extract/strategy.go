// Package extract implements the recipe extraction pipeline: native text
// or OCR input, followed by a cascade of classification strategies from
// most layout-aware to most permissive.
package extract

import (
	"context"

	"github.com/fwojciec/rezept"
)

// Input is the prepared document content handed to each strategy.
type Input struct {
	// Layout carries positioned lines when native extraction succeeded.
	// OCR-sourced documents have no positioned lines.
	Layout *rezept.Layout

	// Text is the normalized full document text.
	Text string

	// Sections is Text split into classifiable sections.
	Sections []rezept.Section

	// SourcePath of the document, for fallbacks and diagnostics.
	SourcePath string
}

// Strategy is one way of turning document content into a recipe. A
// strategy either produces an extraction or declines with a reason;
// declining hands the document to the next strategy in the cascade.
type Strategy interface {
	Name() string
	Extract(ctx context.Context, in *Input) rezept.Outcome
}
