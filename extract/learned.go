package extract

import (
	"context"

	"github.com/fwojciec/rezept"
)

// titleWindow bounds how far into the document a title candidate may sit.
const titleWindow = 5

// LearnedStrategy classifies sections with a trained model. It is only
// added to the cascade when a model artifact is available.
type LearnedStrategy struct {
	Classifier rezept.SectionClassifier
}

var _ Strategy = (*LearnedStrategy)(nil)

// NewLearnedStrategy returns a LearnedStrategy over the given classifier.
func NewLearnedStrategy(c rezept.SectionClassifier) *LearnedStrategy {
	return &LearnedStrategy{Classifier: c}
}

func (s *LearnedStrategy) Name() string { return "learned" }

// Extract implements Strategy.
func (s *LearnedStrategy) Extract(ctx context.Context, in *Input) rezept.Outcome {
	if s.Classifier == nil {
		return rezept.NotApplicable("no classifier model")
	}
	if len(in.Sections) == 0 {
		return rezept.NotApplicable("no sections")
	}

	labels, err := s.Classifier.Classify(in.Sections)
	if err != nil {
		return rezept.NotApplicable("classifier failed: " + rezept.ErrorMessage(err))
	}

	var title string
	var ingredients, instructions []string
	for i, sec := range in.Sections {
		switch labels[i] {
		case rezept.LabelTitle:
			// the shortest title-labeled section near the document start
			// wins; later ones only fill an empty slot
			if title == "" || (i < titleWindow && len(sec.Text) < len(title)) {
				title = sec.Text
			}
		case rezept.LabelIngredients:
			ingredients = append(ingredients, splitLines(sec.Text)...)
		case rezept.LabelInstructions:
			instructions = append(instructions, splitLines(sec.Text)...)
		}
	}

	e, ok := assemble(in, title, ingredients, instructions)
	if !ok {
		return rezept.NotApplicable("classified content incomplete")
	}
	return rezept.Applicable(e)
}
