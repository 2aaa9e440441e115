package extract

import (
	"context"

	"github.com/fwojciec/rezept"
)

// RuleStrategy is the permissive last resort: it sorts every line into
// the ingredient or instruction bucket on lexical evidence alone, with no
// layout or header requirements.
type RuleStrategy struct{}

var _ Strategy = (*RuleStrategy)(nil)

func (s *RuleStrategy) Name() string { return "rule" }

// Extract implements Strategy.
func (s *RuleStrategy) Extract(ctx context.Context, in *Input) rezept.Outcome {
	lines := splitLines(in.Text)
	if len(lines) == 0 {
		return rezept.NotApplicable("no text")
	}

	var title string
	var ingredients, instructions []string
	for _, line := range lines {
		if rezept.IsNoise(line) {
			continue
		}
		switch {
		case rezept.IsIngredientMarker(line) || rezept.IsInstructionMarker(line):
			// headers carry no content here
		case looksLikeIngredient(line):
			ingredients = append(ingredients, line)
		case looksLikeInstructionLine(line):
			instructions = append(instructions, line)
		default:
			if title == "" && CleanTitle(line) != "" {
				title = line
			}
		}
	}

	e, ok := assemble(in, title, ingredients, instructions)
	if !ok {
		return rezept.NotApplicable("no recipe content found")
	}
	return rezept.Applicable(e)
}

func looksLikeIngredient(line string) bool {
	if rezept.HasAmount(line) {
		return true
	}
	return len(line) < minInstructionLen && rezept.ContainsCommonIngredient(line) && !rezept.ContainsCookingVerb(line)
}

func looksLikeInstructionLine(line string) bool {
	if rezept.IsNumberedStep(line) {
		return true
	}
	if rezept.ContainsCookingVerb(line) {
		return true
	}
	return len(line) > maxIngredientLen
}
