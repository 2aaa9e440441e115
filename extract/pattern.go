package extract

import (
	"context"
	"regexp"
	"strings"

	"github.com/fwojciec/rezept"
	"github.com/fwojciec/rezept/profile"
)

var stepNumberRe = regexp.MustCompile(`^\s*\d+[.,)]?\s+`)

// PatternStrategy walks the document line by line, switching between
// title, ingredient and instruction collection at the section headers a
// layout profile declares. Every matching profile is tried; the one that
// classifies the most lines wins.
type PatternStrategy struct {
	Profiles []profile.Profile
}

var _ Strategy = (*PatternStrategy)(nil)

// NewPatternStrategy returns a PatternStrategy over the given profiles,
// or the built-in profiles when none are given.
func NewPatternStrategy(profiles []profile.Profile) *PatternStrategy {
	if len(profiles) == 0 {
		profiles = profile.Builtin()
	}
	return &PatternStrategy{Profiles: profiles}
}

func (s *PatternStrategy) Name() string { return "pattern" }

// Extract implements Strategy.
func (s *PatternStrategy) Extract(ctx context.Context, in *Input) rezept.Outcome {
	lines := splitLines(in.Text)
	if len(lines) == 0 {
		return rezept.NotApplicable("no text")
	}

	var best *rezept.Extraction
	bestScore := 0
	for _, p := range s.Profiles {
		if !p.Matches(in.Text) {
			continue
		}
		title, ingredients, instructions := runProfile(p, lines)
		e, ok := assemble(in, title, ingredients, instructions)
		if !ok {
			continue
		}
		score := strings.Count(e.Ingredients, "\n") + strings.Count(e.Instructions, "\n") + 2
		if score > bestScore {
			best, bestScore = e, score
		}
	}
	if best == nil {
		return rezept.NotApplicable("no section headers matched")
	}
	return rezept.Applicable(best)
}

func runProfile(p profile.Profile, lines []string) (title string, ingredients, instructions []string) {
	const (
		stateTitle = iota
		stateIngredients
		stateInstructions
	)
	state := stateTitle

	for _, line := range lines {
		switch {
		case p.IsNoise(line):
			continue
		case p.IsIngredientHeader(line):
			state = stateIngredients
			continue
		case p.IsInstructionHeader(line):
			state = stateInstructions
			continue
		}

		// Strong line-level evidence overrides the header-driven state:
		// amount lines belong to the ingredients, step and verb lines to
		// the instructions, wherever they appear.
		switch {
		case rezept.HasAmount(line):
			state = stateIngredients
		case rezept.IsNumberedStep(line) || rezept.ContainsCookingVerb(line):
			state = stateInstructions
		}

		switch state {
		case stateTitle:
			if title == "" && CleanTitle(line) != "" {
				title = line
			}
		case stateIngredients:
			ingredients = append(ingredients, line)
		case stateInstructions:
			if p.StripStepNumbers {
				line = stepNumberRe.ReplaceAllString(line, "")
			}
			instructions = append(instructions, line)
		}
	}
	return title, ingredients, instructions
}

func splitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
