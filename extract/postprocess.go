package extract

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fwojciec/rezept"
)

var (
	titleJunkRe  = regexp.MustCompile(`(?i)\.pdf|www\.\S*|https?://\S*|\S*\.ch\b|\S*\.com\b`)
	leadingNumRe = regexp.MustCompile(`^\d+[\s\-.]+`)
)

const (
	// a line longer than this reads like an instruction, not an ingredient
	maxIngredientLen = 100

	// instruction lines shorter than this need another instruction signal
	minInstructionLen = 30
)

// CleanTitle normalizes a title candidate: URL and file-name junk is
// stripped, leading enumeration removed. Returns "" when the candidate is
// no usable title, which triggers the filename fallback upstream.
func CleanTitle(s string) string {
	s = titleJunkRe.ReplaceAllString(s, "")
	s = leadingNumRe.ReplaceAllString(strings.TrimSpace(s), "")
	s = strings.TrimSpace(s)
	if s == "" || rezept.RejectAsTitle(s) {
		return ""
	}
	return s
}

// TitleFromFilename derives a last-resort title from the PDF file name.
func TitleFromFilename(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)
	base = leadingNumRe.ReplaceAllString(strings.TrimSpace(base), "")
	return strings.Join(strings.Fields(base), " ")
}

// CleanIngredients filters candidate ingredient lines: boilerplate and
// lines that read like instructions are dropped.
func CleanIngredients(lines []string) []string {
	var out []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || rezept.IsNoise(line) || rezept.IsIngredientMarker(line) {
			continue
		}
		if looksLikeInstruction(line) {
			continue
		}
		out = append(out, line)
	}
	return out
}

func looksLikeInstruction(line string) bool {
	if rezept.IsNumberedStep(line) {
		return true
	}
	if len(line) > maxIngredientLen {
		return true
	}
	return rezept.ContainsCookingVerb(line) && !rezept.HasAmount(line)
}

// CleanInstructions filters candidate instruction lines: boilerplate is
// dropped, short ingredient-like lines are dropped, section headers and
// step-like lines are kept.
func CleanInstructions(lines []string) []string {
	var out []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || rezept.IsNoise(line) {
			continue
		}
		if rezept.IsInstructionMarker(line) {
			out = append(out, line)
			continue
		}
		if rezept.HasAmount(line) && len(line) < minInstructionLen {
			continue
		}
		if rezept.IsNumberedStep(line) || len(line) > minInstructionLen || rezept.ContainsCookingVerb(line) {
			out = append(out, line)
		}
	}
	return out
}

// assemble builds an extraction from classified content and validates it.
func assemble(in *Input, title string, ingredients, instructions []string) (*rezept.Extraction, bool) {
	e := &rezept.Extraction{
		SourcePath:   in.SourcePath,
		Title:        CleanTitle(title),
		Ingredients:  strings.Join(CleanIngredients(ingredients), "\n"),
		Instructions: strings.Join(CleanInstructions(instructions), "\n"),
	}
	return e, e.Ingredients != "" && e.Instructions != ""
}
