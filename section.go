package rezept

import (
	"regexp"
	"strings"
)

// Label identifies the role a section of text plays in a recipe.
type Label string

const (
	LabelUnknown      Label = ""
	LabelTitle        Label = "title"
	LabelIngredients  Label = "ingredients"
	LabelInstructions Label = "instructions"
	LabelOther        Label = "other"
)

// Section is a classifiable unit of recipe text.
type Section struct {
	Text     string `json:"text"`
	Position int    `json:"position"` // index in reading order, 0-based
	Page     int    `json:"page"`     // 1-based source page, 0 if unknown
	Label    Label  `json:"label,omitempty"`
}

// minVerbatimLen is the paragraph length below which a paragraph is kept
// as a single section instead of being split per line.
const minVerbatimLen = 15

// SplitSections splits normalized recipe text into classifiable sections.
// Paragraphs are separated by blank lines. A short paragraph stays a single
// section. A paragraph where at least half the lines start with a step
// number or a bullet is a list block and also stays a single section.
// Everything else is split into one section per line.
func SplitSections(text string) []Section {
	var sections []Section
	pos := 0
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		sections = append(sections, Section{Text: s, Position: pos})
		pos++
	}

	for _, para := range splitParagraphs(text) {
		if len(para) < minVerbatimLen {
			add(para)
			continue
		}

		lines := nonEmptyLines(para)
		if isListBlock(lines) {
			add(para)
			continue
		}
		for _, line := range lines {
			add(line)
		}
	}
	return sections
}

func splitParagraphs(text string) []string {
	var paras []string
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			paras = append(paras, strings.Join(cur, "\n"))
			cur = nil
		}
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return paras
}

func nonEmptyLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// listNumRe is looser than IsNumberedStep: any leading number makes a
// line list-like for splitting purposes, including amounts like "2 Eier".
var listNumRe = regexp.MustCompile(`^\s*\d+[.,]?\s`)

func isListBlock(lines []string) bool {
	if len(lines) == 0 {
		return false
	}
	listLike := 0
	for _, line := range lines {
		if listNumRe.MatchString(line) || IsBulleted(line) {
			listLike++
		}
	}
	return listLike*2 >= len(lines)
}
