package rezept

import (
	"regexp"
	"strings"
)

// IngredientLine is a structured view of a single ingredient line.
// Parsing is best-effort: unmatched lines keep the raw text as the name.
type IngredientLine struct {
	Raw    string `json:"raw"`
	Amount string `json:"amount,omitempty"`
	Unit   string `json:"unit,omitempty"`
	Name   string `json:"name"`
}

var (
	// "200 g Mehl", "2-3 EL Olivenöl", "1/2 TL Salz"
	amountFirstRe = regexp.MustCompile(`^(\d+[\d.,/]*(?:\s*-\s*\d+[\d.,/]*)?)\s*([a-zA-ZäöüÄÖÜ]+\.?)?\s+(.+)$`)
	// "Mehl, 200 g"
	nameFirstRe = regexp.MustCompile(`^(.+?),\s*(\d+[\d.,/]*(?:\s*-\s*\d+[\d.,/]*)?)\s*([a-zA-ZäöüÄÖÜ]+\.?)?$`)
)

// ParseIngredientLine parses one ingredient line into amount, unit and
// name. It never fails; a line that matches no known shape becomes an
// IngredientLine with only the name set.
func ParseIngredientLine(line string) IngredientLine {
	raw := line
	line = strings.TrimSpace(bulletRe.ReplaceAllString(line, ""))

	if m := amountFirstRe.FindStringSubmatch(line); m != nil {
		unit, name := splitUnit(m[2], m[3])
		return IngredientLine{
			Raw:    raw,
			Amount: compactAmount(m[1]),
			Unit:   unit,
			Name:   strings.TrimSpace(name),
		}
	}

	if m := nameFirstRe.FindStringSubmatch(line); m != nil {
		unit, _ := splitUnit(m[3], "")
		return IngredientLine{
			Raw:    raw,
			Amount: compactAmount(m[2]),
			Unit:   unit,
			Name:   strings.TrimSpace(m[1]),
		}
	}

	return IngredientLine{Raw: raw, Name: line}
}

// ParseIngredients parses an ingredients text block line-wise, skipping
// blank lines and section headers.
func ParseIngredients(block string) []IngredientLine {
	var out []IngredientLine
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || IsIngredientMarker(line) {
			continue
		}
		out = append(out, ParseIngredientLine(line))
	}
	return out
}

// splitUnit validates a candidate unit token. A token that is not a known
// unit belongs to the ingredient name instead.
func splitUnit(candidate, rest string) (unit, name string) {
	trimmed := strings.TrimSuffix(candidate, ".")
	lower := strings.ToLower(trimmed)
	for _, w := range UnitWords {
		if lower == w {
			return trimmed, rest
		}
	}
	if candidate == "" {
		return "", rest
	}
	if rest == "" {
		return "", candidate
	}
	return "", candidate + " " + rest
}

func compactAmount(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), " ", "")
}
