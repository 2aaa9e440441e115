package rezept

import (
	"regexp"
	"strings"
)

// German measurement units that commonly lead an ingredient line.
var UnitWords = []string{
	"g", "kg", "mg", "ml", "cl", "dl", "l",
	"el", "tl", "msp", "prise", "prisen",
	"stück", "bund", "zehe", "zehen", "knolle",
	"dose", "dosen", "packung", "päckchen", "becher",
	"tasse", "tassen", "scheibe", "scheiben",
	"blatt", "blätter", "zweig", "zweige", "würfel",
}

// German cooking verbs used to tell instruction text from ingredient text.
var CookingVerbs = []string{
	"mischen", "rühren", "verrühren", "schneiden", "hacken",
	"kochen", "braten", "backen", "gießen", "giessen",
	"hinzufügen", "zugeben", "erhitzen", "abkühlen",
	"garnieren", "servieren", "pürieren", "stampfen",
	"vermengen", "schlagen", "kneten", "formen",
	"würzen", "abschmecken", "dünsten", "anbraten",
}

// Common German ingredient nouns. Used as a weak signal when a line has
// neither an amount nor a unit.
var CommonIngredients = []string{
	"mehl", "zucker", "salz", "pfeffer", "butter", "öl", "olivenöl",
	"milch", "rahm", "sahne", "ei", "eier", "wasser", "zwiebel",
	"zwiebeln", "knoblauch", "tomate", "tomaten", "käse", "reis",
	"nudeln", "kartoffel", "kartoffeln", "rüebli", "karotte",
	"petersilie", "schnittlauch", "zitrone", "honig", "hefe",
}

// Section headers that introduce the ingredient list.
var IngredientMarkers = []string{"zutaten", "einkaufsliste", "zutatenliste"}

// Section headers that introduce the preparation steps.
var InstructionMarkers = []string{"zubereitung", "anleitung", "zubereiten", "so wird's gemacht", "schritt"}

// Markers that disqualify a line as a recipe title.
var titleRejectMarkers = []string{"zutaten", "zubereit", "eigenschaften", "für", "personen"}

// Markers for boilerplate lines (source URLs, nutrition footers).
var noiseMarkers = []string{"www.", ".com", ".ch", "nährwerte", "kcal"}

var (
	amountRe = regexp.MustCompile(`^\s*\d+[\d.,/]*(?:\s*-\s*\d+[\d.,/]*)?\s*([a-zA-ZäöüÄÖÜ]+)\.?(?:\s|$)`)
	stepRe   = regexp.MustCompile(`^\s*\d+[.,)]\s`)
	bulletRe = regexp.MustCompile(`^\s*[-*•○◦]\s?`)
)

// HasAmount reports whether the line starts with a quantity followed by a
// known unit, e.g. "200 g Mehl" or "2-3 EL Öl".
func HasAmount(line string) bool {
	m := amountRe.FindStringSubmatch(line)
	if m == nil {
		return false
	}
	unit := strings.ToLower(m[1])
	for _, w := range UnitWords {
		if unit == w {
			return true
		}
	}
	return false
}

// IsNumberedStep reports whether the line starts with a punctuated step
// number such as "1. " or "2) ". A bare leading number does not count,
// amounts like "2 Eier" start that way.
func IsNumberedStep(line string) bool {
	return stepRe.MatchString(line)
}

// IsBulleted reports whether the line starts with a list bullet.
func IsBulleted(line string) bool {
	return bulletRe.MatchString(line)
}

// ContainsCookingVerb reports whether the text contains one of the known
// German cooking verbs as a whole word.
func ContainsCookingVerb(text string) bool {
	return containsWord(text, CookingVerbs)
}

// ContainsCommonIngredient reports whether the text mentions one of the
// common German ingredient nouns as a whole word.
func ContainsCommonIngredient(text string) bool {
	return containsWord(text, CommonIngredients)
}

// ContainsUnit reports whether the text contains one of the known
// measurement units as a whole word.
func ContainsUnit(text string) bool {
	return containsWord(text, UnitWords)
}

// IsIngredientMarker reports whether the line is an ingredient section
// header such as "Zutaten".
func IsIngredientMarker(line string) bool {
	return hasMarker(line, IngredientMarkers)
}

// IsInstructionMarker reports whether the line is an instruction section
// header such as "Zubereitung".
func IsInstructionMarker(line string) bool {
	return hasMarker(line, InstructionMarkers)
}

// IsNoise reports whether the line is boilerplate that should never end
// up in a recipe field: source URLs, domains, nutrition footers.
func IsNoise(line string) bool {
	lower := strings.ToLower(line)
	for _, m := range noiseMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// RejectAsTitle reports whether the line contains a marker word that
// disqualifies it as a recipe title.
func RejectAsTitle(line string) bool {
	return hasMarker(line, titleRejectMarkers)
}

func hasMarker(line string, markers []string) bool {
	lower := strings.ToLower(line)
	for _, m := range markers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

func containsWord(text string, words []string) bool {
	lower := strings.ToLower(text)
	fields := strings.FieldsFunc(lower, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', ',', '.', ';', ':', '(', ')':
			return true
		}
		return false
	})
	for _, f := range fields {
		for _, w := range words {
			if f == w {
				return true
			}
		}
	}
	return false
}
