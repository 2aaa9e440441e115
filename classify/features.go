// Package classify implements the learned section classifier: hand-crafted
// text features plus a linear model trained offline and shipped as a JSON
// artifact.
package classify

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball"

	"github.com/fwojciec/rezept"
)

// FeatureNames lists the features produced by Features, in order. A model
// artifact must declare the same list or it is rejected at load time.
var FeatureNames = []string{
	"length",
	"word_count",
	"avg_word_length",
	"line_breaks",
	"rel_position",
	"digit_count",
	"digit_ratio",
	"has_number_list",
	"has_bullet_list",
	"has_units",
	"has_amount_pattern",
	"ingredient_word_count",
	"verb_count",
	"starts_with_verb",
	"has_title_marker",
	"has_ingredient_marker",
	"has_instruction_marker",
}

var numberListRe = regexp.MustCompile(`(?m)^\s*\d+[.,]?\s`)

// Features converts a section into a numeric feature vector. total is the
// number of sections in the document, used for the relative position.
func Features(s rezept.Section, total int) []float64 {
	text := s.Text
	words := strings.Fields(text)

	var avgWordLen float64
	for _, w := range words {
		avgWordLen += float64(len(w))
	}
	if len(words) > 0 {
		avgWordLen /= float64(len(words))
	}

	digits := 0
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	var digitRatio float64
	if len(text) > 0 {
		digitRatio = float64(digits) / float64(len(text))
	}

	var relPos float64
	if total > 1 {
		relPos = float64(s.Position) / float64(total-1)
	}

	ingredientWords := 0
	verbs := 0
	for _, w := range words {
		lw := strings.ToLower(strings.Trim(w, ".,;:()"))
		if isCommonIngredient(lw) {
			ingredientWords++
		}
		if isCookingVerb(lw) {
			verbs++
		}
	}

	startsWithVerb := 0.0
	if len(words) > 0 && isCookingVerb(strings.ToLower(strings.Trim(words[0], ".,;:()"))) {
		startsWithVerb = 1
	}

	return []float64{
		float64(len(text)),
		float64(len(words)),
		avgWordLen,
		float64(strings.Count(text, "\n")),
		relPos,
		float64(digits),
		digitRatio,
		boolFeature(numberListRe.MatchString(text)),
		boolFeature(rezept.IsBulleted(text)),
		boolFeature(rezept.ContainsUnit(text)),
		boolFeature(hasAmountLine(text)),
		float64(ingredientWords),
		float64(verbs),
		startsWithVerb,
		boolFeature(rezept.RejectAsTitle(text)),
		boolFeature(rezept.IsIngredientMarker(text)),
		boolFeature(rezept.IsInstructionMarker(text)),
	}
}

func hasAmountLine(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		if rezept.HasAmount(line) {
			return true
		}
	}
	return false
}

func boolFeature(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// stemmed keyword sets, built once so per-section matching is a lookup

var (
	stemmedVerbs       = stemSet(rezept.CookingVerbs)
	stemmedIngredients = stemSet(rezept.CommonIngredients)
)

func stemSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[stem(w)] = true
	}
	return set
}

func stem(word string) string {
	s, err := snowball.Stem(word, "german", true)
	if err != nil {
		return strings.ToLower(word)
	}
	return s
}

func isCookingVerb(word string) bool {
	if word == "" {
		return false
	}
	return stemmedVerbs[stem(word)]
}

func isCommonIngredient(word string) bool {
	if word == "" {
		return false
	}
	return stemmedIngredients[stem(word)]
}
