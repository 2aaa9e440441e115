package rezept

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Nutrition holds per-serving nutrition values parsed from the recipe
// text. Zero values mean the value was not found.
type Nutrition struct {
	Calories int     `json:"calories,omitempty"` // kcal
	Fat      float64 `json:"fat,omitempty"`      // grams
	Carbs    float64 `json:"carbs,omitempty"`    // grams
	Protein  float64 `json:"protein,omitempty"`  // grams
}

// Empty reports whether no nutrition value was parsed.
func (n Nutrition) Empty() bool {
	return n == Nutrition{}
}

var (
	caloriesRe = regexp.MustCompile(`(?i)(?:kcal\s*:?\s*(\d+)|(\d+)\s*kcal)`)
	fatRe      = regexp.MustCompile(`(?i)fett\s*:?\s*(\d+(?:[.,]\d+)?)\s*g`)
	carbsRe    = regexp.MustCompile(`(?i)kohlenhydrate\s*:?\s*(\d+(?:[.,]\d+)?)\s*g`)
	proteinRe  = regexp.MustCompile(`(?i)eiweiss\s*:?\s*(\d+(?:[.,]\d+)?)\s*g`)
	servingsRe = regexp.MustCompile(`(?i)für\s+(\d+)\s*-?\s*(\d*)\s+(personen|stück|portionen)`)
	prepRe     = regexp.MustCompile(`(?i)zubereitungszeit\s*:?\s*(\d+)\s*min`)
	cookRe     = regexp.MustCompile(`(?i)(?:koch|back|gar)zeit\s*:?\s*(\d+)\s*min`)
	minutesRe  = regexp.MustCompile(`(?i)(\d+)\s*min`)
)

// ParseNutrition scans the full recipe text for per-serving nutrition
// values. Values that cannot be found stay zero.
func ParseNutrition(text string) Nutrition {
	var n Nutrition
	if m := caloriesRe.FindStringSubmatch(text); m != nil {
		s := m[1]
		if s == "" {
			s = m[2]
		}
		n.Calories, _ = strconv.Atoi(s)
	}
	n.Fat = parseGrams(fatRe, text)
	n.Carbs = parseGrams(carbsRe, text)
	n.Protein = parseGrams(proteinRe, text)
	return n
}

// ParseServings extracts a servings expression such as "4" or "4-6" from
// phrases like "für 4 Personen" or "für 4-6 Stück". Returns "" when no
// servings phrase is found.
func ParseServings(text string) string {
	m := servingsRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	if m[2] != "" {
		return fmt.Sprintf("%s-%s", m[1], m[2])
	}
	return m[1]
}

// ParseTimes extracts preparation and cooking times in minutes. When only
// an unlabeled "X Min" appears it is taken as the preparation time.
func ParseTimes(text string) (prep, cook int) {
	if m := prepRe.FindStringSubmatch(text); m != nil {
		prep, _ = strconv.Atoi(m[1])
	}
	if m := cookRe.FindStringSubmatch(text); m != nil {
		cook, _ = strconv.Atoi(m[1])
	}
	if prep == 0 && cook == 0 {
		if m := minutesRe.FindStringSubmatch(text); m != nil {
			prep, _ = strconv.Atoi(m[1])
		}
	}
	return prep, cook
}

func parseGrams(re *regexp.Regexp, text string) float64 {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	v, _ := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	return v
}
