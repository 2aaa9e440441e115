// Package profile provides publisher-specific layout profiles that tune
// the header-pattern extraction strategy to a known recipe source.
package profile

import (
	"os"
	"strings"

	"github.com/fwojciec/rezept"
	"gopkg.in/yaml.v3"
)

// Profile describes how a particular recipe publisher lays out its PDFs.
type Profile struct {
	Name string `yaml:"name"`

	// Text snippets that identify the publisher anywhere in the document.
	// A profile with no markers applies to every document.
	SourceMarkers []string `yaml:"sourceMarkers"`

	// Headers that open the ingredient and instruction blocks.
	IngredientHeaders  []string `yaml:"ingredientHeaders"`
	InstructionHeaders []string `yaml:"instructionHeaders"`

	// Additional boilerplate markers specific to this publisher.
	NoiseMarkers []string `yaml:"noiseMarkers"`

	// Strip leading step numbers from instruction lines.
	StripStepNumbers bool `yaml:"stripStepNumbers"`
}

// Matches reports whether the document text identifies this profile's
// publisher. A profile without source markers matches everything.
func (p Profile) Matches(text string) bool {
	if len(p.SourceMarkers) == 0 {
		return true
	}
	lower := strings.ToLower(text)
	for _, m := range p.SourceMarkers {
		if strings.Contains(lower, strings.ToLower(m)) {
			return true
		}
	}
	return false
}

// IsIngredientHeader reports whether the line opens this profile's
// ingredient block.
func (p Profile) IsIngredientHeader(line string) bool {
	return matchesHeader(line, p.IngredientHeaders)
}

// IsInstructionHeader reports whether the line opens this profile's
// instruction block.
func (p Profile) IsInstructionHeader(line string) bool {
	return matchesHeader(line, p.InstructionHeaders)
}

// IsNoise reports whether the line is boilerplate for this publisher.
func (p Profile) IsNoise(line string) bool {
	if rezept.IsNoise(line) {
		return true
	}
	lower := strings.ToLower(line)
	for _, m := range p.NoiseMarkers {
		if strings.Contains(lower, strings.ToLower(m)) {
			return true
		}
	}
	return false
}

func matchesHeader(line string, headers []string) bool {
	lower := strings.ToLower(strings.TrimSpace(line))
	for _, h := range headers {
		if strings.HasPrefix(lower, strings.ToLower(h)) {
			return true
		}
	}
	return false
}

// Builtin returns the built-in profiles, most specific first. The last
// profile is the generic fallback that matches every document.
func Builtin() []Profile {
	return []Profile{
		{
			Name:               "lemenu",
			SourceMarkers:      []string{"lemenu.ch", "le menu"},
			IngredientHeaders:  []string{"zutaten", "einkaufsliste"},
			InstructionHeaders: []string{"zubereitung", "so wird's gemacht"},
			NoiseMarkers:       []string{"lemenu", "abonnieren"},
			StripStepNumbers:   true,
		},
		{
			Name:               "tiptopf",
			SourceMarkers:      []string{"tiptopf"},
			IngredientHeaders:  []string{"zutaten", "zutatenliste"},
			InstructionHeaders: []string{"zubereitung", "anleitung"},
			NoiseMarkers:       []string{"tiptopf", "schulverlag"},
		},
		{
			Name:               "kochen",
			SourceMarkers:      []string{"kochen.ch"},
			IngredientHeaders:  []string{"zutaten"},
			InstructionHeaders: []string{"zubereitung", "zubereiten"},
			NoiseMarkers:       []string{"kochen.ch"},
		},
		{
			Name:               "generic",
			IngredientHeaders:  rezept.IngredientMarkers,
			InstructionHeaders: rezept.InstructionMarkers,
		},
	}
}

// Load reads additional profiles from a YAML file. Loaded profiles are
// tried before the built-in ones.
func Load(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, rezept.Errorf(rezept.EINVALID, "read profiles: %s", err)
	}
	var loaded []Profile
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, rezept.Errorf(rezept.EINVALID, "parse profiles: %s", err)
	}
	for _, p := range loaded {
		if p.Name == "" {
			return nil, rezept.Errorf(rezept.EINVALID, "profile name required")
		}
	}
	return append(loaded, Builtin()...), nil
}
