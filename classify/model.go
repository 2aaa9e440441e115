package classify

import (
	"encoding/json"
	"os"
	"slices"

	"github.com/fwojciec/rezept"
)

// Model is a linear section classifier trained offline. The JSON artifact
// carries per-label weight vectors over the features in FeatureNames.
type Model struct {
	Labels   []string             `json:"labels"`
	Features []string             `json:"features"`
	Weights  map[string][]float64 `json:"weights"`
	Bias     map[string]float64   `json:"bias"`
}

var _ rezept.SectionClassifier = (*Model)(nil)

// LoadModel reads a model artifact from disk. Returns ENOTFOUND when the
// file does not exist, so callers can skip the learned strategy instead
// of failing the pipeline.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, rezept.Errorf(rezept.ENOTFOUND, "model %s not found", path)
	} else if err != nil {
		return nil, rezept.Errorf(rezept.EINTERNAL, "read model %s: %s", path, err)
	}

	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, rezept.Errorf(rezept.EINVALID, "parse model %s: %s", path, err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Model) validate() error {
	if len(m.Labels) == 0 {
		return rezept.Errorf(rezept.EINVALID, "model has no labels")
	}
	if !slices.Equal(m.Features, FeatureNames) {
		return rezept.Errorf(rezept.EINVALID, "model feature list does not match this build")
	}
	for _, label := range m.Labels {
		w, ok := m.Weights[label]
		if !ok || len(w) != len(FeatureNames) {
			return rezept.Errorf(rezept.EINVALID, "model weights for label %q missing or wrong size", label)
		}
	}
	return nil
}

// Classify implements rezept.SectionClassifier: the label with the highest
// linear score wins.
func (m *Model) Classify(sections []rezept.Section) ([]rezept.Label, error) {
	labels := make([]rezept.Label, len(sections))
	for i, s := range sections {
		features := Features(s, len(sections))
		best, bestScore := "", 0.0
		for _, label := range m.Labels {
			score := m.Bias[label]
			for j, w := range m.Weights[label] {
				score += w * features[j]
			}
			if best == "" || score > bestScore {
				best, bestScore = label, score
			}
		}
		labels[i] = rezept.Label(best)
	}
	return labels, nil
}
