package mock

import "github.com/fwojciec/rezept"

var _ rezept.SectionClassifier = (*SectionClassifier)(nil)

// SectionClassifier is a mock implementation of rezept.SectionClassifier.
type SectionClassifier struct {
	ClassifyFn func(sections []rezept.Section) ([]rezept.Label, error)
}

func (c *SectionClassifier) Classify(sections []rezept.Section) ([]rezept.Label, error) {
	return c.ClassifyFn(sections)
}
