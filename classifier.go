package rezept

// SectionClassifier assigns recipe labels to text sections.
type SectionClassifier interface {
	// Classify returns one label per input section, in order.
	Classify(sections []Section) ([]Label, error)
}
