package driven

// LabelNormaliser canonicalises free-form category labels so they can be
// compared against the genre vocabulary.
type LabelNormaliser interface {
	// Normalise lowercases, strips punctuation and removes stop-words.
	// Non-text or blank input yields "".
	Normalise(label string) string
}
