// Package label canonicalises free-form category labels into the form used
// by the genre vocabulary.
package label

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/folio/internal/core/ports/driven"
	"github.com/custodia-labs/folio/internal/textutil"
)

// Ensure Normaliser implements the interface.
var _ driven.LabelNormaliser = (*Normaliser)(nil)

// Normaliser lowercases labels, folds accents, strips punctuation and drops
// stop-words. "Antiques & Collectibles" becomes "antiques collectibles".
type Normaliser struct{}

// New creates a new label normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Normalise returns the canonical form of label. Blank input yields "".
func (n *Normaliser) Normalise(label string) string {
	if strings.TrimSpace(label) == "" {
		return ""
	}

	// transform.Chain is stateful, so each call builds its own.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, strings.ToLower(label))
	if err != nil {
		folded = strings.ToLower(label)
	}

	words := strings.Fields(stripPunctuation(folded))
	kept := words[:0]
	for _, w := range words {
		if textutil.IsLabelStopWord(w) {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

// stripPunctuation removes punctuation and symbols. A hyphen between two
// letters is kept so compound labels like "self-help" survive.
func stripPunctuation(s string) string {
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range rs {
		if r == '-' && i > 0 && i < len(rs)-1 && unicode.IsLetter(rs[i-1]) && unicode.IsLetter(rs[i+1]) {
			b.WriteRune(r)
			continue
		}
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
