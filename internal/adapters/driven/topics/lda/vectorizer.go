package lda

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/surgebase/porter2"

	"github.com/custodia-labs/folio/internal/textutil"
)

// Document frequency bounds for vocabulary terms.
const (
	minDocFreq     = 2
	maxDocFreqRate = 0.95
)

// corpus is a bag-of-words view of a document batch.
type corpus struct {
	// terms is the vocabulary in sorted order.
	terms []string

	// labels maps each term to the surface form shown to users.
	labels []string

	// docs holds each document as a sequence of term indices.
	docs [][]int
}

// vectorizer turns raw text into a filtered term corpus.
type vectorizer struct {
	stem bool
}

// tokenize lowercases text and returns runs of two or more letters or digits,
// dropping stop-words.
func tokenize(text string) []string {
	var tokens []string
	var b strings.Builder
	flush := func() {
		if utf8.RuneCountInString(b.String()) >= 2 {
			tok := b.String()
			if !textutil.IsEnglishStopWord(tok) {
				tokens = append(tokens, tok)
			}
		}
		b.Reset()
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
			continue
		}
		flush()
	}
	flush()
	return tokens
}

// build vectorises documents. The returned corpus has an empty vocabulary
// when no term falls inside the document frequency bounds.
func (v vectorizer) build(documents []string) corpus {
	n := len(documents)
	maxDocs := int(maxDocFreqRate * float64(n))

	tokenized := make([][]string, n)
	docFreq := make(map[string]int)
	surfaces := make(map[string]map[string]int)

	for i, doc := range documents {
		seen := make(map[string]struct{})
		for _, tok := range tokenize(doc) {
			term := tok
			if v.stem {
				term = porter2.Stem(tok)
				if surfaces[term] == nil {
					surfaces[term] = make(map[string]int)
				}
				surfaces[term][tok]++
			}
			tokenized[i] = append(tokenized[i], term)
			if _, ok := seen[term]; !ok {
				seen[term] = struct{}{}
				docFreq[term]++
			}
		}
	}

	var terms []string
	for term, df := range docFreq {
		if df >= minDocFreq && df <= maxDocs {
			terms = append(terms, term)
		}
	}
	sort.Strings(terms)

	index := make(map[string]int, len(terms))
	labels := make([]string, len(terms))
	for i, term := range terms {
		index[term] = i
		labels[i] = term
		if v.stem {
			labels[i] = mostFrequent(surfaces[term])
		}
	}

	docs := make([][]int, n)
	for i, toks := range tokenized {
		for _, tok := range toks {
			if id, ok := index[tok]; ok {
				docs[i] = append(docs[i], id)
			}
		}
	}

	return corpus{terms: terms, labels: labels, docs: docs}
}

// mostFrequent returns the most common surface form, breaking ties alphabetically.
func mostFrequent(counts map[string]int) string {
	best, bestCount := "", -1
	for form, c := range counts {
		if c > bestCount || (c == bestCount && form < best) {
			best, bestCount = form, c
		}
	}
	return best
}
