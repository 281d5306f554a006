// Package lda summarises a small batch of review texts as a handful of
// topics, each labelled by its strongest vocabulary terms.
//
// The model is latent Dirichlet allocation with symmetric priors fitted by
// collapsed Gibbs sampling from a fixed seed, so identical input always
// yields identical labels.
package lda

import (
	"context"
	"fmt"
	"sort"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driven"
	"github.com/custodia-labs/folio/internal/logger"
	"github.com/custodia-labs/folio/internal/textutil"
)

// Ensure Extractor implements the interface.
var _ driven.TopicExtractor = (*Extractor)(nil)

// Model limits.
const (
	MaxTopics     = 5
	WordsPerTopic = 10
	minDocuments  = 2
)

// Options configures an Extractor.
type Options struct {
	// Seed fixes the sampler's random source.
	Seed int64

	// Iterations is the number of Gibbs sweeps. Zero means the default.
	Iterations int

	// Stem groups inflected forms of a term.
	Stem bool
}

// Extractor fits a fresh model per call and holds no state between calls.
type Extractor struct {
	opts Options
}

// New creates a topic extractor.
func New(opts Options) *Extractor {
	if opts.Iterations <= 0 {
		opts.Iterations = domain.DefaultTopicIterations
	}
	return &Extractor{opts: opts}
}

// ExtractTopics fits min(MaxTopics, len(documents)) topics and labels each
// with up to WordsPerTopic terms, minus generic praise words.
func (e *Extractor) ExtractTopics(ctx context.Context, documents []string) (summary domain.TopicSummary) {
	if len(documents) < minDocuments {
		logger.Debug("topics: %d document(s), skipping fit", len(documents))
		return domain.InsufficientTopics()
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Warn("topics: fit panicked: %v", r)
			summary = domain.FailedTopics(fmt.Errorf("%v", r))
		}
	}()

	c := vectorizer{stem: e.opts.Stem}.build(documents)
	if len(c.terms) == 0 {
		logger.Debug("topics: vocabulary empty after filtering %d documents", len(documents))
		return domain.SparseTopics()
	}

	k := min(MaxTopics, len(documents))
	logger.Debug("topics: fitting k=%d over %d terms, %d sweeps", k, len(c.terms), e.opts.Iterations)

	m, err := fit(ctx, c, k, e.opts.Seed, e.opts.Iterations)
	if err != nil {
		logger.Warn("topics: fit stopped: %v", err)
		return domain.FailedTopics(err)
	}

	labels := make([]domain.TopicLabel, k)
	for t := 0; t < k; t++ {
		labels[t] = domain.TopicLabel{Index: t + 1, Words: topWords(m, c, t)}
	}
	return domain.NewTopicSummary(labels)
}

// topWords returns the WordsPerTopic heaviest terms of topic t with generic
// words removed afterwards, so a topic may show fewer than WordsPerTopic.
func topWords(m *model, c corpus, t int) []string {
	ids := make([]int, m.vocab)
	for i := range ids {
		ids[i] = i
	}
	sort.SliceStable(ids, func(a, b int) bool {
		return m.termWeight(t, ids[a]) > m.termWeight(t, ids[b])
	})
	if len(ids) > WordsPerTopic {
		ids = ids[:WordsPerTopic]
	}

	words := make([]string, 0, len(ids))
	for _, id := range ids {
		label := c.labels[id]
		if textutil.IsGenericWord(label) {
			continue
		}
		words = append(words, label)
	}
	return words
}
