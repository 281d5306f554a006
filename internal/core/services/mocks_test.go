package services

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/custodia-labs/folio/internal/core/domain"
)

// stubScorer returns fixed sentiments keyed by summary.
type stubScorer struct {
	sentiments map[string]float64
}

func (s *stubScorer) Score(text string) float64 {
	return s.sentiments[text]
}

func (s *stubScorer) Annotate(matches []domain.Match) []domain.ScoredReview {
	out := make([]domain.ScoredReview, len(matches))
	for i, m := range matches {
		out[i] = domain.ScoredReview{Match: m, Sentiment: s.Score(m.Summary)}
	}
	return out
}

// recordingTopics records the documents it was asked to summarise.
type recordingTopics struct {
	mu    sync.Mutex
	calls [][]string
}

func (r *recordingTopics) ExtractTopics(_ context.Context, documents []string) domain.TopicSummary {
	r.mu.Lock()
	defer r.mu.Unlock()
	docs := make([]string, len(documents))
	copy(docs, documents)
	r.calls = append(r.calls, docs)
	return domain.NewTopicSummary([]domain.TopicLabel{{Index: 1, Words: []string{"stub"}}})
}

// failingStore fails every read with err.
type failingStore struct {
	err error
}

func (f *failingStore) Load(context.Context, string) ([]domain.Review, error) {
	return nil, f.err
}

func (f *failingStore) Stat(_ context.Context, genre string) (domain.GenreInfo, error) {
	return domain.GenreInfo{Name: genre}, f.err
}

// stubDecoder returns fixed rows or an error.
type stubDecoder struct {
	rows []domain.Review
	err  error
}

func (d *stubDecoder) Decode(io.Reader) ([]domain.Review, error) {
	return d.rows, d.err
}

// identityNormaliser returns labels unchanged.
type identityNormaliser struct{}

func (identityNormaliser) Normalise(label string) string { return label }

// flakyWriter fails writes for one genre.
type flakyWriter struct {
	mu      sync.Mutex
	failFor string
	written map[string][]domain.Review
}

var errDiskFull = errors.New("disk full")

func (w *flakyWriter) Write(_ context.Context, genre string, reviews []domain.Review) error {
	if genre == w.failFor {
		return errDiskFull
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.written == nil {
		w.written = make(map[string][]domain.Review)
	}
	w.written[genre] = reviews
	return nil
}
