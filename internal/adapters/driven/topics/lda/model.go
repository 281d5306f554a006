package lda

import (
	"context"
	"math/rand"
)

// model is a latent Dirichlet allocation fitted by collapsed Gibbs sampling.
type model struct {
	k     int
	vocab int
	alpha float64
	beta  float64

	// topicTerm[k][w] counts assignments of term w to topic k.
	topicTerm [][]int
	// topicTotal[k] counts all assignments to topic k.
	topicTotal []int
	// docTopic[d][k] counts assignments in document d to topic k.
	docTopic [][]int
	// assign[d][i] is the topic of the i-th token of document d.
	assign [][]int
}

// fit runs the sampler for the given number of sweeps. The result only
// depends on the corpus, k, seed and iterations.
func fit(ctx context.Context, c corpus, k int, seed int64, iterations int) (*model, error) {
	m := &model{
		k:          k,
		vocab:      len(c.terms),
		alpha:      1 / float64(k),
		beta:       1 / float64(k),
		topicTerm:  make([][]int, k),
		topicTotal: make([]int, k),
		docTopic:   make([][]int, len(c.docs)),
		assign:     make([][]int, len(c.docs)),
	}
	for t := range m.topicTerm {
		m.topicTerm[t] = make([]int, m.vocab)
	}

	rng := rand.New(rand.NewSource(seed))
	for d, doc := range c.docs {
		m.docTopic[d] = make([]int, k)
		m.assign[d] = make([]int, len(doc))
		for i, w := range doc {
			t := rng.Intn(k)
			m.assign[d][i] = t
			m.topicTerm[t][w]++
			m.topicTotal[t]++
			m.docTopic[d][t]++
		}
	}

	weights := make([]float64, k)
	betaSum := m.beta * float64(m.vocab)
	for iter := 0; iter < iterations; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for d, doc := range c.docs {
			for i, w := range doc {
				old := m.assign[d][i]
				m.topicTerm[old][w]--
				m.topicTotal[old]--
				m.docTopic[d][old]--

				var total float64
				for t := 0; t < k; t++ {
					p := (float64(m.topicTerm[t][w]) + m.beta) /
						(float64(m.topicTotal[t]) + betaSum) *
						(float64(m.docTopic[d][t]) + m.alpha)
					total += p
					weights[t] = total
				}

				u := rng.Float64() * total
				next := k - 1
				for t := 0; t < k; t++ {
					if u < weights[t] {
						next = t
						break
					}
				}

				m.assign[d][i] = next
				m.topicTerm[next][w]++
				m.topicTotal[next]++
				m.docTopic[d][next]++
			}
		}
	}
	return m, nil
}

// termWeight is the smoothed weight of term w in topic t.
func (m *model) termWeight(t, w int) float64 {
	return float64(m.topicTerm[t][w]) + m.beta
}
