package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driven"
	"github.com/custodia-labs/folio/internal/logger"
)

// Ensure Codec implements the interface.
var _ driven.CorpusDecoder = (*Codec)(nil)

// Codec reads and writes review tables with a header row.
// Extra columns are ignored; column order is free.
type Codec struct{}

// NewCodec creates a review table codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Decode reads every row of r.
func (c *Codec) Decode(r io.Reader) ([]domain.Review, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("empty table: %w", domain.ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var reviews []domain.Review
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", line+1, err)
		}
		line++
		reviews = append(reviews, cols.review(record, line))
	}
	return reviews, nil
}

// Encode writes reviews with the standard header.
func (c *Codec) Encode(w io.Writer, reviews []domain.Review) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(domain.PartitionColumns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range reviews {
		record := []string{
			r.Title,
			r.Categories,
			r.Summary,
			strconv.FormatFloat(r.Score, 'f', -1, 64),
			r.Publisher,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing row %q: %w", r.Title, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

type columns struct {
	title, categories, summary, score, publisher int
}

func columnIndex(header []string) (columns, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := pos[name]; !dup {
			pos[name] = i
		}
	}

	var missing []string
	lookup := func(name string) int {
		i, ok := pos[name]
		if !ok {
			missing = append(missing, name)
			return -1
		}
		return i
	}

	cols := columns{
		title:      lookup("title"),
		categories: lookup("categories"),
		summary:    lookup("review_summary"),
		score:      lookup("review_score"),
		publisher:  lookup("publisher"),
	}
	if len(missing) > 0 {
		return columns{}, fmt.Errorf("%w: %s", domain.ErrMissingColumn, strings.Join(missing, ", "))
	}
	return cols, nil
}

func (c columns) review(record []string, line int) domain.Review {
	field := func(i int) string {
		if i < len(record) {
			return record[i]
		}
		return ""
	}

	score, err := parseScore(field(c.score))
	if err != nil {
		logger.Debug("csv row %d: unreadable review_score %q, using 0", line, field(c.score))
		score = 0
	}

	return domain.Review{
		Title:      field(c.title),
		Categories: field(c.categories),
		Summary:    field(c.summary),
		Score:      score,
		Publisher:  field(c.publisher),
	}
}

var errNonFiniteScore = errors.New("non-finite score")

// parseScore reads a star rating. Blank and "nan" mean missing and read as 0.
// Infinities are rejected.
func parseScore(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, errNonFiniteScore
	}
	return v, nil
}
