package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_Distinct(t *testing.T) {
	all := []error{
		ErrNotFound,
		ErrInvalidInput,
		ErrUnknownGenre,
		ErrEmptyKeywords,
		ErrInsufficientDocuments,
		ErrSparseVocabulary,
		ErrMissingColumn,
	}

	for i, a := range all {
		assert.NotEmpty(t, a.Error())
		for j, b := range all {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
			}
		}
	}
}

func TestErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading partition %q: %w", "fiction", ErrNotFound)

	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.Equal(t, `loading partition "fiction": not found`, wrapped.Error())
}
