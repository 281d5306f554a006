package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownGenre indicates a genre label outside the shared vocabulary.
	ErrUnknownGenre = errors.New("unknown genre")

	// ErrEmptyKeywords indicates no usable keyword tokens remained after parsing.
	ErrEmptyKeywords = errors.New("no keywords")

	// Topic extraction errors. These never escape a recommend call;
	// the extractor turns them into a TopicSummary status.

	// ErrInsufficientDocuments indicates too few documents to fit a topic model.
	ErrInsufficientDocuments = errors.New("not enough documents")

	// ErrSparseVocabulary indicates the vocabulary was empty after filtering.
	ErrSparseVocabulary = errors.New("vocabulary too sparse")

	// ErrMissingColumn indicates a partition or corpus lacks a required column.
	ErrMissingColumn = errors.New("missing required column")
)
