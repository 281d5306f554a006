package domain

// PartitionColumns are the required columns of a partition and of the raw corpus.
var PartitionColumns = []string{"title", "categories", "review_summary", "review_score", "publisher"}

// PartitionReport summarises one run of the partitioning step.
type PartitionReport struct {
	// RowsRead is the number of corpus rows read.
	RowsRead int

	// Written maps each written genre to its row count.
	Written map[string]int

	// Skipped lists vocabulary genres with no rows, in vocabulary order.
	Skipped []string

	// Unrecognised is the number of rows whose label matched no genre.
	Unrecognised int
}
