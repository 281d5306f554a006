// Package normalisers holds the text normalisers that turn raw corpus
// fields into the canonical forms the core compares against.
//
// The label normaliser maps free-form category labels onto the genre
// vocabulary and is used by the partitioning step.
package normalisers
