// Package file persists folio settings to a TOML file.
//
// Keys are addressed in dot notation ("matching.threshold") and written
// back as nested tables, so the file stays readable by hand:
//
//	[matching]
//	threshold = 85
package file
