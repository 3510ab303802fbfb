package parser

import "errors"

var (
	ErrEmptyInput     = errors.New("log content is empty")
	ErrNoEntriesFound = errors.New("no valid log entry found, check the file format")
	// ErrFallbackParse should never surface; it marks a line that could neither be
	// decomposed as a header nor preserved as a fallback entry.
	ErrFallbackParse = errors.New("failed to build fallback log entry")
)
