package pdfsplit

import "errors"

// Sentinel errors for library operations.
var (
	ErrOpenSource  = errors.New("failed to open source PDF")
	ErrNoPages     = errors.New("source PDF has no pages")
	ErrEmptyPage   = errors.New("source page has zero area")
	ErrWriteOutput = errors.New("failed to write output PDF")

	// Page settings validation errors.
	ErrInvalidMargin = errors.New("invalid margin")
)
