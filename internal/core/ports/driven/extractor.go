package driven

import "context"

// TextExtractor turns raw document bytes into page-tagged text.
//
// Implementations tag each page ("[Page n]"), truncate beyond a fixed
// page cap with a trailing note, return a literal error marker string
// for zero-page inputs, and substitute a per-page failure marker
// instead of failing the whole document on a partial page error.
type TextExtractor interface {
	// Extract returns the page-tagged text for the document bytes.
	// An error is returned only when the bytes cannot be decoded at all.
	Extract(ctx context.Context, data []byte) (string, error)

	// PageCap returns the maximum number of pages extracted.
	PageCap() int
}
