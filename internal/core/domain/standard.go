package domain

import (
	"regexp"
	"strings"
	"time"
)

// Standard represents a single uploaded reference document.
// It is the atomic unit of context for question answering.
type Standard struct {
	// ID is the unique identifier, generated at ingestion. Immutable.
	ID string

	// Name is the display name derived from the filename.
	// Upload-duplicate suffixes like " (1)" are stripped.
	Name string

	// Text is the page-tagged extracted text, truncated at the page cap.
	Text string

	// Size is the byte size of the original file.
	// Invariant: Size == int64(len(Data)).
	Size int64

	// Data holds the raw original bytes. Used only for rendering,
	// never mutated after ingestion.
	Data []byte

	// UploadedAt is when the standard was ingested.
	UploadedAt time.Time
}

// Validate checks the record invariants.
func (s *Standard) Validate() error {
	if s.ID == "" || s.Name == "" {
		return ErrInvalidInput
	}
	if s.Size != int64(len(s.Data)) {
		return ErrInvalidInput
	}
	return nil
}

// dupSuffix matches browser/OS duplicate-download suffixes in a file stem,
// e.g. "spec (1).pdf" or "spec (12).pdf".
var dupSuffix = regexp.MustCompile(` \(\d+\)$`)

// DisplayName derives a standard's display name from its filename.
// A trailing " (n)" duplicate suffix before the extension is stripped;
// the extension itself is kept.
func DisplayName(filename string) string {
	ext := ""
	stem := filename
	if i := strings.LastIndex(filename, "."); i > 0 {
		stem, ext = filename[:i], filename[i:]
	}
	return dupSuffix.ReplaceAllString(stem, "") + ext
}
