// Package pdf provides PDF text extraction and page rendering backed by
// the pure-Go ledongthuc/pdf library. No CGO, no external binaries.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/custodia-labs/clauser-cli/internal/core/ports/driven"
)

// NoPagesMarker is stored as the extracted text of a zero-page document.
// Such documents are kept in the library rather than rejected.
const NoPagesMarker = "[Error: This PDF contains no readable pages.]"

// DefaultPageCap bounds how many pages are extracted per document.
const DefaultPageCap = 50

// Extractor implements driven.TextExtractor.
type Extractor struct {
	pageCap int
}

var _ driven.TextExtractor = (*Extractor)(nil)

// NewExtractor creates an extractor with the default page cap.
func NewExtractor() *Extractor {
	return &Extractor{pageCap: DefaultPageCap}
}

// PageCap returns the maximum number of pages extracted per document.
func (e *Extractor) PageCap() int {
	return e.pageCap
}

// Extract returns page-tagged text for the document bytes.
//
// Each page is prefixed with "[Page n]". Extraction stops at the page
// cap with a trailing truncation note. A page that cannot be decoded
// gets a failure marker instead of failing the whole document. Only
// bytes that cannot be opened as a PDF at all produce an error.
func (e *Extractor) Extract(ctx context.Context, data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}

	pageCount := reader.NumPage()
	if pageCount == 0 {
		return NoPagesMarker, nil
	}

	limit := pageCount
	if limit > e.pageCap {
		limit = e.pageCap
	}

	var out strings.Builder
	for i := 1; i <= limit; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		if i > 1 {
			out.WriteString("\n\n")
		}
		out.WriteString(fmt.Sprintf("[Page %d]\n", i))

		page := reader.Page(i)
		if page.V.IsNull() {
			out.WriteString(fmt.Sprintf("[Page %d: text extraction failed]", i))
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			out.WriteString(fmt.Sprintf("[Page %d: text extraction failed]", i))
			continue
		}
		out.WriteString(strings.TrimSpace(text))
	}

	if pageCount > e.pageCap {
		out.WriteString(fmt.Sprintf("\n\n[Truncated: first %d of %d pages extracted]", e.pageCap, pageCount))
	}

	return out.String(), nil
}
