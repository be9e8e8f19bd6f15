package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/ledongthuc/pdf"

	"github.com/custodia-labs/clauser-cli/internal/core/ports/driven"
)

// baseRenderWidth is the line width of a page rendered at zoom 1.0.
const baseRenderWidth = 80

// Decoder implements driven.DocumentDecoder.
type Decoder struct{}

var _ driven.DocumentDecoder = (*Decoder)(nil)

// NewDecoder creates a document decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Open decodes the document bytes and returns a rendering handle.
func (d *Decoder) Open(_ context.Context, data []byte) (driven.DecodedDocument, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}

	return &decodedDocument{reader: reader}, nil
}

// decodedDocument is an open handle over a parsed PDF.
type decodedDocument struct {
	mu     sync.Mutex
	reader *pdf.Reader
	closed bool
}

var _ driven.DecodedDocument = (*decodedDocument)(nil)

// PageCount returns the total number of pages.
func (d *decodedDocument) PageCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return 0
	}
	return d.reader.NumPage()
}

// RenderPage draws one page as wrapped text lines. The wrap width
// scales with the zoom factor. Cancellation is checked between lines
// and surfaces as ctx.Err(), never as a render error.
func (d *decodedDocument) RenderPage(ctx context.Context, page int, zoom float64) (*driven.PageRender, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil, fmt.Errorf("document is closed")
	}
	if page < 1 || page > d.reader.NumPage() {
		return nil, fmt.Errorf("page %d out of range [1, %d]", page, d.reader.NumPage())
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p := d.reader.Page(page)
	if p.V.IsNull() {
		return &driven.PageRender{
			Page:  page,
			Zoom:  zoom,
			Lines: []string{fmt.Sprintf("[Page %d: rendering failed]", page)},
		}, nil
	}

	text, err := p.GetPlainText(nil)
	if err != nil {
		return &driven.PageRender{
			Page:  page,
			Zoom:  zoom,
			Lines: []string{fmt.Sprintf("[Page %d: rendering failed]", page)},
		}, nil
	}

	width := int(float64(baseRenderWidth) * zoom)
	if width < 20 {
		width = 20
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lines = append(lines, wrapLine(strings.TrimSpace(paragraph), width)...)
	}

	if len(lines) == 0 {
		lines = []string{""}
	}

	return &driven.PageRender{Page: page, Zoom: zoom, Lines: lines}, nil
}

// Close releases the handle. Safe to call more than once.
func (d *decodedDocument) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	d.reader = nil
	return nil
}

// wrapLine breaks a line into chunks of at most width characters,
// splitting on word boundaries where possible.
func wrapLine(line string, width int) []string {
	if line == "" {
		return []string{""}
	}

	var out []string
	var current strings.Builder
	for _, word := range strings.Fields(line) {
		if current.Len() > 0 && current.Len()+1+len(word) > width {
			out = append(out, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		// A single word longer than the width is hard-split
		for len(word) > width {
			out = append(out, word[:width])
			word = word[width:]
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		out = append(out, current.String())
	}
	return out
}
