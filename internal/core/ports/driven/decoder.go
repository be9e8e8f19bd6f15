package driven

import "context"

// DocumentDecoder opens raw document bytes for page-at-a-time rendering.
// It is the capability behind the viewer overlay.
type DocumentDecoder interface {
	// Open decodes the document and returns a handle for rendering.
	// The handle must be closed on every viewer exit path.
	Open(ctx context.Context, data []byte) (DecodedDocument, error)
}

// DecodedDocument is an open document handle.
type DecodedDocument interface {
	// PageCount returns the total number of pages.
	PageCount() int

	// RenderPage draws one page at the given zoom factor.
	// Rendering is cooperative: implementations check ctx at defined
	// points and return ctx.Err() early without touching shared state.
	// A cancelled render is not a failure and must surface as
	// context.Canceled, never as a render error.
	RenderPage(ctx context.Context, page int, zoom float64) (*PageRender, error)

	// Close releases decode resources. Safe to call more than once.
	Close() error
}

// PageRender is one rendered page.
type PageRender struct {
	// Page is the 1-based page number rendered.
	Page int

	// Zoom is the factor the page was rendered at.
	Zoom float64

	// Lines is the rendered surface content, top to bottom.
	Lines []string
}
