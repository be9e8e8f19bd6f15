package domain

// Viewer limits. Zoom is clamped to [ZoomMin, ZoomMax] in ZoomStep
// increments; the window never shrinks below MinViewerWidth/Height.
const (
	ZoomMin     = 0.5
	ZoomMax     = 4.0
	ZoomStep    = 0.25
	ZoomDefault = 1.0

	MinViewerWidth  = 400
	MinViewerHeight = 300

	// First-open size: 90% of the viewport, capped.
	MaxOpenWidth  = 1000
	MaxOpenHeight = 850
)

// ViewerState is the lifecycle state of a viewer session.
type ViewerState int

const (
	// ViewerLoading means the document is being decoded.
	ViewerLoading ViewerState = iota

	// ViewerRendering means a page render is outstanding.
	ViewerRendering

	// ViewerReady means the surface shows the current page.
	ViewerReady

	// ViewerError is terminal until the overlay is closed and reopened.
	ViewerError

	// ViewerClosed is the terminal state after close.
	ViewerClosed
)

// String returns the state name.
func (s ViewerState) String() string {
	switch s {
	case ViewerLoading:
		return "loading"
	case ViewerRendering:
		return "rendering"
	case ViewerReady:
		return "ready"
	case ViewerError:
		return "error"
	case ViewerClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// ViewerSession is the state machine behind the viewer overlay.
//
// It owns the current page, zoom factor and window geometry, and gates
// which transitions are legal in each state. It is pure state: decoding,
// rendering and cancellation are driven from outside, which reports
// completion via Loaded, RenderDone and Fail.
//
// Page and zoom changes are accepted while Rendering as well as Ready;
// a change during an outstanding render supersedes it (the caller must
// cancel the old render before issuing the new one). Geometry changes
// are accepted in any non-terminal state and never trigger a re-render.
type ViewerSession struct {
	state     ViewerState
	page      int
	pageCount int
	zoom      float64

	x, y          int
	width, height int

	dragOriginX, dragOriginY int
	dragging                 bool
	resizeOriginW            int
	resizeOriginH            int
	resizing                 bool

	err error
}

// NewViewerSession opens a session targeting the given page.
// The window defaults to 90% of the viewport capped at MaxOpenWidth x
// MaxOpenHeight, floored at the minimum size, and centred. The target
// page is clamped once the page count is known.
func NewViewerSession(viewportWidth, viewportHeight, targetPage int) *ViewerSession {
	w := viewportWidth * 9 / 10
	if w > MaxOpenWidth {
		w = MaxOpenWidth
	}
	if w < MinViewerWidth {
		w = MinViewerWidth
	}
	h := viewportHeight * 9 / 10
	if h > MaxOpenHeight {
		h = MaxOpenHeight
	}
	if h < MinViewerHeight {
		h = MinViewerHeight
	}

	if targetPage < 1 {
		targetPage = 1
	}

	return &ViewerSession{
		state:  ViewerLoading,
		page:   targetPage,
		zoom:   ZoomDefault,
		x:      (viewportWidth - w) / 2,
		y:      (viewportHeight - h) / 2,
		width:  w,
		height: h,
	}
}

// State returns the current lifecycle state.
func (s *ViewerSession) State() ViewerState { return s.state }

// Page returns the current page, clamped to [1, PageCount].
func (s *ViewerSession) Page() int { return s.page }

// PageCount returns the total page count, set once by Loaded.
func (s *ViewerSession) PageCount() int { return s.pageCount }

// Zoom returns the current zoom factor.
func (s *ViewerSession) Zoom() float64 { return s.zoom }

// Err returns the failure reason after entering ViewerError.
func (s *ViewerSession) Err() error { return s.err }

// Bounds returns the window position and size.
func (s *ViewerSession) Bounds() (x, y, width, height int) {
	return s.x, s.y, s.width, s.height
}

// Loaded reports a successful decode with the document's page count.
// The requested page is clamped into [1, pageCount] and the session
// moves to Rendering. Calling Loaded outside Loading is an error.
func (s *ViewerSession) Loaded(pageCount int) error {
	if s.state != ViewerLoading {
		return ErrInvalidInput
	}
	if pageCount < 1 {
		s.fail(ErrDecodeFailed)
		return ErrDecodeFailed
	}
	s.pageCount = pageCount
	if s.page > pageCount {
		s.page = pageCount
	}
	if s.page < 1 {
		s.page = 1
	}
	s.state = ViewerRendering
	return nil
}

// RenderDone reports the outstanding render completed.
func (s *ViewerSession) RenderDone() {
	if s.state == ViewerRendering {
		s.state = ViewerReady
	}
}

// Fail moves the session to the terminal Error state with a reason.
// Cancelled renders must not be reported here.
func (s *ViewerSession) Fail(err error) {
	s.fail(err)
}

func (s *ViewerSession) fail(err error) {
	if s.state == ViewerClosed {
		return
	}
	s.state = ViewerError
	s.err = err
}

// Close moves the session to the terminal Closed state from anywhere.
// The caller is responsible for cancelling any outstanding render and
// releasing the decoded document on every exit path.
func (s *ViewerSession) Close() {
	s.state = ViewerClosed
}

// navigable reports whether page/zoom changes are currently legal.
func (s *ViewerSession) navigable() bool {
	return s.state == ViewerReady || s.state == ViewerRendering
}

// GoToPage requests a specific page, clamped to [1, PageCount].
// Returns true when the page changed and a (re-)render is needed.
func (s *ViewerSession) GoToPage(page int) bool {
	if !s.navigable() {
		return false
	}
	if page < 1 {
		page = 1
	}
	if page > s.pageCount {
		page = s.pageCount
	}
	if page == s.page {
		return false
	}
	s.page = page
	s.state = ViewerRendering
	return true
}

// NextPage advances one page. No-op at the last page.
func (s *ViewerSession) NextPage() bool {
	return s.GoToPage(s.page + 1)
}

// PrevPage goes back one page. No-op at page 1.
func (s *ViewerSession) PrevPage() bool {
	return s.GoToPage(s.page - 1)
}

// AtFirstPage reports whether previous-page is a no-op.
func (s *ViewerSession) AtFirstPage() bool { return s.page <= 1 }

// AtLastPage reports whether next-page is a no-op.
func (s *ViewerSession) AtLastPage() bool { return s.page >= s.pageCount }

// setZoom applies a clamped zoom factor.
// Returns true when the factor changed and a re-render is needed.
func (s *ViewerSession) setZoom(zoom float64) bool {
	if !s.navigable() {
		return false
	}
	if zoom < ZoomMin {
		zoom = ZoomMin
	}
	if zoom > ZoomMax {
		zoom = ZoomMax
	}
	if zoom == s.zoom {
		return false
	}
	s.zoom = zoom
	s.state = ViewerRendering
	return true
}

// ZoomIn increases zoom by one step, clamped at ZoomMax.
func (s *ViewerSession) ZoomIn() bool { return s.setZoom(s.zoom + ZoomStep) }

// ZoomOut decreases zoom by one step, clamped at ZoomMin.
func (s *ViewerSession) ZoomOut() bool { return s.setZoom(s.zoom - ZoomStep) }

// ZoomReset restores the default zoom factor.
func (s *ViewerSession) ZoomReset() bool { return s.setZoom(ZoomDefault) }

// geometric reports whether drag/resize are currently legal.
// Geometry may change while a render is outstanding.
func (s *ViewerSession) geometric() bool {
	return s.state != ViewerError && s.state != ViewerClosed
}

// StartDrag records the position at drag start.
func (s *ViewerSession) StartDrag() {
	if !s.geometric() {
		return
	}
	s.dragOriginX, s.dragOriginY = s.x, s.y
	s.dragging = true
}

// Drag repositions the window by the pointer delta from drag start.
// Position is unconstrained.
func (s *ViewerSession) Drag(dx, dy int) {
	if !s.dragging || !s.geometric() {
		return
	}
	s.x = s.dragOriginX + dx
	s.y = s.dragOriginY + dy
}

// EndDrag finishes a drag gesture.
func (s *ViewerSession) EndDrag() { s.dragging = false }

// StartResize records the size at resize start.
func (s *ViewerSession) StartResize() {
	if !s.geometric() {
		return
	}
	s.resizeOriginW, s.resizeOriginH = s.width, s.height
	s.resizing = true
}

// Resize grows or shrinks the window by the pointer delta from resize
// start, independently floor-clamped on each axis.
func (s *ViewerSession) Resize(dw, dh int) {
	if !s.resizing || !s.geometric() {
		return
	}
	w := s.resizeOriginW + dw
	if w < MinViewerWidth {
		w = MinViewerWidth
	}
	h := s.resizeOriginH + dh
	if h < MinViewerHeight {
		h = MinViewerHeight
	}
	s.width, s.height = w, h
}

// EndResize finishes a resize gesture.
func (s *ViewerSession) EndResize() { s.resizing = false }
