package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readySession returns a session decoded to pageCount pages with
// the first render completed.
func readySession(t *testing.T, pageCount, targetPage int) *ViewerSession {
	t.Helper()
	s := NewViewerSession(1920, 1080, targetPage)
	require.NoError(t, s.Loaded(pageCount))
	s.RenderDone()
	require.Equal(t, ViewerReady, s.State())
	return s
}

// TestNewViewerSession_OpeningGeometry tests the first-open defaults
func TestNewViewerSession_OpeningGeometry(t *testing.T) {
	s := NewViewerSession(1920, 1080, 1)

	x, y, w, h := s.Bounds()
	assert.Equal(t, 1000, w, "90%% of 1920 capped at 1000")
	assert.Equal(t, 850, h, "90%% of 1080 capped at 850")
	assert.Equal(t, (1920-1000)/2, x)
	assert.Equal(t, (1080-850)/2, y)
	assert.Equal(t, ViewerLoading, s.State())
	assert.Equal(t, ZoomDefault, s.Zoom())
}

// TestNewViewerSession_SmallViewport applies the size floor
func TestNewViewerSession_SmallViewport(t *testing.T) {
	s := NewViewerSession(300, 200, 1)

	_, _, w, h := s.Bounds()
	assert.Equal(t, MinViewerWidth, w)
	assert.Equal(t, MinViewerHeight, h)
}

// TestViewerSession_Loaded_ClampsPage clamps the requested page
func TestViewerSession_Loaded_ClampsPage(t *testing.T) {
	s := NewViewerSession(1920, 1080, 99)
	require.NoError(t, s.Loaded(5))

	assert.Equal(t, 5, s.Page())
	assert.Equal(t, ViewerRendering, s.State())
}

// TestViewerSession_Loaded_ZeroPages fails the decode
func TestViewerSession_Loaded_ZeroPages(t *testing.T) {
	s := NewViewerSession(1920, 1080, 1)
	err := s.Loaded(0)

	assert.ErrorIs(t, err, ErrDecodeFailed)
	assert.Equal(t, ViewerError, s.State())
}

// TestViewerSession_PageNavigation tests clamping and bound no-ops
func TestViewerSession_PageNavigation(t *testing.T) {
	s := readySession(t, 3, 1)

	assert.True(t, s.AtFirstPage())
	assert.False(t, s.PrevPage(), "previous at page 1 is a no-op")
	assert.Equal(t, 1, s.Page())

	assert.True(t, s.NextPage())
	assert.Equal(t, 2, s.Page())
	assert.Equal(t, ViewerRendering, s.State())

	s.RenderDone()
	assert.True(t, s.NextPage())
	s.RenderDone()
	assert.True(t, s.AtLastPage())
	assert.False(t, s.NextPage(), "next at the last page is a no-op")
	assert.Equal(t, 3, s.Page())
}

// TestViewerSession_ZoomClamping tests the [0.5, 4.0] bounds
func TestViewerSession_ZoomClamping(t *testing.T) {
	s := readySession(t, 1, 1)

	for i := 0; i < 30; i++ {
		s.ZoomOut()
		s.RenderDone()
	}
	assert.Equal(t, ZoomMin, s.Zoom(), "repeated zoom-out clamps at 0.5")

	for i := 0; i < 30; i++ {
		s.ZoomIn()
		s.RenderDone()
	}
	assert.Equal(t, ZoomMax, s.Zoom(), "repeated zoom-in clamps at 4.0")

	assert.True(t, s.ZoomReset())
	assert.Equal(t, ZoomDefault, s.Zoom())
}

// TestViewerSession_ZoomNoopAtBound does not request a render at the bound
func TestViewerSession_ZoomNoopAtBound(t *testing.T) {
	s := readySession(t, 1, 1)

	s.ZoomOut() // 0.75
	s.RenderDone()
	s.ZoomOut() // 0.5
	s.RenderDone()
	assert.False(t, s.ZoomOut(), "already at minimum")
	assert.Equal(t, ViewerReady, s.State())
}

// TestViewerSession_NavigationDuringRender supersedes the outstanding render
func TestViewerSession_NavigationDuringRender(t *testing.T) {
	s := readySession(t, 10, 1)

	assert.True(t, s.NextPage())
	assert.Equal(t, ViewerRendering, s.State())

	// A further request while rendering is legal and keeps rendering.
	assert.True(t, s.NextPage())
	assert.Equal(t, 3, s.Page())
	assert.Equal(t, ViewerRendering, s.State())
}

// TestViewerSession_Drag moves by the delta from the drag-start origin
func TestViewerSession_Drag(t *testing.T) {
	s := readySession(t, 1, 1)
	x0, y0, _, _ := s.Bounds()

	s.StartDrag()
	s.Drag(30, -40)
	s.Drag(100, 25) // deltas are from the origin, not cumulative

	x, y, _, _ := s.Bounds()
	assert.Equal(t, x0+100, x)
	assert.Equal(t, y0+25, y)
	assert.Equal(t, ViewerReady, s.State(), "drag does not trigger a re-render")

	s.EndDrag()
	s.Drag(500, 500)
	x, y, _, _ = s.Bounds()
	assert.Equal(t, x0+100, x, "drag after EndDrag is ignored")
	assert.Equal(t, y0+25, y)
}

// TestViewerSession_Resize floor-clamps each axis independently
func TestViewerSession_Resize(t *testing.T) {
	s := readySession(t, 1, 1)
	_, _, w0, h0 := s.Bounds()

	s.StartResize()
	s.Resize(-10000, 50)
	_, _, w, h := s.Bounds()
	assert.Equal(t, MinViewerWidth, w, "width floors at 400 regardless of delta")
	assert.Equal(t, h0+50, h)

	s.Resize(60, -10000)
	_, _, w, h = s.Bounds()
	assert.Equal(t, w0+60, w)
	assert.Equal(t, MinViewerHeight, h, "height floors at 300 regardless of delta")
	assert.Equal(t, ViewerReady, s.State(), "resize does not trigger a re-render")
}

// TestViewerSession_ErrorIsTerminal only exits via close
func TestViewerSession_ErrorIsTerminal(t *testing.T) {
	s := readySession(t, 3, 1)
	s.Fail(errors.New("draw failed"))

	assert.Equal(t, ViewerError, s.State())
	assert.EqualError(t, s.Err(), "draw failed")

	assert.False(t, s.NextPage())
	assert.False(t, s.ZoomIn())
	s.StartDrag()
	s.Drag(10, 10)
	x, _, _, _ := s.Bounds()
	assert.NotEqual(t, 10, x, "geometry frozen in error state")

	s.Close()
	assert.Equal(t, ViewerClosed, s.State())
}

// TestViewerSession_CloseFromAnyState is always legal
func TestViewerSession_CloseFromAnyState(t *testing.T) {
	s := NewViewerSession(800, 600, 1)
	s.Close()
	assert.Equal(t, ViewerClosed, s.State())

	assert.False(t, s.NextPage())
	s.Fail(errors.New("late failure"))
	assert.Equal(t, ViewerClosed, s.State(), "closed is terminal")
}
