// Package list provides the scrollable standards list component.
package list

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/clauser-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/clauser-cli/internal/core/domain"
)

// StandardList renders the stored standards with a movable selection.
type StandardList struct {
	styles    *styles.Styles
	standards []domain.Standard
	selected  int
	width     int
	height    int
}

// NewStandardList creates a new standards list component.
func NewStandardList(s *styles.Styles) *StandardList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &StandardList{
		styles: s,
		width:  80,
		height: 20,
	}
}

// SetStandards replaces the listed standards and clamps the selection.
func (l *StandardList) SetStandards(standards []domain.Standard) {
	l.standards = standards
	if l.selected >= len(standards) {
		l.selected = len(standards) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
}

// Standards returns the listed standards.
func (l *StandardList) Standards() []domain.Standard {
	return l.standards
}

// Selected returns the selected index.
func (l *StandardList) Selected() int {
	return l.selected
}

// SelectedStandard returns the selected standard, nil when empty.
func (l *StandardList) SelectedStandard() *domain.Standard {
	if len(l.standards) == 0 {
		return nil
	}
	return &l.standards[l.selected]
}

// MoveUp moves the selection up one row.
func (l *StandardList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves the selection down one row.
func (l *StandardList) MoveDown() {
	if l.selected < len(l.standards)-1 {
		l.selected++
	}
}

// View renders the list.
func (l *StandardList) View() string {
	if len(l.standards) == 0 {
		return l.styles.Muted.Render("No standards uploaded yet. Drop PDFs in your inbox or use 'clauser add'.")
	}

	lines := make([]string, 0, len(l.standards))
	for i, std := range l.standards {
		row := fmt.Sprintf("%-40s %10s  %s",
			truncate(std.Name, 40),
			formatSize(std.Size),
			std.UploadedAt.Format("2006-01-02"),
		)

		if i == l.selected {
			lines = append(lines, l.styles.Selected.Render("> "+row))
		} else {
			lines = append(lines, l.styles.Normal.Render("  "+row))
		}
	}

	return strings.Join(lines, "\n")
}

// SetDimensions sets the list dimensions.
func (l *StandardList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// truncate shortens s to max runes with an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// formatSize renders a byte count human-readably.
func formatSize(size int64) string {
	switch {
	case size >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(size)/(1<<20))
	case size >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(size)/(1<<10))
	default:
		return fmt.Sprintf("%d B", size)
	}
}
