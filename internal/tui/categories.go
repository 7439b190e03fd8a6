package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// categoryBar is the row of category tabs. Exactly one tab is selected.
type categoryBar struct {
	names    []string
	selected int
}

func newCategoryBar(names []string, current string) categoryBar {
	b := categoryBar{names: names}
	for i, n := range names {
		if n == current {
			b.selected = i
			break
		}
	}
	return b
}

func (b *categoryBar) current() string {
	if len(b.names) == 0 {
		return ""
	}
	return b.names[b.selected]
}

// next moves the selection right, wrapping around, and returns the new name.
func (b *categoryBar) next() string {
	if len(b.names) == 0 {
		return ""
	}
	b.selected = (b.selected + 1) % len(b.names)
	return b.current()
}

func (b *categoryBar) prev() string {
	if len(b.names) == 0 {
		return ""
	}
	b.selected = (b.selected - 1 + len(b.names)) % len(b.names)
	return b.current()
}

// selectIndex selects the i-th tab; it reports false when i is out of range.
func (b *categoryBar) selectIndex(i int) bool {
	if i < 0 || i >= len(b.names) {
		return false
	}
	b.selected = i
	return true
}

func (b *categoryBar) render(width int) string {
	sep := tabSeparatorStyle.Render(" · ")

	// Build row with · separators, stopping when we'd exceed width
	var row string
	for i, name := range b.names {
		style := tabInactiveStyle
		if i == b.selected {
			style = tabActiveStyle
		}
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += style.Render(name)
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}

	barStyle := lipgloss.NewStyle().
		Background(colorSurface).
		Width(width).
		PaddingLeft(1)
	return barStyle.Render(row)
}
