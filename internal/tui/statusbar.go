package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/headlines/internal/feed"
)

// renderPager draws the previous/next controls around the page number.
func renderPager(s feed.State, width int) string {
	prevOK, nextOK := pagerState(s)

	prev := pagerDisabledStyle.Render("← previous (p)")
	if prevOK {
		prev = pagerEnabledStyle.Render("← previous (p)")
	}
	next := pagerDisabledStyle.Render("(n) next →")
	if nextOK {
		next = pagerEnabledStyle.Render("(n) next →")
	}
	mid := cardMetaStyle.Render(fmt.Sprintf("page %d", s.Query.Page))

	gap := width - lipgloss.Width(prev) - lipgloss.Width(next) - lipgloss.Width(mid) - 2
	if gap < 2 {
		gap = 2
	}
	left := gap / 2
	return " " + prev + fmt.Sprintf("%*s", left, "") + mid + fmt.Sprintf("%*s", gap-left, "") + next
}

func renderStatusBar(s feed.State, width int, searching bool) string {
	left := fmt.Sprintf(" %s", s.Query.Category)
	switch {
	case s.Loading:
		left += " · loading"
	case s.Err == "":
		left += fmt.Sprintf(" · %d articles", len(s.Articles))
	}
	if s.Query.Search != "" {
		left += fmt.Sprintf(" · %q", s.Query.Search)
	}

	right := " tab category  / search  n/p page  ? help  q quit "
	if searching {
		right = " esc clear  enter done "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}
