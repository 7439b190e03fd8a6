package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/headlines/internal/feed"
)

// Each card is 2 lines + 1 blank line.
const cardHeight = 3

// feedView is what the feed area shows for a given state.
type feedView int

const (
	viewLoading feedView = iota
	viewError
	viewEmpty
	viewCards
)

func classify(s feed.State) feedView {
	switch {
	case s.Err != "":
		return viewError
	case s.Loading:
		return viewLoading
	case len(s.Articles) == 0:
		return viewEmpty
	default:
		return viewCards
	}
}

// pagerState reports whether the previous and next controls are enabled.
func pagerState(s feed.State) (prev, next bool) {
	if s.Loading {
		return false, false
	}
	return s.HasPrev(), s.HasNext()
}

func relativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	default:
		return t.Format("Jan 2")
	}
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func cardMeta(a feed.Article) string {
	var parts []string
	if a.Source != "" {
		parts = append(parts, cardSourceStyle.Render(a.Source))
	}
	if a.Author != "" {
		parts = append(parts, cardMetaStyle.Render(a.Author))
	}
	if a.HasPublishedAt() {
		parts = append(parts, cardMetaStyle.Render(relativeTime(a.PublishedAt)))
	}
	if a.HasImage() {
		parts = append(parts, cardMetaStyle.Render("[img]"))
	}
	return strings.Join(parts, cardMetaStyle.Render(" · "))
}

func renderCard(a feed.Article, selected bool, width int) string {
	if width < 10 {
		width = 30
	}

	var title string
	if selected {
		title = cardSelectedStyle.Render("> " + truncateStr(a.Title, width-4))
	} else {
		title = cardTitleStyle.Render("  " + truncateStr(a.Title, width-4))
	}

	return title + "\n  " + cardMeta(a)
}

func renderSkeleton(width int) string {
	if width < 10 {
		width = 30
	}
	title := strings.Repeat("▒", max(1, width*3/4-2))
	meta := strings.Repeat("░", max(1, width/3))
	return skeletonStyle.Render("  "+title) + "\n" + skeletonStyle.Render("  "+meta)
}

// renderFeed draws the feed area: placeholders, cards, the empty message or
// the error in place of the feed.
func renderFeed(s feed.State, cursor, width, height int) string {
	switch classify(s) {
	case viewError:
		return lipglossCenter(errorStyle.Render(s.Err), lipgloss.Width(s.Err), width, height)
	case viewLoading:
		return renderSkeletons(s.PageSize, width, height)
	case viewEmpty:
		msg := "No articles found"
		return lipglossCenter(emptyStyle.Render(msg), len(msg), width, height)
	}
	return renderCards(s.Articles, cursor, width, height)
}

func renderSkeletons(n, width, height int) string {
	if n <= 0 {
		n = 1
	}
	if visible := max(1, height/cardHeight); n > visible {
		n = visible
	}
	cards := make([]string, n)
	for i := range cards {
		cards[i] = renderSkeleton(width)
	}
	return strings.Join(cards, "\n\n")
}

func renderCards(articles []feed.Article, cursor, width, height int) string {
	visible := height / cardHeight
	if visible < 1 {
		visible = 1
	}

	// Calculate scroll offset
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(articles) {
		end = len(articles)
		start = max(0, end-visible)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderCard(articles[i], i == cursor, width))
		if i < end-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

func lipglossCenter(s string, textWidth, width, height int) string {
	pad := max(0, (width-textWidth)/2)
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", pad) + s
}
