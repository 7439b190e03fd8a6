package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/headlines/internal/feed"
)

func renderPreview(article *feed.Article, width, height, scroll int) string {
	if article == nil {
		msg := "Select an article"
		return lipglossCenter(msg, len(msg), width, height)
	}

	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	title := previewTitleStyle.Width(contentWidth).Render(article.Title)

	var byline []string
	if article.Source != "" {
		byline = append(byline, article.Source)
	}
	if article.Author != "" {
		byline = append(byline, article.Author)
	}
	if article.HasPublishedAt() {
		byline = append(byline, article.PublishedAt.Local().Format("Jan 2, 2006"))
	}
	source := previewSourceStyle.Render(strings.Join(byline, " · "))

	desc := article.Description
	if desc == "" {
		desc = "(No description available)"
	}
	body := previewBodyStyle.Width(contentWidth).Render(wrapText(desc, contentWidth))

	parts := []string{title, source, "", body, ""}
	if article.HasImage() {
		parts = append(parts, previewLinkStyle.Width(contentWidth).Render("Image: "+article.Image))
	}
	parts = append(parts, previewLinkStyle.Width(contentWidth).Render("Read more: "+article.URL))

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	// Apply scroll offset
	lines := strings.Split(content, "\n")
	if scroll > 0 && scroll < len(lines) {
		lines = lines[scroll:]
	}

	// Pad to fill height
	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
