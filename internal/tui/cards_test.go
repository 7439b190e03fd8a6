package tui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/matheuskafuri/headlines/internal/feed"
)

func articles(n int) []feed.Article {
	out := make([]feed.Article, n)
	for i := range out {
		out[i] = feed.Article{
			URL:   fmt.Sprintf("https://example.com/%d", i),
			Title: fmt.Sprintf("Headline number %d", i),
			Image: fmt.Sprintf("https://example.com/%d.jpg", i),
		}
	}
	return out
}

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"", 5, ""},
		{"test", 0, ""},
		{"日本語テスト", 5, "日本..."},
	}
	for _, tt := range tests {
		if got := truncateStr(tt.input, tt.n); got != tt.want {
			t.Errorf("truncateStr(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Now()

	tests := []struct {
		t    time.Time
		want string
	}{
		{now.Add(-30 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5m"},
		{now.Add(-3 * time.Hour), "3h"},
		{now.Add(-2 * 24 * time.Hour), "2d"},
		{time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), "Jun 15"},
	}
	for _, tt := range tests {
		if got := relativeTime(tt.t); got != tt.want {
			t.Errorf("relativeTime(%v) = %q, want %q", tt.t, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		state feed.State
		want  feedView
	}{
		{"loading", feed.State{Loading: true}, viewLoading},
		{"loading keeps old articles hidden", feed.State{Loading: true, Articles: articles(3)}, viewLoading},
		{"error", feed.State{Err: feed.ErrorMessage, Articles: articles(3)}, viewError},
		{"empty", feed.State{}, viewEmpty},
		{"cards", feed.State{Articles: articles(2)}, viewCards},
	}
	for _, tt := range tests {
		if got := classify(tt.state); got != tt.want {
			t.Errorf("%s: classify = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPagerState(t *testing.T) {
	tests := []struct {
		name  string
		state feed.State
		prev  bool
		next  bool
	}{
		{"first full page", feed.State{Query: feed.Query{Page: 1}, PageSize: 5, Articles: articles(5), Returned: 5}, false, true},
		{"middle page", feed.State{Query: feed.Query{Page: 3}, PageSize: 5, Articles: articles(5), Returned: 5}, true, true},
		{"full page with duplicates", feed.State{Query: feed.Query{Page: 1}, PageSize: 5, Articles: articles(4), Returned: 5}, false, true},
		{"short last page", feed.State{Query: feed.Query{Page: 2}, PageSize: 5, Articles: articles(2), Returned: 2}, true, false},
		{"loading", feed.State{Query: feed.Query{Page: 2}, PageSize: 5, Articles: articles(5), Returned: 5, Loading: true}, false, false},
	}
	for _, tt := range tests {
		prev, next := pagerState(tt.state)
		if prev != tt.prev || next != tt.next {
			t.Errorf("%s: pagerState = (%v, %v), want (%v, %v)", tt.name, prev, next, tt.prev, tt.next)
		}
	}
}

func TestRenderFeedGeneralFirstPage(t *testing.T) {
	s := feed.State{
		Query:    feed.Query{Category: "general", Page: 1},
		Articles: articles(5),
		PageSize: 5,
		Returned: 5,
	}

	out := renderFeed(s, 0, 80, 30)
	for i := 0; i < 5; i++ {
		title := fmt.Sprintf("Headline number %d", i)
		if strings.Count(out, title) != 1 {
			t.Errorf("expected one card titled %q in\n%s", title, out)
		}
	}
	if strings.Count(out, "[img]") != 5 {
		t.Errorf("expected every card to mark its image, got\n%s", out)
	}

	prev, next := pagerState(s)
	if prev {
		t.Error("previous should be disabled on page 1")
	}
	if !next {
		t.Error("next should be enabled after a full page")
	}
}

func TestRenderFeedError(t *testing.T) {
	s := feed.State{
		Query:    feed.Query{Category: "general", Page: 1},
		Articles: articles(5),
		Err:      feed.ErrorMessage,
		PageSize: 5,
	}
	out := renderFeed(s, 0, 80, 30)
	if !strings.Contains(out, feed.ErrorMessage) {
		t.Errorf("expected error message, got\n%s", out)
	}
	if strings.Contains(out, "Headline number") {
		t.Errorf("error should replace the feed, got\n%s", out)
	}
}

func TestRenderFeedEmpty(t *testing.T) {
	out := renderFeed(feed.State{PageSize: 5, Query: feed.Query{Page: 1}}, 0, 80, 30)
	if !strings.Contains(out, "No articles found") {
		t.Errorf("expected empty-state message, got\n%s", out)
	}
}

func TestRenderFeedLoadingPlaceholders(t *testing.T) {
	out := renderFeed(feed.State{Loading: true, PageSize: 5, Articles: articles(5)}, 0, 80, 30)
	if got := strings.Count(out, "▒"); got == 0 {
		t.Errorf("expected skeleton placeholders, got\n%s", out)
	}
	if strings.Contains(out, "Headline number") {
		t.Errorf("cards should be hidden while loading, got\n%s", out)
	}
	// one title bar per placeholder
	if got := len(strings.Split(strings.TrimSpace(out), "\n\n")); got != 5 {
		t.Errorf("expected 5 placeholders, got %d", got)
	}
}

func TestRenderCardsScrollsToCursor(t *testing.T) {
	list := articles(10)
	out := renderCards(list, 9, 80, 9)
	if !strings.Contains(out, "> Headline number 9") {
		t.Errorf("expected selected last card visible, got\n%s", out)
	}
	if strings.Contains(out, "Headline number 0") {
		t.Errorf("expected first card scrolled out, got\n%s", out)
	}
}
