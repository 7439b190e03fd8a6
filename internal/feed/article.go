package feed

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/matheuskafuri/headlines/internal/newsapi"
)

const maxDescription = 300

// Article is a display-ready headline. Optional fields are empty when the
// source omitted them.
type Article struct {
	URL         string
	Title       string
	Author      string
	Description string
	Image       string
	Source      string
	PublishedAt time.Time
}

func (a Article) HasImage() bool {
	return a.Image != ""
}

func (a Article) HasPublishedAt() bool {
	return !a.PublishedAt.IsZero()
}

// FromRecord maps one raw record.
func FromRecord(r newsapi.Record) Article {
	a := Article{
		URL:         strings.TrimSpace(r.URL),
		Title:       strings.TrimSpace(r.Title),
		Author:      strings.TrimSpace(r.Author),
		Description: truncate(plainText(r.Description), maxDescription),
		Image:       strings.TrimSpace(r.URLToImage),
		Source:      r.Source.Name,
		PublishedAt: parseTime(r.PublishedAt),
	}
	return a
}

// parseTime returns the zero time for absent or unparseable timestamps.
func parseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// MapRecords maps a page of records, preserving order. Records without a URL
// are dropped and repeated URLs keep their first occurrence, so URL stays a
// unique key within the page.
func MapRecords(records []newsapi.Record) []Article {
	out := make([]Article, 0, len(records))
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		a := FromRecord(r)
		if a.URL == "" || seen[a.URL] {
			continue
		}
		seen[a.URL] = true
		out = append(out, a)
	}
	return out
}

// plainText reduces an HTML fragment to its collapsed text content.
func plainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.Join(strings.Fields(s), " ")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
