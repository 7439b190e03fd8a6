package feed

import (
	"context"
	"fmt"

	"github.com/matheuskafuri/headlines/internal/newsapi"
)

// Source is the Headlines Source. *newsapi.Client implements it.
type Source interface {
	List(ctx context.Context, p newsapi.Params) (*newsapi.Response, error)
}

// Query holds the user-controlled filter and pagination parameters.
type Query struct {
	Category string
	Search   string
	Page     int
}

// Page is one mapped result page. Returned counts the records the source
// sent, before records without a URL or with a repeated URL were dropped.
type Page struct {
	Articles []Article
	Returned int
}

// HasNext guesses whether another page exists: the source does not report a
// reliable total, so a full page is taken to mean there may be more.
func (p Page) HasNext(pageSize int) bool {
	return p.Returned >= pageSize
}

// FetchPage runs one request for q and maps the result.
func FetchPage(ctx context.Context, src Source, q Query, pageSize int, country string) (Page, error) {
	resp, err := src.List(ctx, newsapi.Params{
		Category: q.Category,
		Query:    q.Search,
		Page:     q.Page,
		PageSize: pageSize,
		Country:  country,
	})
	if err != nil {
		return Page{}, err
	}
	if resp == nil {
		return Page{}, fmt.Errorf("%w: empty response", newsapi.ErrMalformed)
	}
	if resp.Status != newsapi.StatusOK {
		return Page{}, fmt.Errorf("%w: status %q", newsapi.ErrMalformed, resp.Status)
	}
	return Page{Articles: MapRecords(resp.Articles), Returned: len(resp.Articles)}, nil
}
