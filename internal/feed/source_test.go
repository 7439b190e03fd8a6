package feed

import (
	"context"
	"errors"
	"testing"

	"github.com/matheuskafuri/headlines/internal/newsapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchPageCountsRawRecords(t *testing.T) {
	src := &funcSource{fn: func(p newsapi.Params) (*newsapi.Response, error) {
		resp := page("general", 5)
		resp.Articles[2].URL = resp.Articles[0].URL
		return resp, nil
	}}

	p, err := FetchPage(context.Background(), src, Query{Category: "general", Page: 1}, 5, "eg")
	require.NoError(t, err)
	assert.Len(t, p.Articles, 4)
	assert.Equal(t, 5, p.Returned)
	assert.True(t, p.HasNext(5))
	assert.False(t, p.HasNext(6))
}

func TestFetchPageRejectsUnexpectedStatus(t *testing.T) {
	tests := []struct {
		name string
		resp *newsapi.Response
	}{
		{"nil response", nil},
		{"error status", &newsapi.Response{Status: newsapi.StatusError, Code: "rateLimited"}},
		{"unknown status", &newsapi.Response{Status: "pending"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &funcSource{fn: func(newsapi.Params) (*newsapi.Response, error) {
				return tt.resp, nil
			}}
			p, err := FetchPage(context.Background(), src, Query{Page: 1}, 5, "")
			require.Error(t, err)
			assert.True(t, errors.Is(err, newsapi.ErrMalformed), "got %v", err)
			var apiErr *newsapi.APIError
			assert.False(t, errors.As(err, &apiErr))
			assert.Empty(t, p.Articles)
		})
	}
}
