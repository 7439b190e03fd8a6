package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/matheuskafuri/headlines/internal/feed"
	"github.com/matheuskafuri/headlines/internal/logger"
	"github.com/matheuskafuri/headlines/internal/newsapi"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var flagPage int

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Print one page of headlines",
	Long:  "Fetch a single page of headlines for a category and search text and print it as a table.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagPage < 1 {
			return fmt.Errorf("invalid --page value %d: pages start at 1", flagPage)
		}

		cfg, category, err := loadConfig()
		if err != nil {
			return err
		}

		key := cfg.ResolveAPIKey()
		if key == "" {
			return errMissingKey
		}

		log, err := logger.New(cfg.LogLevel, "stderr")
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		defer log.Sync()

		client := newsapi.NewClient(key, cfg.TimeoutDuration(), newsapi.WithEndpoint(cfg.Endpoint))
		q := feed.Query{Category: category, Search: flagQuery, Page: flagPage}

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.TimeoutDuration())
		defer cancel()

		p, err := feed.FetchPage(ctx, client, q, cfg.GetPageSize(), cfg.Country)
		if err != nil {
			log.Error("fetch failed", zap.String("category", category), zap.Int("page", flagPage), zap.Error(err))
			return fmt.Errorf("fetching headlines: %w", err)
		}

		renderTable(cmd.OutOrStdout(), q, p, cfg.GetPageSize())
		return nil
	},
}

func init() {
	fetchCmd.Flags().IntVar(&flagPage, "page", 1, "page number to fetch")
}

func renderTable(w io.Writer, q feed.Query, p feed.Page, pageSize int) {
	articles := p.Articles
	if len(articles) == 0 {
		fmt.Fprintln(w, "No articles found")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Title", "Source", "Author", "Published", "URL"})

	for i, a := range articles {
		published := ""
		if a.HasPublishedAt() {
			published = a.PublishedAt.Local().Format("Jan 2, 2006")
		}
		t.AppendRow(table.Row{
			(q.Page-1)*pageSize + i + 1,
			truncate(a.Title, 60),
			a.Source,
			truncate(a.Author, 24),
			published,
			a.URL,
		})
	}

	footer := fmt.Sprintf("%s · page %d", q.Category, q.Page)
	if q.Search != "" {
		footer += fmt.Sprintf(" · %q", q.Search)
	}
	if p.HasNext(pageSize) {
		footer += fmt.Sprintf(" · more with --page %d", q.Page+1)
	}
	t.SetCaption(footer)
	t.Render()
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
