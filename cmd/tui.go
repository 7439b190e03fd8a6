package cmd

import (
	"fmt"

	"github.com/matheuskafuri/headlines/internal/config"
	"github.com/matheuskafuri/headlines/internal/feed"
	"github.com/matheuskafuri/headlines/internal/logger"
	"github.com/matheuskafuri/headlines/internal/newsapi"
	"github.com/matheuskafuri/headlines/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, category, err := loadConfig()
	if err != nil {
		return err
	}

	key := cfg.ResolveAPIKey()
	if key == "" {
		return errMissingKey
	}

	// The TUI owns the terminal, so logs go to a file.
	log, err := logger.New(cfg.LogLevel, config.LogPath())
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer log.Sync()

	log.Info("starting",
		zap.String("version", version),
		zap.String("category", category),
		zap.String("country", cfg.Country),
	)

	client := newsapi.NewClient(key, cfg.TimeoutDuration(), newsapi.WithEndpoint(cfg.Endpoint))
	ctrl := feed.New(client, category, feed.Options{
		PageSize: cfg.GetPageSize(),
		Country:  cfg.Country,
		Debounce: cfg.DebounceDuration(),
		Logger:   log,
	})
	defer ctrl.Close()

	// The initial Refresh issued by the UI supersedes this debounce.
	if flagQuery != "" {
		ctrl.SetSearch(flagQuery)
	}

	return tui.Run(tui.RunOpts{Feed: ctrl, Categories: cfg.Categories})
}
