package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/matheuskafuri/headlines/internal/config"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig   string
	flagCategory string
	flagQuery    string
	flagCountry  string
)

var errMissingKey = fmt.Errorf("no API key: set %s or api_key in the config file", config.APIKeyEnv)

var rootCmd = &cobra.Command{
	Use:   "headlines",
	Short: "Browse top news headlines in the terminal",
	Long:  "headlines lets you browse categorized top headlines from NewsAPI, search them and page through the results.",
	RunE:  runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagCategory, "category", "", "category to open (default from config)")
	rootCmd.PersistentFlags().StringVarP(&flagQuery, "query", "q", "", "initial search text")
	rootCmd.PersistentFlags().StringVar(&flagCountry, "country", "", "two-letter country code (default from config)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(fetchCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "headlines %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the configured categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		for _, c := range cfg.Categories {
			marker := " "
			if c == cfg.DefaultCategory {
				marker = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, c)
		}
		return nil
	},
}

// loadConfig reads the config and applies command-line overrides.
func loadConfig() (*config.Config, string, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, "", fmt.Errorf("loading config: %w", err)
	}
	if flagCountry != "" {
		cfg.Country = flagCountry
	}
	category, err := resolveCategory(cfg, flagCategory)
	if err != nil {
		return nil, "", err
	}
	return cfg, category, nil
}

func resolveCategory(cfg *config.Config, requested string) (string, error) {
	if requested == "" {
		return cfg.DefaultCategory, nil
	}
	if !cfg.HasCategory(requested) {
		return "", fmt.Errorf("unknown category %q (valid: %v)", requested, cfg.Categories)
	}
	return requested, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errMissingKey) {
			fmt.Fprintln(os.Stderr, "Get a free key at https://newsapi.org/register")
		}
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
