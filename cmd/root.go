// Package cmd defines and implements the CLI commands for the spinneret
// executable.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/webloom/spinneret/internal/app"
)

var (
	cfgFile string
	debug   bool
)

// appKeyType is the key for storing the App in the command context.
type appKeyType string

const appKey appKeyType = "app"

// newApp is the application factory. It is a variable so tests can replace
// it with a mock factory.
var newApp = app.New

// newRootCmd creates and configures the root command.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spinneret",
		Short: "A local-filesystem web-crawler simulator.",
		Long: `spinneret walks a tree of local HTML files as if they were pages on the
web: it extracts text and hyperlinks from each page, deduplicates documents
and URIs by fingerprint, and feeds the aggregated text into a word or
two-gram frequency report. No network access is required or performed.`,
		SilenceUsage: true,

		// Build the shared services after flags are parsed but before the
		// subcommand runs, and stash them in the context.
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			appInstance, err := newApp(cfgFile, debug)
			if err != nil {
				return fmt.Errorf("initialize application services: %w", err)
			}
			cmd.SetContext(context.WithValue(cmd.Context(), appKey, appInstance))
			return nil
		},

		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if appInstance, ok := cmd.Context().Value(appKey).(*app.App); ok && appInstance != nil {
				appInstance.Close()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to the crawl config file (JSON or YAML)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging regardless of agent_config.debug")

	cmd.AddCommand(newCrawlCmd())
	cmd.AddCommand(newFreqCmd())

	return cmd
}

func resolveApp(ctx context.Context) (*app.App, error) {
	appInstance, ok := ctx.Value(appKey).(*app.App)
	if !ok || appInstance == nil {
		return nil, errors.New("application services not initialized")
	}
	return appInstance, nil
}

// Execute is the main entry point.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
