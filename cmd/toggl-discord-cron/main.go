package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Corantin/toggl-discord-cron/internal/app"
	"github.com/Corantin/toggl-discord-cron/internal/config"
)

func main() {
	var (
		date    string
		dryRun  bool
		verbose bool
	)

	rootCmd := &cobra.Command{
		Use:           "toggl-discord-cron",
		Short:         "Post a daily Toggl time report to a Discord webhook",
		Long:          "Fetches one day of Toggl time entries, sums rounded durations per tag and posts the summary to a Discord webhook. Meant to be run from cron.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// .env is a convenience for local runs; absence is fine.
			_ = godotenv.Load()

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
			logger := slog.New(handler)
			slog.SetDefault(logger)

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("date") {
				cfg.Report.Date = date
			}
			if cmd.Flags().Changed("dry-run") {
				cfg.Report.DryRun = dryRun
			}

			application := app.New(logger, cfg)
			return application.RunOnce(cmd.Context())
		},
	}

	rootCmd.Flags().StringVar(&date, "date", "", "Report date: today, yesterday or YYYY-MM-DD (default: yesterday)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the report instead of posting it")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
