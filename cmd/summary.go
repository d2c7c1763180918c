package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/bookforge/bookforge/internal/config"
	"github.com/bookforge/bookforge/internal/db"
	"github.com/bookforge/bookforge/internal/report"
	"github.com/spf13/cobra"
)

var summaryFormat string

// summaryCmd reports row counts without touching any data.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show row counts for every populated table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		conn, err := db.Open(cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer conn.Close()

		counts := report.Collect(context.Background(), conn.DB)

		switch summaryFormat {
		case "table":
			report.RenderTable(os.Stdout, counts)
			return nil
		case "json":
			return report.RenderJSON(os.Stdout, counts)
		case "yaml":
			return report.RenderYAML(os.Stdout, counts)
		default:
			return fmt.Errorf("unsupported format: %s (expected table, json or yaml)", summaryFormat)
		}
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().StringVar(&summaryFormat, "format", "table", "Output format: table, json or yaml")
}
