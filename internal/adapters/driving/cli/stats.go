package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show knowledge base statistics",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output statistics as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	stats, err := queryService.Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading stats: %w", err)
	}

	if statsJSON {
		return outputJSON(cmd, stats)
	}

	cmd.Printf("Documents: %d\n", stats.Documents)
	cmd.Printf("Endpoints: %d\n", stats.Endpoints)
	cmd.Printf("Examples:  %d\n", stats.Examples)
	cmd.Printf("Rules:     %d\n", stats.Rules)
	source := "pipeline run"
	if stats.FromCache {
		source = "cache"
	}
	cmd.Printf("Source:    %s\n", source)
	return nil
}
