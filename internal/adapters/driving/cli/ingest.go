package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Rebuild the knowledge base from the documentation folder",
	Long: `Runs the full ingestion pipeline over the documentation folder and
replaces the knowledge cache, ignoring any previously cached state.`,
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	// Rebuild through the loader when it is wired so the cache is replaced;
	// otherwise drive the pipeline directly.
	if loader != nil {
		if err := loader.Rebuild(cmd.Context()); err != nil {
			return fmt.Errorf("ingestion failed: %w", err)
		}
	} else if _, err := ingestService.ProcessAll(cmd.Context()); err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	status := ingestService.Status()
	cmd.Printf("Ingested %d of %d discovered files (%d skipped)\n",
		status.DocumentsProcessed, status.FilesDiscovered, status.FilesSkipped)

	stats, err := queryService.Stats(cmd.Context())
	if err != nil {
		return err
	}
	cmd.Printf("Knowledge base: %d documents, %d endpoints, %d examples, %d rules\n",
		stats.Documents, stats.Endpoints, stats.Examples, stats.Rules)
	return nil
}
