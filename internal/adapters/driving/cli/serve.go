package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tracedocs/ddsdocs-cli/internal/adapters/driving/rest"
	"github.com/tracedocs/ddsdocs-cli/internal/logger"
)

var (
	serveAddr  string
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the knowledge base over HTTP",
	Long: `Starts the REST API server.

With --watch, the documentation folder is watched for changes and the
knowledge base is rebuilt whenever a supported file is created, written
or removed.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (default from config, then :8080)")
	serveCmd.Flags().BoolVarP(&serveWatch, "watch", "w", false, "rebuild when the documentation folder changes")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	addr := serveAddr
	if addr == "" && configStore != nil {
		addr = configStore.GetString("http_addr")
	}
	if addr == "" {
		addr = ":8080"
	}

	server, err := rest.NewServer(&rest.Ports{
		Query:  queryService,
		Ingest: ingestService,
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if serveWatch {
		if loader == nil || fileScanner == nil {
			return errors.New("watch mode requires the full service wiring")
		}
		changes, err := fileScanner.Watch(ctx, docsRoot)
		if err != nil {
			return fmt.Errorf("watching %s: %w", docsRoot, err)
		}
		go func() {
			for path := range changes {
				logger.Info("Change detected in %s; rebuilding knowledge base", path)
				if err := loader.Rebuild(ctx); err != nil {
					logger.Warn("Rebuild failed: %v", err)
				}
			}
		}()
		fmt.Fprintf(cmd.OutOrStdout(), "Watching %s for changes\n", docsRoot)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Serving knowledge base on %s\n", addr)
	return server.Run(ctx, addr)
}
