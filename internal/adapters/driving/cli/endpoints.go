package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	endpointsCategory string
	endpointsJSON     bool
)

var endpointsCmd = &cobra.Command{
	Use:   "endpoints",
	Short: "List API endpoints mined from the documentation",
	Long: `Lists every endpoint candidate mined from the documentation.
Endpoints are not deduplicated: a URL mentioned in several documents or
matched by several heuristics appears once per mention.`,
	RunE: runEndpoints,
}

func init() {
	endpointsCmd.Flags().StringVarP(&endpointsCategory, "category", "c", "", "filter by category substring")
	endpointsCmd.Flags().BoolVar(&endpointsJSON, "json", false, "output endpoints as JSON")
	rootCmd.AddCommand(endpointsCmd)
}

func runEndpoints(cmd *cobra.Command, _ []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	endpoints, err := queryService.Endpoints(cmd.Context(), endpointsCategory)
	if err != nil {
		return fmt.Errorf("listing endpoints: %w", err)
	}

	if endpointsJSON {
		return outputJSON(cmd, endpoints)
	}

	if len(endpoints) == 0 {
		cmd.Println("No endpoints found.")
		return nil
	}
	for _, endpoint := range endpoints {
		cmd.Printf("  %-6s %s\n", endpoint.Method, endpoint.URL)
		cmd.Printf("         %s (%s)\n", endpoint.Description, endpoint.Source)
	}
	return nil
}
