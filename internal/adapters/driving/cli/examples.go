package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tracedocs/ddsdocs-cli/internal/core/domain"
)

var (
	examplesOperation string
	examplesType      string
	examplesJSON      bool
)

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "List request/response samples",
	Long: `Lists the XML request and response samples found in the documentation,
grouped by the DDS operation inferred from their filenames (EchoService,
SubmitDDS, RetrieveDDS, AmendDDS, RetractDDS, GetStatement).`,
	RunE: runExamples,
}

func init() {
	examplesCmd.Flags().StringVarP(&examplesOperation, "operation", "o", "", "filter by operation name")
	examplesCmd.Flags().StringVarP(&examplesType, "type", "t", "", "filter by sample type (request or response)")
	examplesCmd.Flags().BoolVar(&examplesJSON, "json", false, "output examples as JSON")
	rootCmd.AddCommand(examplesCmd)
}

func runExamples(cmd *cobra.Command, _ []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	exampleType := domain.ExampleType(examplesType)
	if exampleType != "" && exampleType != domain.ExampleRequest && exampleType != domain.ExampleResponse {
		return fmt.Errorf("invalid type %q: must be request or response", examplesType)
	}

	examples, err := queryService.Examples(cmd.Context(), examplesOperation, exampleType)
	if err != nil {
		return fmt.Errorf("listing examples: %w", err)
	}

	if examplesJSON {
		return outputJSON(cmd, examples)
	}

	if len(examples) == 0 {
		cmd.Println("No examples found.")
		return nil
	}
	for _, example := range examples {
		cmd.Printf("  %s [%s] %s\n", example.Operation, example.Type, example.Source)
	}
	return nil
}
