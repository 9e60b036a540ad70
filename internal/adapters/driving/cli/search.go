package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tracedocs/ddsdocs-cli/internal/core/ports/driving"
)

var (
	searchLimit    int
	searchCategory string
	searchJSON     bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the ingested documentation",
	Long: `Searches document filenames, titles and content for the query text
(case-insensitive) and prints the matching documents with a snippet of
surrounding content.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results")
	searchCmd.Flags().StringVarP(&searchCategory, "category", "c", "", "restrict matches to a document category")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if queryService == nil {
		return errors.New("query service not configured")
	}

	matches, err := queryService.SearchDocuments(cmd.Context(), query, searchCategory, searchLimit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputJSON(cmd, matches)
	}
	return outputSearchTable(cmd, matches)
}

func outputSearchTable(cmd *cobra.Command, matches []driving.DocumentMatch) error {
	if len(matches) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range matches {
		doc := matches[i].Document
		cmd.Printf("  [%d] %s (%s, %s)\n", i+1, doc.Title, doc.Filename, doc.Category)
		if matches[i].Snippet != "" {
			cmd.Printf("      %s\n", matches[i].Snippet)
		}
		cmd.Println()
	}
	return nil
}

// outputJSON prints any value as indented JSON, shared by all commands.
func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
