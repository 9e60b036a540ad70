package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var categoriesJSON bool

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List document categories with counts",
	RunE:  runCategories,
}

func init() {
	categoriesCmd.Flags().BoolVar(&categoriesJSON, "json", false, "output categories as JSON")
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	categories, err := queryService.Categories(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing categories: %w", err)
	}

	if categoriesJSON {
		return outputJSON(cmd, categories)
	}

	for _, category := range categories {
		cmd.Printf("  %-30s %d\n", category.Category, category.Count)
	}
	return nil
}
