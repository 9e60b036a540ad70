package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	rulesKeyword string
	rulesJSON    bool
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List validation rules mined from the documentation",
	RunE:  runRules,
}

func init() {
	rulesCmd.Flags().StringVarP(&rulesKeyword, "keyword", "k", "", "filter rules containing this keyword")
	rulesCmd.Flags().BoolVar(&rulesJSON, "json", false, "output rules as JSON")
	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, _ []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	rules, err := queryService.Rules(cmd.Context(), rulesKeyword)
	if err != nil {
		return fmt.Errorf("listing rules: %w", err)
	}

	if rulesJSON {
		return outputJSON(cmd, rules)
	}

	if len(rules) == 0 {
		cmd.Println("No rules found.")
		return nil
	}
	for i, rule := range rules {
		cmd.Printf("  [%d] %s (%s)\n", i+1, rule.Name, rule.Source)
	}
	return nil
}
