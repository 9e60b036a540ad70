package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var documentJSON bool

var documentCmd = &cobra.Command{
	Use:   "document [filename]",
	Short: "Show one ingested document",
	Long:  `Prints the extracted text and metadata of a single document, addressed by filename.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDocument,
}

func init() {
	documentCmd.Flags().BoolVar(&documentJSON, "json", false, "output the document as JSON")
	rootCmd.AddCommand(documentCmd)
}

func runDocument(cmd *cobra.Command, args []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	doc, err := queryService.Document(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("document %s: %w", args[0], err)
	}

	if documentJSON {
		return outputJSON(cmd, doc)
	}

	cmd.Printf("%s (%s)\n", doc.Title, doc.Filename)
	cmd.Printf("Category: %s  Format: %s  Size: %d bytes\n", doc.Category, doc.Format, doc.Metadata.Size)
	cmd.Println()
	cmd.Println(doc.Content)
	return nil
}
