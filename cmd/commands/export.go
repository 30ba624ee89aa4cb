package commands

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/botdeck/botdeck-terminal/internal/cli"
	"github.com/botdeck/botdeck-terminal/pkg/files"
	"github.com/botdeck/botdeck-terminal/pkg/templates"
)

var (
	exportOutputFile string
	exportClipboard  bool
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <draft|template>",
		Short: "Export a card draft or template's JSON",
		Long: `Export the card JSON of a saved draft, or of a built-in template
when no draft with that name exists, to a file or the clipboard.

Examples:
  # Export a draft to a file
  botdeck export release-notes --output-file card.json

  # Copy a template to the clipboard
  botdeck export poll --clipboard`,
		Args: cobra.ExactArgs(1),
		RunE: runExport,
	}

	cmd.Flags().StringVar(&exportOutputFile, "output-file", "", "Write the card JSON to this file")
	cmd.Flags().BoolVar(&exportClipboard, "clipboard", false, "Copy the card JSON to the clipboard")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	name := args[0]

	document, err := resolveCardDocument(name)
	if err != nil {
		return err
	}

	if exportClipboard {
		if err := clipboard.WriteAll(document); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		cli.PrintSuccess("Card JSON copied to clipboard")
		return nil
	}

	if exportOutputFile != "" {
		if err := os.WriteFile(exportOutputFile, []byte(document+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutputFile, err)
		}
		cli.PrintSuccess("Card JSON written to %s", exportOutputFile)
		return nil
	}

	fmt.Println(document)
	return nil
}

// resolveCardDocument finds a card by name: saved drafts shadow built-in
// templates.
func resolveCardDocument(name string) (string, error) {
	if draft, err := files.ReadDraft(name); err == nil {
		return draft.Document, nil
	}
	if tmpl, err := templates.Get(name); err == nil {
		return tmpl.Document, nil
	}
	return "", fmt.Errorf("no draft or template named '%s'", name)
}
