package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/botdeck/botdeck-terminal/internal/cli"
	"github.com/botdeck/botdeck-terminal/pkg/files"
)

// DraftsResult represents the output structure for the drafts command
type DraftsResult struct {
	Items []string `json:"items" yaml:"items"`
	Count int      `json:"count" yaml:"count"`
}

// NewDraftsCommand creates the drafts command
func NewDraftsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drafts",
		Short: "List saved card drafts",
		Long: `List the card drafts saved from the designer.

Examples:
  # List drafts
  botdeck drafts

  # Delete a draft
  botdeck drafts delete release-notes`,
		Args: cobra.NoArgs,
		RunE: runDrafts,
	}

	cmd.AddCommand(newDraftsDeleteCommand())

	return cmd
}

func runDrafts(cmd *cobra.Command, args []string) error {
	names, err := files.ListDrafts()
	if err != nil {
		return err
	}

	result := DraftsResult{Items: names, Count: len(names)}

	outputFormat, _ := cmd.Flags().GetString("output")
	if outputFormat != "" && outputFormat != string(cli.FormatText) {
		return cli.OutputResults(os.Stdout, outputFormat, result)
	}

	if len(names) == 0 {
		cli.PrintInfo("No saved card drafts. Save one from the designer with ctrl+s.")
		return nil
	}

	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func newDraftsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved card draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			confirmed, err := cli.Confirm(fmt.Sprintf("Delete draft '%s'?", name), false)
			if err != nil {
				return err
			}
			if !confirmed {
				cli.PrintInfo("Cancelled")
				return nil
			}

			if err := files.DeleteDraft(name); err != nil {
				return err
			}
			cli.PrintSuccess("Deleted draft %s", name)
			return nil
		},
	}
}
