package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/botdeck/botdeck-terminal/pkg/files"
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <draft>",
		Short: "Print a saved card draft's JSON",
		Long: `Print the card JSON of a saved draft to stdout.

Examples:
  botdeck show release-notes
  botdeck show release-notes > card.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := files.ReadDraft(args[0])
			if err != nil {
				return err
			}
			fmt.Println(draft.Document)
			return nil
		},
	}
}
