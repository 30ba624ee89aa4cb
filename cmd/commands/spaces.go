package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/botdeck/botdeck-terminal/internal/cli"
)

// SpacesResult represents the output structure for the spaces command
type SpacesResult struct {
	Items []SpaceItem `json:"items" yaml:"items"`
	Count int         `json:"count" yaml:"count"`
}

// SpaceItem represents a single space in the list
type SpaceItem struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
}

// NewSpacesCommand creates the spaces command
func NewSpacesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spaces",
		Short: "List the Webex spaces the bot is a member of",
		Long: `List the Webex spaces (rooms) where the configured bot is a member.

Examples:
  # List spaces as a table
  botdeck spaces

  # List spaces as JSON
  botdeck spaces -o json`,
		Args: cobra.NoArgs,
		RunE: runSpaces,
	}

	return cmd
}

func runSpaces(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()
	if err := ctx.RequireToken(); err != nil {
		return err
	}

	client := ctx.NewWebexClient()
	rooms, err := client.ListRooms(context.Background())
	if err != nil {
		return fmt.Errorf("failed to fetch spaces: %w", err)
	}

	result := SpacesResult{Count: len(rooms)}
	for _, room := range rooms {
		result.Items = append(result.Items, SpaceItem{ID: room.ID, Title: room.Title})
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	if outputFormat != "" && outputFormat != string(cli.FormatText) {
		return cli.OutputResults(os.Stdout, outputFormat, result)
	}

	if len(result.Items) == 0 {
		cli.PrintInfo("No spaces found. Add the bot to a space first.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Title", "Room ID"})
	for _, item := range result.Items {
		t.AppendRow(table.Row{item.Title, item.ID})
	}
	t.SetStyle(table.StyleLight)
	t.Render()

	cli.PrintInfo("%d space(s) found", result.Count)
	return nil
}
