package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/botdeck/botdeck-terminal/internal/cli"
	"github.com/botdeck/botdeck-terminal/pkg/templates"
)

// TemplatesResult represents the output structure for the templates command
type TemplatesResult struct {
	Items []TemplateItem `json:"items" yaml:"items"`
	Count int            `json:"count" yaml:"count"`
}

// TemplateItem represents a single built-in template
type TemplateItem struct {
	Key  string `json:"key" yaml:"key"`
	Name string `json:"name" yaml:"name"`
}

// NewTemplatesCommand creates the templates command
func NewTemplatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates [key]",
		Short: "List built-in card templates or print one",
		Long: `List the built-in card templates, or print the card JSON of one
template.

Examples:
  # List all templates
  botdeck templates

  # Print the poll template's card JSON
  botdeck templates poll`,
		Args: cobra.MaximumNArgs(1),
		RunE: runTemplates,
	}

	return cmd
}

func runTemplates(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		tmpl, err := templates.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Println(tmpl.Document)
		return nil
	}

	result := TemplatesResult{}
	for _, tmpl := range templates.All() {
		result.Items = append(result.Items, TemplateItem{Key: tmpl.Key, Name: tmpl.Name})
	}
	result.Count = len(result.Items)

	outputFormat, _ := cmd.Flags().GetString("output")
	if outputFormat != "" && outputFormat != string(cli.FormatText) {
		return cli.OutputResults(os.Stdout, outputFormat, result)
	}

	for _, item := range result.Items {
		fmt.Printf("%-12s %s\n", item.Key, item.Name)
	}
	return nil
}
