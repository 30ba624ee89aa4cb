package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/botdeck/botdeck-terminal/internal/cli"
	"github.com/botdeck/botdeck-terminal/pkg/files"
)

// NewTokenCommand creates the token command
func NewTokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token [value]",
		Short: "Save or inspect the bot access token",
		Long: `Save the Webex bot access token used for all API calls, or show
whether one is configured.

The token is stored in .botdeck/settings.yaml. Get one at
https://developer.webex.com/my-apps.

Examples:
  # Save a token
  botdeck token NDc2O...

  # Check the configured token (masked)
  botdeck token`,
		Args: cobra.MaximumNArgs(1),
		RunE: runToken,
	}

	return cmd
}

func runToken(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		settings := files.ReadSettingsWithDefault()
		if settings.Webex.Token == "" {
			cli.PrintInfo("No bot token configured")
			return nil
		}
		cli.PrintSuccess("Token configured: %s", maskToken(settings.Webex.Token))
		return nil
	}

	token := strings.TrimSpace(args[0])
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}

	settings := files.ReadSettingsWithDefault()
	settings.Webex.Token = token
	if err := files.WriteSettings(settings); err != nil {
		return err
	}

	cli.PrintSuccess("Bot token saved")
	return nil
}

// maskToken hides all but the edges of a credential for display.
func maskToken(token string) string {
	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + strings.Repeat("*", 8) + token[len(token)-4:]
}
