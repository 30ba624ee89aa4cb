package cli

import (
	"fmt"

	"github.com/botdeck/botdeck-terminal/pkg/files"
	"github.com/botdeck/botdeck-terminal/pkg/models"
	"github.com/botdeck/botdeck-terminal/pkg/webex"
)

// CommandContext carries the loaded settings shared by subcommands.
type CommandContext struct {
	Settings *models.Settings
}

// NewCommandContext loads settings (with defaults and the token env
// override applied).
func NewCommandContext() *CommandContext {
	return &CommandContext{Settings: files.ReadSettingsWithDefault()}
}

// RequireToken ensures a bot token is configured before any API call.
func (c *CommandContext) RequireToken() error {
	if c.Settings.Webex.Token == "" {
		return fmt.Errorf("no bot token configured. Run 'botdeck token <token>' first, or set %s", files.TokenEnvVar)
	}
	return nil
}

// ResolveRoom picks the destination room: the explicit argument wins,
// otherwise the configured default.
func (c *CommandContext) ResolveRoom(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if c.Settings.Webex.DefaultRoomID != "" {
		return c.Settings.Webex.DefaultRoomID, nil
	}
	return "", fmt.Errorf("no room specified and no default room configured")
}

// NewWebexClient builds an API client from the loaded settings.
func (c *CommandContext) NewWebexClient() *webex.Client {
	return webex.NewClient(c.Settings.Webex.APIBase, c.Settings.Webex.Token)
}
