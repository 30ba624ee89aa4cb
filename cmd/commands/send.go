package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/botdeck/botdeck-terminal/internal/cli"
	"github.com/botdeck/botdeck-terminal/pkg/files"
)

var (
	sendMessage string
	sendRoomID  string
)

// NewSendCommand creates the send command
func NewSendCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a plain-text message to a Webex space",
		Long: `Send a plain-text message to a Webex space using the configured bot token.

The destination is the --room flag, or the configured default room when
the flag is omitted.

Examples:
  # Send to an explicit room
  botdeck send --room Y2lzY29zcGFyazovL3VzL1JPT00vMTIz -m "Deploy finished"

  # Send to the default room
  botdeck send -m "Deploy finished"`,
		Args: cobra.NoArgs,
		RunE: runSend,
	}

	cmd.Flags().StringVarP(&sendMessage, "message", "m", "", "Message text to send (required)")
	cmd.Flags().StringVar(&sendRoomID, "room", "", "Destination room ID (default: configured room)")

	return cmd
}

func runSend(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()
	if err := ctx.RequireToken(); err != nil {
		return err
	}

	roomID, err := ctx.ResolveRoom(sendRoomID)
	if err != nil {
		return err
	}

	if strings.TrimSpace(sendMessage) == "" {
		return fmt.Errorf("message cannot be empty")
	}

	client := ctx.NewWebexClient()
	if err := client.SendMessage(context.Background(), roomID, sendMessage); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	cli.PrintSuccess("Message sent to %s", roomID)
	return nil
}

var sendCardRoomID string

// NewSendCardCommand creates the send-card command
func NewSendCardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send-card <draft>",
		Short: "Send a saved card draft to a Webex space",
		Long: `Send a saved card draft as an adaptive-card attachment.

The draft must have been saved from the designer (or written to
.botdeck/cards/<name>.json). The card travels with a plain-text fallback
for clients that cannot render adaptive cards.

Examples:
  botdeck send-card release-notes --room Y2lzY29zcGFyazovL3VzL1JPT00vMTIz
  botdeck send-card release-notes`,
		Args: cobra.ExactArgs(1),
		RunE: runSendCard,
	}

	cmd.Flags().StringVar(&sendCardRoomID, "room", "", "Destination room ID (default: configured room)")

	return cmd
}

func runSendCard(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()
	if err := ctx.RequireToken(); err != nil {
		return err
	}

	roomID, err := ctx.ResolveRoom(sendCardRoomID)
	if err != nil {
		return err
	}

	draft, err := files.ReadDraft(args[0])
	if err != nil {
		return err
	}

	// Reject documents that are not valid JSON before going to the network.
	if !json.Valid([]byte(draft.Document)) {
		return fmt.Errorf("draft %s is not valid card JSON", draft.Name)
	}

	client := ctx.NewWebexClient()
	if err := client.SendCard(context.Background(), roomID, "Adaptive Card", json.RawMessage(draft.Document)); err != nil {
		return fmt.Errorf("failed to send card: %w", err)
	}

	cli.PrintSuccess("Card %s sent to %s", draft.Name, roomID)
	return nil
}
