package webex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	// DefaultAPIBase is the production Webex API host.
	DefaultAPIBase = "https://webexapis.com"

	// CardContentType is the attachment content type for adaptive cards.
	CardContentType = "application/vnd.microsoft.card.adaptive"
)

// Client is a minimal Webex messaging client: post a message or card to a
// room, list the rooms the bot belongs to. All calls authenticate with the
// bot's bearer token.
type Client struct {
	base  string
	token string
	httpc *http.Client
}

// NewClient creates a client for the given API base and bot token. An empty
// base selects the production host.
func NewClient(base, token string) *Client {
	if base == "" {
		base = DefaultAPIBase
	}
	return &Client{
		base:  base,
		token: token,
		httpc: &http.Client{Timeout: 30 * time.Second},
	}
}

// APIError is a non-2xx response from the Webex API. Message carries the
// upstream error text when the response body had one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("webex API returned status %d", e.StatusCode)
}

// Room is a space the bot is a member of.
type Room struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type roomsResponse struct {
	Items []Room `json:"items"`
}

type attachment struct {
	ContentType string          `json:"contentType"`
	Content     json.RawMessage `json:"content"`
}

type messageRequest struct {
	RoomID      string       `json:"roomId"`
	Text        string       `json:"text"`
	Attachments []attachment `json:"attachments,omitempty"`
}

// SendMessage posts a plain-text message to a room.
func (c *Client) SendMessage(ctx context.Context, roomID, text string) error {
	return c.postMessage(ctx, messageRequest{RoomID: roomID, Text: text})
}

// SendCard posts an adaptive card to a room. The card travels as an
// attachment with a plain-text fallback for clients that cannot render it.
func (c *Client) SendCard(ctx context.Context, roomID, fallback string, card json.RawMessage) error {
	return c.postMessage(ctx, messageRequest{
		RoomID: roomID,
		Text:   fallback,
		Attachments: []attachment{{
			ContentType: CardContentType,
			Content:     card,
		}},
	})
}

func (c *Client) postMessage(ctx context.Context, msg messageRequest) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach Webex API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}
	return nil
}

// ListRooms fetches the rooms the bot is a member of.
func (c *Client) ListRooms(ctx context.Context) ([]Room, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/v1/rooms", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach Webex API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeAPIError(resp)
	}

	var rooms roomsResponse
	if err := json.NewDecoder(resp.Body).Decode(&rooms); err != nil {
		return nil, fmt.Errorf("failed to decode rooms response: %w", err)
	}
	return rooms.Items, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Message = body.Message
	}
	return apiErr
}
