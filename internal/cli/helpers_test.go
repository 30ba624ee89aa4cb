package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/botdeck/botdeck-terminal/pkg/models"
)

func TestResolveRoom(t *testing.T) {
	ctx := &CommandContext{Settings: models.DefaultSettings()}

	if _, err := ctx.ResolveRoom(""); err == nil {
		t.Error("expected error with no room anywhere")
	}

	room, err := ctx.ResolveRoom("explicit-room")
	if err != nil {
		t.Fatalf("ResolveRoom failed: %v", err)
	}
	if room != "explicit-room" {
		t.Errorf("room = %q", room)
	}

	ctx.Settings.Webex.DefaultRoomID = "default-room"
	room, err = ctx.ResolveRoom("")
	if err != nil {
		t.Fatalf("ResolveRoom failed: %v", err)
	}
	if room != "default-room" {
		t.Errorf("room = %q", room)
	}

	// Explicit still wins over the default.
	room, _ = ctx.ResolveRoom("explicit-room")
	if room != "explicit-room" {
		t.Errorf("room = %q", room)
	}
}

func TestRequireToken(t *testing.T) {
	ctx := &CommandContext{Settings: models.DefaultSettings()}
	if err := ctx.RequireToken(); err == nil {
		t.Error("expected error without a token")
	}

	ctx.Settings.Webex.Token = "tok"
	if err := ctx.RequireToken(); err != nil {
		t.Errorf("RequireToken failed with token set: %v", err)
	}
}

func TestOutputResultsJSON(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]string{"name": "value"}
	if err := OutputResults(&buf, "json", data); err != nil {
		t.Fatalf("OutputResults failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"name": "value"`) {
		t.Errorf("JSON output wrong: %s", buf.String())
	}
}

func TestOutputResultsUnsupported(t *testing.T) {
	var buf bytes.Buffer
	if err := OutputResults(&buf, "xml", nil); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a long string that overflows", 10, "a long ..."},
		{"abc", 2, "ab"},
	}
	for _, tt := range tests {
		if got := TruncateString(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}
