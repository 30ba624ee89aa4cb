package templates

import (
	"encoding/json"
	"testing"
)

func TestAllTemplates(t *testing.T) {
	all := All()
	wantKeys := []string{"blank", "announcement", "poll", "feedback", "twoColumn", "contact"}
	if len(all) != len(wantKeys) {
		t.Fatalf("got %d templates, want %d", len(all), len(wantKeys))
	}
	for i, want := range wantKeys {
		if all[i].Key != want {
			t.Errorf("template %d key = %q, want %q", i, all[i].Key, want)
		}
		if all[i].Name == "" {
			t.Errorf("template %q has no display name", all[i].Key)
		}
	}
}

func TestTemplateDocumentsAreValidCards(t *testing.T) {
	for _, tmpl := range All() {
		var card struct {
			Type    string `json:"type"`
			Version string `json:"version"`
			Body    []any  `json:"body"`
		}
		if err := json.Unmarshal([]byte(tmpl.Document), &card); err != nil {
			t.Errorf("template %q is not valid JSON: %v", tmpl.Key, err)
			continue
		}
		if card.Type != "AdaptiveCard" {
			t.Errorf("template %q type = %q", tmpl.Key, card.Type)
		}
		if card.Version != "1.3" {
			t.Errorf("template %q version = %q", tmpl.Key, card.Version)
		}
	}
}

func TestGet(t *testing.T) {
	tmpl, err := Get("poll")
	if err != nil {
		t.Fatalf("Get(poll) failed: %v", err)
	}
	if tmpl.Name != "Quick Poll" {
		t.Errorf("Name = %q", tmpl.Name)
	}

	if _, err := Get("unknown"); err == nil {
		t.Error("Get should fail for an unknown key")
	}
}
