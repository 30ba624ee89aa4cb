package composer

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/botdeck/botdeck-terminal/pkg/models"
)

func mustElement(t *testing.T, kind models.ElementKind) models.Element {
	t.Helper()
	el, err := models.NewElement(kind)
	if err != nil {
		t.Fatalf("NewElement(%s) failed: %v", kind, err)
	}
	return el
}

func projectOne(t *testing.T, el models.Element) map[string]any {
	t.Helper()
	doc := Compose([]models.Element{el}, nil)
	out, err := doc.JSON()
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	var parsed struct {
		Body []map[string]any `json:"body"`
	}
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(parsed.Body) != 1 {
		t.Fatalf("expected 1 body item, got %d", len(parsed.Body))
	}
	return parsed.Body[0]
}

func TestComposeEnvelope(t *testing.T) {
	doc := Compose(nil, nil)
	if doc.Type != "AdaptiveCard" {
		t.Errorf("Type = %q, want AdaptiveCard", doc.Type)
	}
	if doc.Version != "1.3" {
		t.Errorf("Version = %q, want 1.3", doc.Version)
	}

	out, err := doc.JSON()
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	// Empty body is an array, not null; actions key is absent entirely.
	if !strings.Contains(out, `"body": []`) {
		t.Errorf("empty body should serialize as []: %s", out)
	}
	if strings.Contains(out, `"actions"`) {
		t.Errorf("actions key should be absent when no actions exist: %s", out)
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	elements := []models.Element{
		mustElement(t, models.KindTextBlock),
		mustElement(t, models.KindChoiceSet),
		mustElement(t, models.KindFactSet),
	}
	act, _ := models.NewAction(models.ActionSubmit)
	actions := []models.Action{act}

	first, err := Compose(elements, actions).JSON()
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Compose(elements, actions).JSON()
		if err != nil {
			t.Fatalf("JSON failed: %v", err)
		}
		if again != first {
			t.Fatalf("projection is not deterministic:\nfirst:\n%s\nagain:\n%s", first, again)
		}
	}
}

func TestTextBlockDefaultSuppression(t *testing.T) {
	el := mustElement(t, models.KindTextBlock)
	body := projectOne(t, el)

	// A freshly created TextBlock carries only type, text, and wrap.
	want := map[string]any{"type": "TextBlock", "text": "Your text here", "wrap": true}
	if len(body) != len(want) {
		t.Errorf("default TextBlock has extra keys: %v", body)
	}
	for k, v := range want {
		if body[k] != v {
			t.Errorf("body[%q] = %v, want %v", k, body[k], v)
		}
	}
}

func TestTextBlockNonDefaultsEmitted(t *testing.T) {
	el := mustElement(t, models.KindTextBlock).(*models.TextBlock)
	el.Text = "Heading"
	el.Size = "Large"
	el.Weight = "Bolder"
	el.Color = "Good"
	el.Spacing = "Medium"
	el.Separator = true
	el.HorizontalAlignment = "Center"

	body := projectOne(t, el)
	checks := map[string]any{
		"size":                "Large",
		"weight":              "Bolder",
		"color":               "Good",
		"spacing":             "Medium",
		"separator":           true,
		"horizontalAlignment": "Center",
	}
	for k, v := range checks {
		if body[k] != v {
			t.Errorf("body[%q] = %v, want %v", k, body[k], v)
		}
	}
}

func TestImageProjection(t *testing.T) {
	el := mustElement(t, models.KindImage).(*models.Image)
	body := projectOne(t, el)

	if body["url"] != "https://via.placeholder.com/400x200" {
		t.Errorf("url = %v", body["url"])
	}
	// Auto size and Default style are suppressed.
	if _, ok := body["size"]; ok {
		t.Errorf("Auto size should be suppressed")
	}
	if _, ok := body["style"]; ok {
		t.Errorf("Default style should be suppressed")
	}

	el.Size = "Stretch"
	el.Style = "Person"
	body = projectOne(t, el)
	if body["size"] != "Stretch" || body["style"] != "Person" {
		t.Errorf("non-default size/style missing: %v", body)
	}
}

func TestInputCarriesStableID(t *testing.T) {
	el := mustElement(t, models.KindTextInput)
	body := projectOne(t, el)
	if body["id"] != el.ElementID() {
		t.Errorf("id = %v, want %v", body["id"], el.ElementID())
	}
	if body["placeholder"] != "Enter value..." {
		t.Errorf("placeholder = %v", body["placeholder"])
	}
	if body["label"] != "Label" {
		t.Errorf("label = %v", body["label"])
	}
}

func TestNumberInputBounds(t *testing.T) {
	el := mustElement(t, models.KindNumber).(*models.NumberInput)
	el.Min = "1"
	el.Max = "10"
	body := projectOne(t, el)
	if body["min"] != float64(1) || body["max"] != float64(10) {
		t.Errorf("bounds = %v / %v", body["min"], body["max"])
	}

	// Unparsable bounds are omitted, not emitted as garbage.
	el.Min = "abc"
	el.Max = ""
	body = projectOne(t, el)
	if _, ok := body["min"]; ok {
		t.Errorf("unparsable min should be omitted")
	}
	if _, ok := body["max"]; ok {
		t.Errorf("empty max should be omitted")
	}
}

func TestToggleTitleFallback(t *testing.T) {
	el := mustElement(t, models.KindToggle).(*models.ToggleInput)
	el.Title = ""
	body := projectOne(t, el)
	if body["title"] != "Toggle option" {
		t.Errorf("empty title should fall back: %v", body["title"])
	}
}

func TestChoiceDerivation(t *testing.T) {
	el := mustElement(t, models.KindChoiceSet).(*models.ChoiceSetInput)
	el.Choices = "Yes, No ,  Maybe"
	body := projectOne(t, el)

	choices, ok := body["choices"].([]any)
	if !ok {
		t.Fatalf("choices missing: %v", body)
	}
	wantTitles := []string{"Yes", "No", "Maybe"}
	wantValues := []string{"choice1", "choice2", "choice3"}
	if len(choices) != 3 {
		t.Fatalf("got %d choices, want 3", len(choices))
	}
	for i, c := range choices {
		cm := c.(map[string]any)
		if cm["title"] != wantTitles[i] {
			t.Errorf("choice %d title = %v, want %s", i, cm["title"], wantTitles[i])
		}
		if cm["value"] != wantValues[i] {
			t.Errorf("choice %d value = %v, want %s", i, cm["value"], wantValues[i])
		}
	}
	if body["style"] != "compact" {
		t.Errorf("style = %v, want compact", body["style"])
	}
}

func TestContainerPlaceholderItems(t *testing.T) {
	el := mustElement(t, models.KindContainer).(*models.Container)
	el.Items = []models.ContainerItem{{Text: "one"}, {Text: "two"}}
	body := projectOne(t, el)

	items, ok := body["items"].([]any)
	if !ok {
		t.Fatalf("items missing: %v", body)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	// Stored child text does not survive projection.
	for _, it := range items {
		im := it.(map[string]any)
		if im["text"] != "Container item" {
			t.Errorf("container child text = %v, want placeholder", im["text"])
		}
	}
}

func TestColumnSetProjection(t *testing.T) {
	el := mustElement(t, models.KindColumnSet).(*models.ColumnSet)
	el.Columns[1].Text = ""
	body := projectOne(t, el)

	columns, ok := body["columns"].([]any)
	if !ok {
		t.Fatalf("columns missing: %v", body)
	}
	first := columns[0].(map[string]any)
	if first["width"] != "stretch" {
		t.Errorf("column width = %v, want stretch", first["width"])
	}
	firstItems := first["items"].([]any)
	if firstItems[0].(map[string]any)["text"] != "Column 1" {
		t.Errorf("column 1 text lost: %v", firstItems)
	}
	second := columns[1].(map[string]any)
	secondItems := second["items"].([]any)
	if secondItems[0].(map[string]any)["text"] != "Column content" {
		t.Errorf("empty column should get fallback text: %v", secondItems)
	}
}

func TestActionProjection(t *testing.T) {
	submit, _ := models.NewAction(models.ActionSubmit)
	open, _ := models.NewAction(models.ActionOpenURL)
	show, _ := models.NewAction(models.ActionShowCard)

	doc := Compose(nil, []models.Action{submit, open, show})
	out, err := doc.JSON()
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	var parsed struct {
		Actions []map[string]any `json:"actions"`
	}
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(parsed.Actions) != 3 {
		t.Fatalf("got %d actions, want 3", len(parsed.Actions))
	}

	if parsed.Actions[0]["type"] != "Action.Submit" || parsed.Actions[0]["title"] != "Submit" {
		t.Errorf("submit action wrong: %v", parsed.Actions[0])
	}
	if parsed.Actions[1]["url"] != "https://example.com" {
		t.Errorf("open url action missing url: %v", parsed.Actions[1])
	}
	if _, ok := parsed.Actions[0]["url"]; ok {
		t.Errorf("submit action must not carry a url")
	}
	// ShowCard emits only its button; no nested card payload.
	if _, ok := parsed.Actions[2]["card"]; ok {
		t.Errorf("show card action must not embed a card")
	}
}

func TestComposeEndToEnd(t *testing.T) {
	text := mustElement(t, models.KindTextBlock).(*models.TextBlock)
	text.Text = "Hello"
	choices := mustElement(t, models.KindChoiceSet).(*models.ChoiceSetInput)
	choices.Choices = "Yes,No"
	submit, _ := models.NewAction(models.ActionSubmit)

	doc := Compose([]models.Element{text, choices}, []models.Action{submit})
	out, err := doc.JSON()
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	for _, want := range []string{
		`"type": "AdaptiveCard"`,
		`"version": "1.3"`,
		`"text": "Hello"`,
		`"title": "Yes"`,
		`"value": "choice2"`,
		`"type": "Action.Submit"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
}
