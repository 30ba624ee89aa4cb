package tui

import (
	"strings"
	"testing"

	"github.com/botdeck/botdeck-terminal/pkg/composer"
	"github.com/botdeck/botdeck-terminal/pkg/models"
)

func TestPreviewInvalidJSONIsInlineError(t *testing.T) {
	r := NewPreviewRenderer(60)
	out := r.Render("{ not json at all")
	if !strings.Contains(out, "Preview unavailable") {
		t.Errorf("invalid JSON should render an inline error, got:\n%s", out)
	}

	// A later valid buffer renders normally again.
	out = r.Render(`{"type":"AdaptiveCard","version":"1.3","body":[{"type":"TextBlock","text":"Back","wrap":true}]}`)
	if !strings.Contains(out, "Back") {
		t.Errorf("renderer did not recover: %s", out)
	}
}

func TestPreviewEmptyCard(t *testing.T) {
	r := NewPreviewRenderer(60)
	out := r.Render(`{"type":"AdaptiveCard","version":"1.3","body":[]}`)
	if !strings.Contains(out, "empty card") {
		t.Errorf("empty card placeholder missing: %s", out)
	}
}

func TestPreviewRendersComposedCard(t *testing.T) {
	text, _ := models.NewElement(models.KindTextBlock)
	text.(*models.TextBlock).Text = "Release 2.0 shipped"
	facts, _ := models.NewElement(models.KindFactSet)
	image, _ := models.NewElement(models.KindImage)
	submit, _ := models.NewAction(models.ActionSubmit)

	doc := composer.Compose([]models.Element{text, facts, image}, []models.Action{submit})
	buf, err := doc.JSON()
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	out := NewPreviewRenderer(60).Render(buf)
	for _, want := range []string{
		"Release 2.0 shipped",
		"Title",
		"[Image]",
		"Submit",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q:\n%s", want, out)
		}
	}
}

func TestPreviewChoicesAndColumns(t *testing.T) {
	choices, _ := models.NewElement(models.KindChoiceSet)
	cols, _ := models.NewElement(models.KindColumnSet)

	doc := composer.Compose([]models.Element{choices, cols}, nil)
	buf, err := doc.JSON()
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	out := NewPreviewRenderer(80).Render(buf)
	for _, want := range []string{"Option 1", "Option 3", "Column 1", "Column 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q:\n%s", want, out)
		}
	}
}
