package designer

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/botdeck/botdeck-terminal/pkg/models"
	"github.com/botdeck/botdeck-terminal/pkg/templates"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession("blank")
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s
}

func TestNewSessionSeedsTemplate(t *testing.T) {
	s := newTestSession(t)
	tmpl, _ := templates.Get("blank")
	if s.Text() != tmpl.Document {
		t.Errorf("buffer should hold the template document verbatim")
	}
	if s.Template() != "blank" {
		t.Errorf("Template() = %q", s.Template())
	}
	if len(s.Elements()) != 0 || len(s.Actions()) != 0 {
		t.Errorf("fresh session should have empty lists")
	}
}

func TestNewSessionUnknownTemplate(t *testing.T) {
	if _, err := NewSession("nope"); err == nil {
		t.Fatal("expected error for unknown template")
	}
}

func TestAddElementSyncsBuffer(t *testing.T) {
	s := newTestSession(t)
	el, err := s.AddElement(models.KindTextBlock)
	if err != nil {
		t.Fatalf("AddElement failed: %v", err)
	}
	if len(s.Elements()) != 1 {
		t.Fatalf("element not added")
	}
	if !strings.Contains(s.Text(), `"text": "Your text here"`) {
		t.Errorf("buffer not re-projected after add:\n%s", s.Text())
	}
	if el.ElementID() == "" {
		t.Errorf("element should get an id")
	}
}

func TestUpdateElementPatchSemantics(t *testing.T) {
	s := newTestSession(t)
	el, _ := s.AddElement(models.KindTextBlock)
	id := el.ElementID()

	err := s.UpdateElement(id, func(e models.Element) {
		e.(*models.TextBlock).Text = "Hello"
	})
	if err != nil {
		t.Fatalf("UpdateElement failed: %v", err)
	}

	got := s.Elements()[0].(*models.TextBlock)
	if got.Text != "Hello" {
		t.Errorf("Text = %q", got.Text)
	}
	// Untouched fields keep their values; id and kind are stable.
	if got.Size != models.SizeDefault {
		t.Errorf("Size changed by unrelated update: %q", got.Size)
	}
	if got.ElementID() != id {
		t.Errorf("id changed across update")
	}
	if !strings.Contains(s.Text(), `"text": "Hello"`) {
		t.Errorf("buffer not re-projected after update")
	}
}

func TestUpdateElementUnknownID(t *testing.T) {
	s := newTestSession(t)
	if err := s.UpdateElement("missing", func(models.Element) {}); err == nil {
		t.Fatal("expected error for unknown id")
	}
}

func TestRemoveElement(t *testing.T) {
	s := newTestSession(t)
	first, _ := s.AddElement(models.KindTextBlock)
	second, _ := s.AddElement(models.KindImage)

	if err := s.RemoveElement(first.ElementID()); err != nil {
		t.Fatalf("RemoveElement failed: %v", err)
	}
	els := s.Elements()
	if len(els) != 1 || els[0].ElementID() != second.ElementID() {
		t.Errorf("wrong element removed: %v", els)
	}
	if err := s.RemoveElement("missing"); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestMoveElementReordersProjection(t *testing.T) {
	s := newTestSession(t)
	a, _ := s.AddElement(models.KindTextBlock)
	b, _ := s.AddElement(models.KindImage)
	c, _ := s.AddElement(models.KindFactSet)

	if err := s.MoveElement(0, 2); err != nil {
		t.Fatalf("MoveElement failed: %v", err)
	}
	got := s.Elements()
	wantOrder := []string{b.ElementID(), c.ElementID(), a.ElementID()}
	for i, w := range wantOrder {
		if got[i].ElementID() != w {
			t.Errorf("position %d: got %s, want %s", i, got[i].ElementID(), w)
		}
	}

	// Projection order follows list order.
	var parsed struct {
		Body []map[string]any `json:"body"`
	}
	if err := json.Unmarshal([]byte(s.Text()), &parsed); err != nil {
		t.Fatalf("buffer invalid: %v", err)
	}
	wantTypes := []string{"Image", "FactSet", "TextBlock"}
	for i, w := range wantTypes {
		if parsed.Body[i]["type"] != w {
			t.Errorf("body[%d] type = %v, want %s", i, parsed.Body[i]["type"], w)
		}
	}

	if err := s.MoveElement(0, 9); err == nil {
		t.Error("out of range move should fail")
	}
}

func TestSetTemplateResetsEverything(t *testing.T) {
	s := newTestSession(t)
	s.AddElement(models.KindTextBlock)
	s.AddAction(models.ActionSubmit)

	if err := s.SetTemplate("poll"); err != nil {
		t.Fatalf("SetTemplate failed: %v", err)
	}
	if len(s.Elements()) != 0 || len(s.Actions()) != 0 {
		t.Errorf("template switch should clear both lists")
	}
	tmpl, _ := templates.Get("poll")
	if s.Text() != tmpl.Document {
		t.Errorf("buffer should hold the new template verbatim")
	}

	// Unknown key leaves the session untouched.
	if err := s.SetTemplate("nope"); err == nil {
		t.Fatal("expected error for unknown template")
	}
	if s.Template() != "poll" || s.Text() != tmpl.Document {
		t.Errorf("failed switch must not change the session")
	}
}

func TestManualEditOverwrittenByNextMutation(t *testing.T) {
	s := newTestSession(t)
	s.AddElement(models.KindTextBlock)

	s.SetText("{ not even json")
	if s.Text() != "{ not even json" {
		t.Errorf("manual edit not recorded")
	}
	// The structured list is untouched by the edit.
	if len(s.Elements()) != 1 {
		t.Errorf("manual edit must not change the element list")
	}

	// The next structural mutation re-projects and discards the edit.
	s.AddElement(models.KindImage)
	if strings.Contains(s.Text(), "not even json") {
		t.Errorf("manual edit should be overwritten by mutation")
	}
	if !strings.Contains(s.Text(), `"type": "Image"`) {
		t.Errorf("buffer should reflect the mutation:\n%s", s.Text())
	}
}

func TestLoadDocumentBehavesLikeManualEdit(t *testing.T) {
	s := newTestSession(t)
	s.AddElement(models.KindTextBlock)

	doc := `{"type":"AdaptiveCard","version":"1.3","body":[]}`
	s.LoadDocument(doc)
	if s.Text() != doc {
		t.Errorf("buffer should hold the loaded document")
	}
	if len(s.Elements()) != 0 {
		t.Errorf("load should clear the element list")
	}

	// No reverse parse: a mutation rebuilds from the (now empty) lists.
	s.AddElement(models.KindTextBlock)
	if len(s.Elements()) != 1 {
		t.Errorf("expected exactly the newly added element")
	}
}

func TestActionLifecycle(t *testing.T) {
	s := newTestSession(t)
	act, err := s.AddAction(models.ActionOpenURL)
	if err != nil {
		t.Fatalf("AddAction failed: %v", err)
	}
	if !strings.Contains(s.Text(), `"url": "https://example.com"`) {
		t.Errorf("buffer missing action url:\n%s", s.Text())
	}

	err = s.UpdateAction(act.ActionID(), func(a models.Action) {
		a.(*models.OpenURLAction).Title = "Docs"
	})
	if err != nil {
		t.Fatalf("UpdateAction failed: %v", err)
	}
	if !strings.Contains(s.Text(), `"title": "Docs"`) {
		t.Errorf("buffer missing updated title")
	}

	if err := s.RemoveAction(act.ActionID()); err != nil {
		t.Fatalf("RemoveAction failed: %v", err)
	}
	if strings.Contains(s.Text(), `"actions"`) {
		t.Errorf("actions key should disappear with the last action")
	}
}
