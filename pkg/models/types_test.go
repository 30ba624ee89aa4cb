package models

import "testing"

func TestNewElementDefaults(t *testing.T) {
	tests := []struct {
		kind  ElementKind
		check func(t *testing.T, el Element)
	}{
		{KindTextBlock, func(t *testing.T, el Element) {
			tb := el.(*TextBlock)
			if tb.Text != "Your text here" {
				t.Errorf("Text = %q", tb.Text)
			}
			if tb.Size != SizeDefault || tb.Weight != WeightDefault || tb.Color != ColorDefault {
				t.Errorf("style defaults wrong: %+v", tb)
			}
		}},
		{KindImage, func(t *testing.T, el Element) {
			img := el.(*Image)
			if img.URL != "https://via.placeholder.com/400x200" {
				t.Errorf("URL = %q", img.URL)
			}
			if img.Size != SizeAuto {
				t.Errorf("Size = %q, want Auto", img.Size)
			}
		}},
		{KindTextInput, func(t *testing.T, el Element) {
			in := el.(*TextInput)
			if in.Label != "Label" || in.Placeholder != "Enter value..." {
				t.Errorf("input defaults wrong: %+v", in)
			}
			if in.Multiline {
				t.Errorf("Multiline should default off")
			}
		}},
		{KindToggle, func(t *testing.T, el Element) {
			if el.(*ToggleInput).Title != "Toggle option" {
				t.Errorf("Title = %q", el.(*ToggleInput).Title)
			}
		}},
		{KindChoiceSet, func(t *testing.T, el Element) {
			cs := el.(*ChoiceSetInput)
			if cs.Choices != "Option 1,Option 2,Option 3" {
				t.Errorf("Choices = %q", cs.Choices)
			}
			if cs.Style != StyleCompact {
				t.Errorf("Style = %q", cs.Style)
			}
		}},
		{KindColumnSet, func(t *testing.T, el Element) {
			cols := el.(*ColumnSet).Columns
			if len(cols) != 2 || cols[0].Text != "Column 1" || cols[1].Text != "Column 2" {
				t.Errorf("columns = %+v", cols)
			}
		}},
		{KindContainer, func(t *testing.T, el Element) {
			if len(el.(*Container).Items) != 0 {
				t.Errorf("new container should be empty")
			}
		}},
		{KindFactSet, func(t *testing.T, el Element) {
			facts := el.(*FactSet).Facts
			if len(facts) != 1 || facts[0].Title != "Title" || facts[0].Value != "Value" {
				t.Errorf("facts = %+v", facts)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			el, err := NewElement(tt.kind)
			if err != nil {
				t.Fatalf("NewElement failed: %v", err)
			}
			if el.Kind() != tt.kind {
				t.Errorf("Kind() = %s", el.Kind())
			}
			base := el.Base()
			if base.ID == "" {
				t.Error("element should get an id")
			}
			if base.Spacing != SpacingDefault || base.Separator || base.HorizontalAlignment != AlignmentLeft {
				t.Errorf("base defaults wrong: %+v", base)
			}
			tt.check(t, el)
		})
	}
}

func TestNewElementUnknownKind(t *testing.T) {
	if _, err := NewElement("Bogus"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate id: %s", id)
		}
		seen[id] = true
	}
}

func TestNewActionDefaults(t *testing.T) {
	submit, err := NewAction(ActionSubmit)
	if err != nil {
		t.Fatalf("NewAction failed: %v", err)
	}
	if submit.ActionTitle() != "Submit" {
		t.Errorf("submit title = %q", submit.ActionTitle())
	}

	open, _ := NewAction(ActionOpenURL)
	if open.ActionTitle() != "Open Link" {
		t.Errorf("open url title = %q", open.ActionTitle())
	}
	if open.(*OpenURLAction).URL != "https://example.com" {
		t.Errorf("open url = %q", open.(*OpenURLAction).URL)
	}

	show, _ := NewAction(ActionShowCard)
	if show.ActionTitle() != "Show Card" {
		t.Errorf("show card title = %q", show.ActionTitle())
	}

	if _, err := NewAction("Action.Bogus"); err == nil {
		t.Error("expected error for unknown action kind")
	}
}
