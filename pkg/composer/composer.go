package composer

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/botdeck/botdeck-terminal/pkg/models"
)

// CardVersion is the adaptive-card schema version stamped on every document.
const CardVersion = "1.3"

// Document is the canonical card envelope exchanged with the Webex messages
// API and the preview renderer.
type Document struct {
	Type    string `json:"type"`
	Version string `json:"version"`
	Body    []any  `json:"body"`
	Actions []any  `json:"actions,omitempty"`
}

// JSON serializes the document pretty-printed with two-space indentation,
// the format shown in the designer's text buffer.
func (d *Document) JSON() (string, error) {
	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize card document: %w", err)
	}
	return string(out), nil
}

// Compose projects the ordered element and action lists into a card
// document. It is a pure function: no side effects, identical output for
// identical input. Shared properties equal to their defaults are suppressed
// so the serialized form stays minimal.
func Compose(elements []models.Element, actions []models.Action) *Document {
	body := make([]any, 0, len(elements))
	for _, el := range elements {
		body = append(body, projectElement(el))
	}

	doc := &Document{
		Type:    "AdaptiveCard",
		Version: CardVersion,
		Body:    body,
	}

	if len(actions) > 0 {
		projected := make([]any, 0, len(actions))
		for _, act := range actions {
			projected = append(projected, projectAction(act))
		}
		doc.Actions = projected
	}

	return doc
}

// commonProps are the shared layout fields; zero values marshal to nothing.
type commonProps struct {
	Spacing             string `json:"spacing,omitempty"`
	Separator           bool   `json:"separator,omitempty"`
	HorizontalAlignment string `json:"horizontalAlignment,omitempty"`
}

type textBlockBody struct {
	Type string `json:"type"`
	commonProps
	Text   string `json:"text"`
	Wrap   bool   `json:"wrap"`
	Size   string `json:"size,omitempty"`
	Weight string `json:"weight,omitempty"`
	Color  string `json:"color,omitempty"`
}

type imageBody struct {
	Type string `json:"type"`
	commonProps
	URL   string `json:"url"`
	Size  string `json:"size,omitempty"`
	Style string `json:"style,omitempty"`
}

type textInputBody struct {
	Type string `json:"type"`
	commonProps
	ID          string `json:"id"`
	Placeholder string `json:"placeholder,omitempty"`
	Label       string `json:"label,omitempty"`
	IsMultiline bool   `json:"isMultiline,omitempty"`
}

type numberInputBody struct {
	Type string `json:"type"`
	commonProps
	ID    string   `json:"id"`
	Label string   `json:"label,omitempty"`
	Min   *float64 `json:"min,omitempty"`
	Max   *float64 `json:"max,omitempty"`
}

type dateTimeInputBody struct {
	Type string `json:"type"`
	commonProps
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
}

type toggleInputBody struct {
	Type string `json:"type"`
	commonProps
	ID    string `json:"id"`
	Title string `json:"title"`
}

type choiceBody struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

type choiceSetBody struct {
	Type string `json:"type"`
	commonProps
	ID            string       `json:"id"`
	Label         string       `json:"label,omitempty"`
	Style         string       `json:"style"`
	IsMultiSelect bool         `json:"isMultiSelect,omitempty"`
	Choices       []choiceBody `json:"choices"`
}

type containerBody struct {
	Type string `json:"type"`
	commonProps
	Items []textBlockBody `json:"items"`
}

type factBody struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

type factSetBody struct {
	Type string `json:"type"`
	commonProps
	Facts []factBody `json:"facts"`
}

type columnBody struct {
	Type  string          `json:"type"`
	Width string          `json:"width"`
	Items []textBlockBody `json:"items"`
}

type columnSetBody struct {
	Type string `json:"type"`
	commonProps
	Columns []columnBody `json:"columns"`
}

func commonFor(base *models.ElementBase) commonProps {
	var c commonProps
	if base.Spacing != "" && base.Spacing != models.SpacingDefault {
		c.Spacing = base.Spacing
	}
	if base.Separator {
		c.Separator = true
	}
	if base.HorizontalAlignment != "" && base.HorizontalAlignment != models.AlignmentLeft {
		c.HorizontalAlignment = base.HorizontalAlignment
	}
	return c
}

func projectElement(el models.Element) any {
	common := commonFor(el.Base())

	switch e := el.(type) {
	case *models.TextBlock:
		body := textBlockBody{
			Type:        string(models.KindTextBlock),
			commonProps: common,
			Text:        e.Text,
			Wrap:        true,
		}
		if e.Size != "" && e.Size != models.SizeDefault {
			body.Size = e.Size
		}
		if e.Weight != "" && e.Weight != models.WeightDefault {
			body.Weight = e.Weight
		}
		if e.Color != "" && e.Color != models.ColorDefault {
			body.Color = e.Color
		}
		return body

	case *models.Image:
		body := imageBody{
			Type:        string(models.KindImage),
			commonProps: common,
			URL:         e.URL,
		}
		if e.Size != "" && e.Size != models.SizeAuto {
			body.Size = e.Size
		}
		if e.Style != "" && e.Style != models.StyleDefault {
			body.Style = e.Style
		}
		return body

	case *models.TextInput:
		return textInputBody{
			Type:        string(models.KindTextInput),
			commonProps: common,
			ID:          e.ID,
			Placeholder: e.Placeholder,
			Label:       e.Label,
			IsMultiline: e.Multiline,
		}

	case *models.NumberInput:
		return numberInputBody{
			Type:        string(models.KindNumber),
			commonProps: common,
			ID:          e.ID,
			Label:       e.Label,
			Min:         parseBound(e.Min),
			Max:         parseBound(e.Max),
		}

	case *models.DateInput:
		return dateTimeInputBody{
			Type:        string(models.KindDate),
			commonProps: common,
			ID:          e.ID,
			Label:       e.Label,
		}

	case *models.TimeInput:
		return dateTimeInputBody{
			Type:        string(models.KindTime),
			commonProps: common,
			ID:          e.ID,
			Label:       e.Label,
		}

	case *models.ToggleInput:
		title := e.Title
		if title == "" {
			title = "Toggle option"
		}
		return toggleInputBody{
			Type:        string(models.KindToggle),
			commonProps: common,
			ID:          e.ID,
			Title:       title,
		}

	case *models.ChoiceSetInput:
		style := e.Style
		if style == "" {
			style = models.StyleCompact
		}
		return choiceSetBody{
			Type:          string(models.KindChoiceSet),
			commonProps:   common,
			ID:            e.ID,
			Label:         e.Label,
			Style:         style,
			IsMultiSelect: e.MultiSelect,
			Choices:       deriveChoices(e.Choices),
		}

	case *models.Container:
		// Child content is not preserved: each stored child projects to a
		// fixed placeholder block. Re-derivation is deliberately lossy.
		items := make([]textBlockBody, 0, len(e.Items))
		for range e.Items {
			items = append(items, textBlockBody{
				Type: string(models.KindTextBlock),
				Text: "Container item",
				Wrap: true,
			})
		}
		return containerBody{
			Type:        string(models.KindContainer),
			commonProps: common,
			Items:       items,
		}

	case *models.FactSet:
		facts := make([]factBody, 0, len(e.Facts))
		for _, f := range e.Facts {
			facts = append(facts, factBody{Title: f.Title, Value: f.Value})
		}
		return factSetBody{
			Type:        string(models.KindFactSet),
			commonProps: common,
			Facts:       facts,
		}

	case *models.ColumnSet:
		columns := make([]columnBody, 0, len(e.Columns))
		for _, col := range e.Columns {
			text := col.Text
			if text == "" {
				text = "Column content"
			}
			columns = append(columns, columnBody{
				Type:  "Column",
				Width: "stretch",
				Items: []textBlockBody{{
					Type: string(models.KindTextBlock),
					Text: text,
					Wrap: true,
				}},
			})
		}
		return columnSetBody{
			Type:        string(models.KindColumnSet),
			commonProps: common,
			Columns:     columns,
		}

	default:
		// Unreachable for the closed element set.
		return map[string]string{"type": string(el.Kind())}
	}
}

// deriveChoices splits the comma-delimited choice string into titled choices
// with sequential 1-based values.
func deriveChoices(raw string) []choiceBody {
	parts := strings.Split(raw, ",")
	choices := make([]choiceBody, 0, len(parts))
	for i, part := range parts {
		choices = append(choices, choiceBody{
			Title: strings.TrimSpace(part),
			Value: fmt.Sprintf("choice%d", i+1),
		})
	}
	return choices
}

// parseBound parses a numeric bound the user typed. Values that do not parse
// are omitted from the projection rather than emitted as garbage.
func parseBound(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

type actionBody struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}

func projectAction(act models.Action) any {
	body := actionBody{
		Type:  string(act.Kind()),
		Title: act.ActionTitle(),
	}
	// ShowCard's nested card payload is intentionally not emitted; the
	// variant is unsupported beyond its button.
	if open, ok := act.(*models.OpenURLAction); ok {
		body.URL = open.URL
	}
	return body
}
