package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// PreviewRenderer turns the card JSON into an approximate textual
// rendition. It works from the JSON buffer, not the element list, so
// hand edits show up in the preview immediately.
type PreviewRenderer struct {
	width int
}

func NewPreviewRenderer(width int) *PreviewRenderer {
	if width < 20 {
		width = 20
	}
	return &PreviewRenderer{width: width}
}

func (r *PreviewRenderer) SetWidth(width int) {
	if width >= 20 {
		r.width = width
	}
}

type previewCard struct {
	Body    []map[string]any `json:"body"`
	Actions []map[string]any `json:"actions"`
}

// Render never fails. Invalid JSON becomes an inline error message so
// the rest of the screen keeps working while the user types.
func (r *PreviewRenderer) Render(cardJSON string) string {
	var card previewCard
	if err := json.Unmarshal([]byte(cardJSON), &card); err != nil {
		return errorStyle.Render(fmt.Sprintf("Preview unavailable: %v", err))
	}

	var lines []string
	if len(card.Body) == 0 {
		lines = append(lines, dimStyle.Render("(empty card)"))
	}
	for _, item := range card.Body {
		lines = append(lines, r.renderItem(item, r.width)...)
	}
	if len(card.Actions) > 0 {
		lines = append(lines, "", r.renderActions(card.Actions))
	}
	return strings.Join(lines, "\n")
}

func (r *PreviewRenderer) renderItem(item map[string]any, width int) []string {
	var lines []string
	if getBool(item, "separator") {
		lines = append(lines, dimStyle.Render(strings.Repeat("─", max(width-2, 4))))
	}
	if spacing := getString(item, "spacing"); spacing == "Medium" || spacing == "Large" || spacing == "ExtraLarge" {
		lines = append(lines, "")
	}

	switch getString(item, "type") {
	case "TextBlock":
		lines = append(lines, r.renderTextBlock(item, width))
	case "Image":
		lines = append(lines, dimStyle.Render("[Image] ")+getString(item, "url"))
	case "Input.Text", "Input.Number", "Input.Date", "Input.Time":
		lines = append(lines, r.renderInput(item))
	case "Input.Toggle":
		lines = append(lines, "[ ] "+getString(item, "title"))
	case "Input.ChoiceSet":
		lines = append(lines, r.renderChoiceSet(item)...)
	case "FactSet":
		lines = append(lines, r.renderFactSet(item)...)
	case "ColumnSet":
		lines = append(lines, r.renderColumnSet(item, width))
	case "Container":
		lines = append(lines, r.renderContainer(item, width)...)
	default:
		lines = append(lines, dimStyle.Render("["+getString(item, "type")+"]"))
	}
	return lines
}

func (r *PreviewRenderer) renderTextBlock(item map[string]any, width int) string {
	text := wordwrap.String(getString(item, "text"), width)
	style := lipgloss.NewStyle()
	switch getString(item, "weight") {
	case "Bolder":
		style = style.Bold(true)
	case "Lighter":
		style = style.Faint(true)
	}
	switch getString(item, "size") {
	case "Large", "ExtraLarge":
		style = style.Bold(true).Foreground(lipgloss.Color(ColorPrimary))
	case "Small":
		style = style.Faint(true)
	}
	switch getString(item, "color") {
	case "Good":
		style = style.Foreground(lipgloss.Color(ColorSuccess))
	case "Attention":
		style = style.Foreground(lipgloss.Color(ColorError))
	case "Warning":
		style = style.Foreground(lipgloss.Color(ColorActive))
	case "Accent":
		style = style.Foreground(lipgloss.Color(ColorHighlight))
	}
	return style.Render(text)
}

func (r *PreviewRenderer) renderInput(item map[string]any) string {
	label := getString(item, "label")
	placeholder := getString(item, "placeholder")
	if placeholder == "" {
		placeholder = getString(item, "type")
	}
	field := "[" + placeholder + "]"
	if label != "" {
		return labelStyle.Render(label) + " " + dimStyle.Render(field)
	}
	return dimStyle.Render(field)
}

func (r *PreviewRenderer) renderChoiceSet(item map[string]any) []string {
	lines := []string{dimStyle.Render("[Choices]")}
	choices, _ := item["choices"].([]any)
	for _, c := range choices {
		cm, ok := c.(map[string]any)
		if !ok {
			continue
		}
		lines = append(lines, "  ◦ "+getString(cm, "title"))
	}
	return lines
}

func (r *PreviewRenderer) renderFactSet(item map[string]any) []string {
	var lines []string
	facts, _ := item["facts"].([]any)
	for _, f := range facts {
		fm, ok := f.(map[string]any)
		if !ok {
			continue
		}
		lines = append(lines, labelStyle.Render(getString(fm, "title"))+"  "+getString(fm, "value"))
	}
	if len(lines) == 0 {
		lines = append(lines, dimStyle.Render("(no facts)"))
	}
	return lines
}

func (r *PreviewRenderer) renderColumnSet(item map[string]any, width int) string {
	columns, _ := item["columns"].([]any)
	if len(columns) == 0 {
		return dimStyle.Render("(empty columns)")
	}
	colWidth := max(width/len(columns)-1, 8)
	rendered := make([]string, 0, len(columns))
	for _, c := range columns {
		cm, ok := c.(map[string]any)
		if !ok {
			continue
		}
		items, _ := cm["items"].([]any)
		var sub []string
		for _, it := range items {
			im, ok := it.(map[string]any)
			if !ok {
				continue
			}
			sub = append(sub, r.renderItem(im, colWidth)...)
		}
		cell := lipgloss.NewStyle().Width(colWidth).Render(strings.Join(sub, "\n"))
		rendered = append(rendered, cell)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (r *PreviewRenderer) renderContainer(item map[string]any, width int) []string {
	items, _ := item["items"].([]any)
	var lines []string
	for _, it := range items {
		im, ok := it.(map[string]any)
		if !ok {
			continue
		}
		for _, l := range r.renderItem(im, width-2) {
			lines = append(lines, "│ "+l)
		}
	}
	if len(lines) == 0 {
		lines = append(lines, dimStyle.Render("│ (empty container)"))
	}
	return lines
}

func (r *PreviewRenderer) renderActions(actions []map[string]any) string {
	buttons := make([]string, 0, len(actions))
	buttonStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWhite)).
		Background(lipgloss.Color(ColorPrimary)).
		Padding(0, 1)
	for _, a := range actions {
		title := getString(a, "title")
		if title == "" {
			title = getString(a, "type")
		}
		buttons = append(buttons, buttonStyle.Render(title))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

func getString(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func getBool(m map[string]any, key string) bool {
	b, _ := m[key].(bool)
	return b
}
