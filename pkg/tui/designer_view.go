package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/botdeck/botdeck-terminal/pkg/models"
	"github.com/botdeck/botdeck-terminal/pkg/templates"
)

func (m *DesignerModel) View() string {
	left := m.leftColumn()
	right := m.rightColumn()
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.helpLine())
}

func (m *DesignerModel) leftColumn() string {
	width := m.leftPaneWidth()
	switch m.mode {
	case modeFields, modeFieldInput:
		return activePaneStyle.Width(width).Render(m.fieldsView())
	case modeTemplates:
		return activePaneStyle.Width(width).Render(m.templatesView())
	case modeDraftName:
		return activePaneStyle.Width(width).Render(
			titleStyle.Render("Save draft") + "\n\n" + m.nameInput.View(),
		)
	case modeDraftPick:
		return activePaneStyle.Width(width).Render(m.draftPickView())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		paneStyle(m.pane == palettePane).Width(width).Render(m.paletteView()),
		paneStyle(m.pane == elementsPane).Width(width).Render(m.elementsView()),
		paneStyle(m.pane == actionsPane).Width(width).Render(m.actionsView()),
	)
}

func (m *DesignerModel) rightColumn() string {
	width := m.rightPaneWidth()
	if m.mode == modeJSON {
		return activePaneStyle.Width(width).Render(
			titleStyle.Render("Card JSON") + "\n" + m.jsonEditor.View(),
		)
	}
	if !m.settings.UI.ShowPreview {
		return inactivePaneStyle.Width(width).Render(
			titleStyle.Render("Card JSON") + "\n\n" + m.session.Text(),
		)
	}
	header := titleStyle.Render("Preview")
	if m.sending {
		header += dimStyle.Render("  sending...")
	}
	return inactivePaneStyle.Width(width).Render(
		header + "\n\n" + m.preview.Render(m.session.Text()),
	)
}

func (m *DesignerModel) paletteView() string {
	lines := []string{titleStyle.Render("Add element")}
	for i, kind := range models.ElementKinds {
		if m.pane == palettePane && i == m.paletteCursor {
			lines = append(lines, selectedItemStyle.Render("▸ "+string(kind)))
		} else {
			lines = append(lines, "  "+string(kind))
		}
	}
	return strings.Join(lines, "\n")
}

func (m *DesignerModel) elementsView() string {
	els := m.session.Elements()
	lines := []string{titleStyle.Render("Card elements")}
	if len(els) == 0 {
		lines = append(lines, dimStyle.Render("(none — add from the palette)"))
	}
	for i, el := range els {
		label := string(el.Kind()) + dimStyle.Render("  "+elementSummary(el))
		if m.pane == elementsPane && i == m.elementCursor {
			lines = append(lines, selectedItemStyle.Render("▸ "+string(el.Kind()))+dimStyle.Render("  "+elementSummary(el)))
		} else {
			lines = append(lines, "  "+label)
		}
	}
	return strings.Join(lines, "\n")
}

func (m *DesignerModel) actionsView() string {
	acts := m.session.Actions()
	lines := []string{titleStyle.Render("Actions")}
	if len(acts) == 0 {
		lines = append(lines, dimStyle.Render("(none — 1: Submit  2: Open URL  3: Show Card)"))
	}
	for i, act := range acts {
		label := act.ActionTitle() + dimStyle.Render("  "+string(act.Kind()))
		if m.pane == actionsPane && i == m.actionCursor {
			lines = append(lines, selectedItemStyle.Render("▸ "+act.ActionTitle())+dimStyle.Render("  "+string(act.Kind())))
		} else {
			lines = append(lines, "  "+label)
		}
	}
	return strings.Join(lines, "\n")
}

// elementSummary is the short identifying text shown next to an element's
// kind in the list.
func elementSummary(el models.Element) string {
	var s string
	switch el := el.(type) {
	case *models.TextBlock:
		s = el.Text
	case *models.Image:
		s = el.URL
	case *models.TextInput:
		s = el.Label
	case *models.NumberInput:
		s = el.Label
	case *models.DateInput:
		s = el.Label
	case *models.TimeInput:
		s = el.Label
	case *models.ToggleInput:
		s = el.Title
	case *models.ChoiceSetInput:
		s = el.Choices
	case *models.ColumnSet:
		s = fmt.Sprintf("%d columns", len(el.Columns))
	case *models.Container:
		s = fmt.Sprintf("%d items", len(el.Items))
	case *models.FactSet:
		s = fmt.Sprintf("%d facts", len(el.Facts))
	}
	if len(s) > 28 {
		s = s[:25] + "..."
	}
	return s
}

func (m *DesignerModel) fieldsView() string {
	lines := []string{titleStyle.Render("Edit " + m.fieldTarget.label)}
	for i, f := range m.fields {
		value := f.get()
		if f.kind == fieldEnum {
			value = "◂ " + value + " ▸"
		}
		if f.kind == fieldBool {
			if value == "true" {
				value = "[x]"
			} else {
				value = "[ ]"
			}
		}
		row := labelStyle.Render(f.label) + "  " + value
		if i == m.fieldCursor {
			if m.mode == modeFieldInput && f.kind == fieldText {
				row = labelStyle.Render(f.label) + "  " + m.fieldInput.View()
			} else {
				row = selectedItemStyle.Render("▸") + " " + row
				lines = append(lines, row)
				continue
			}
		} else {
			row = "  " + row
		}
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n")
}

func (m *DesignerModel) templatesView() string {
	lines := []string{titleStyle.Render("Templates")}
	for i, t := range templates.All() {
		if i == m.templateCursor {
			lines = append(lines, selectedItemStyle.Render("▸ "+t.Name))
		} else {
			lines = append(lines, "  "+t.Name)
		}
	}
	lines = append(lines, "", dimStyle.Render("Switching replaces the current card."))
	return strings.Join(lines, "\n")
}

func (m *DesignerModel) draftPickView() string {
	lines := []string{titleStyle.Render("Load draft")}
	for i, name := range m.draftNames {
		if i == m.draftCursor {
			lines = append(lines, selectedItemStyle.Render("▸ "+name))
		} else {
			lines = append(lines, "  "+name)
		}
	}
	return strings.Join(lines, "\n")
}

func (m *DesignerModel) helpLine() string {
	switch m.mode {
	case modeFields:
		return helpStyle.Render(" ↑/↓: field • enter: edit • ←/→: cycle • +/-: add/remove item • esc: back")
	case modeFieldInput:
		return helpStyle.Render(" enter: apply • esc: cancel")
	case modeTemplates, modeDraftPick:
		return helpStyle.Render(" ↑/↓: navigate • enter: select • esc: cancel")
	case modeDraftName:
		return helpStyle.Render(" enter: save • esc: cancel")
	case modeJSON:
		return helpStyle.Render(" esc: done editing")
	}
	return helpStyle.Render(" ←/→: pane • enter: add/edit • d: delete • shift+↑/↓: reorder • t: template • e: edit JSON • y: copy • ctrl+s: save • ctrl+o: open • ctrl+g: send")
}
