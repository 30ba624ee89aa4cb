package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/botdeck/botdeck-terminal/pkg/models"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldBool
	fieldEnum
)

type fieldSpec struct {
	label   string
	kind    fieldKind
	options []string
	get     func() string
	set     func(string)
}

type fieldTarget struct {
	id       string
	isAction bool
	label    string
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func (m *DesignerModel) openElementFields(el models.Element) {
	m.fieldTarget = fieldTarget{id: el.ElementID(), label: string(el.Kind())}
	m.fields = m.elementFields(el)
	m.fieldCursor = 0
	m.mode = modeFields
}

func (m *DesignerModel) openActionFields(act models.Action) {
	m.fieldTarget = fieldTarget{id: act.ActionID(), isAction: true, label: string(act.Kind())}
	m.fields = m.actionFields(act)
	m.fieldCursor = 0
	m.mode = modeFields
}

// rebuildFields refreshes the field list after a structural change to the
// target, such as adding a fact or a column.
func (m *DesignerModel) rebuildFields() {
	cursor := m.fieldCursor
	if m.fieldTarget.isAction {
		for _, act := range m.session.Actions() {
			if act.ActionID() == m.fieldTarget.id {
				m.fields = m.actionFields(act)
				break
			}
		}
	} else {
		for _, el := range m.session.Elements() {
			if el.ElementID() == m.fieldTarget.id {
				m.fields = m.elementFields(el)
				break
			}
		}
	}
	m.fieldCursor = clamp(cursor, 0, len(m.fields)-1)
	m.mode = modeFields
}

func (m *DesignerModel) updateFields(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		return nil
	case "up", "k":
		m.fieldCursor = clamp(m.fieldCursor-1, 0, len(m.fields)-1)
	case "down", "j":
		m.fieldCursor = clamp(m.fieldCursor+1, 0, len(m.fields)-1)
	case "+":
		m.growTarget()
	case "-":
		m.shrinkTarget()
	case "enter", " ", "left", "right":
		if m.fieldCursor >= len(m.fields) {
			return nil
		}
		field := m.fields[m.fieldCursor]
		switch field.kind {
		case fieldText:
			if msg.String() != "enter" {
				return nil
			}
			m.fieldInput.SetValue(field.get())
			m.fieldInput.CursorEnd()
			m.mode = modeFieldInput
			return m.fieldInput.Focus()
		case fieldBool:
			field.set(boolString(field.get() != "true"))
		case fieldEnum:
			delta := 1
			if msg.String() == "left" {
				delta = -1
			}
			field.set(cycleOption(field.options, field.get(), delta))
		}
	}
	return nil
}

func (m *DesignerModel) updateFieldInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.fieldInput.Blur()
		m.mode = modeFields
		return nil
	case "enter":
		if m.fieldCursor < len(m.fields) {
			m.fields[m.fieldCursor].set(m.fieldInput.Value())
		}
		m.fieldInput.Blur()
		m.mode = modeFields
		return nil
	}
	var cmd tea.Cmd
	m.fieldInput, cmd = m.fieldInput.Update(msg)
	return cmd
}

func cycleOption(options []string, current string, delta int) string {
	idx := 0
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(options)) % len(options)
	return options[idx]
}

// growTarget appends a repeating child (fact, column, container item) to the
// edited element, for the kinds that have one.
func (m *DesignerModel) growTarget() {
	if m.fieldTarget.isAction {
		return
	}
	id := m.fieldTarget.id
	m.session.UpdateElement(id, func(e models.Element) {
		switch el := e.(type) {
		case *models.FactSet:
			el.Facts = append(el.Facts, models.Fact{Title: "Title", Value: "Value"})
		case *models.ColumnSet:
			el.Columns = append(el.Columns, models.Column{ID: models.NewID(), Text: "New column"})
		case *models.Container:
			el.Items = append(el.Items, models.ContainerItem{Text: "New item"})
		}
	})
	m.rebuildFields()
}

func (m *DesignerModel) shrinkTarget() {
	if m.fieldTarget.isAction {
		return
	}
	id := m.fieldTarget.id
	m.session.UpdateElement(id, func(e models.Element) {
		switch el := e.(type) {
		case *models.FactSet:
			if len(el.Facts) > 0 {
				el.Facts = el.Facts[:len(el.Facts)-1]
			}
		case *models.ColumnSet:
			if len(el.Columns) > 0 {
				el.Columns = el.Columns[:len(el.Columns)-1]
			}
		case *models.Container:
			if len(el.Items) > 0 {
				el.Items = el.Items[:len(el.Items)-1]
			}
		}
	})
	m.rebuildFields()
}

func (m *DesignerModel) textField(label string, get func() string, set func(string)) fieldSpec {
	return fieldSpec{label: label, kind: fieldText, get: get, set: set}
}

func (m *DesignerModel) boolField(label string, get func() bool, set func(bool)) fieldSpec {
	return fieldSpec{
		label: label,
		kind:  fieldBool,
		get:   func() string { return boolString(get()) },
		set:   func(v string) { set(v == "true") },
	}
}

func (m *DesignerModel) enumField(label string, options []string, get func() string, set func(string)) fieldSpec {
	return fieldSpec{label: label, kind: fieldEnum, options: options, get: get, set: set}
}

func (m *DesignerModel) elementFields(el models.Element) []fieldSpec {
	id := el.ElementID()
	upd := func(fn func(models.Element)) { m.session.UpdateElement(id, fn) }

	var specs []fieldSpec
	switch el := el.(type) {
	case *models.TextBlock:
		specs = append(specs,
			m.textField("Text", func() string { return el.Text },
				func(v string) { upd(func(e models.Element) { e.(*models.TextBlock).Text = v }) }),
			m.enumField("Size", models.TextSizes, func() string { return el.Size },
				func(v string) { upd(func(e models.Element) { e.(*models.TextBlock).Size = v }) }),
			m.enumField("Weight", models.TextWeights, func() string { return el.Weight },
				func(v string) { upd(func(e models.Element) { e.(*models.TextBlock).Weight = v }) }),
			m.enumField("Color", models.TextColors, func() string { return el.Color },
				func(v string) { upd(func(e models.Element) { e.(*models.TextBlock).Color = v }) }),
		)
	case *models.Image:
		specs = append(specs,
			m.textField("URL", func() string { return el.URL },
				func(v string) { upd(func(e models.Element) { e.(*models.Image).URL = v }) }),
			m.enumField("Size", models.ImageSizes, func() string { return el.Size },
				func(v string) { upd(func(e models.Element) { e.(*models.Image).Size = v }) }),
			m.enumField("Style", models.ImageStyles, func() string { return el.Style },
				func(v string) { upd(func(e models.Element) { e.(*models.Image).Style = v }) }),
		)
	case *models.TextInput:
		specs = append(specs,
			m.textField("Label", func() string { return el.Label },
				func(v string) { upd(func(e models.Element) { e.(*models.TextInput).Label = v }) }),
			m.textField("Placeholder", func() string { return el.Placeholder },
				func(v string) { upd(func(e models.Element) { e.(*models.TextInput).Placeholder = v }) }),
			m.boolField("Multiline", func() bool { return el.Multiline },
				func(v bool) { upd(func(e models.Element) { e.(*models.TextInput).Multiline = v }) }),
		)
	case *models.NumberInput:
		specs = append(specs,
			m.textField("Label", func() string { return el.Label },
				func(v string) { upd(func(e models.Element) { e.(*models.NumberInput).Label = v }) }),
			m.textField("Placeholder", func() string { return el.Placeholder },
				func(v string) { upd(func(e models.Element) { e.(*models.NumberInput).Placeholder = v }) }),
			m.textField("Min", func() string { return el.Min },
				func(v string) { upd(func(e models.Element) { e.(*models.NumberInput).Min = v }) }),
			m.textField("Max", func() string { return el.Max },
				func(v string) { upd(func(e models.Element) { e.(*models.NumberInput).Max = v }) }),
		)
	case *models.DateInput:
		specs = append(specs,
			m.textField("Label", func() string { return el.Label },
				func(v string) { upd(func(e models.Element) { e.(*models.DateInput).Label = v }) }),
			m.textField("Placeholder", func() string { return el.Placeholder },
				func(v string) { upd(func(e models.Element) { e.(*models.DateInput).Placeholder = v }) }),
		)
	case *models.TimeInput:
		specs = append(specs,
			m.textField("Label", func() string { return el.Label },
				func(v string) { upd(func(e models.Element) { e.(*models.TimeInput).Label = v }) }),
			m.textField("Placeholder", func() string { return el.Placeholder },
				func(v string) { upd(func(e models.Element) { e.(*models.TimeInput).Placeholder = v }) }),
		)
	case *models.ToggleInput:
		specs = append(specs,
			m.textField("Title", func() string { return el.Title },
				func(v string) { upd(func(e models.Element) { e.(*models.ToggleInput).Title = v }) }),
		)
	case *models.ChoiceSetInput:
		specs = append(specs,
			m.textField("Label", func() string { return el.Label },
				func(v string) { upd(func(e models.Element) { e.(*models.ChoiceSetInput).Label = v }) }),
			m.textField("Choices (comma separated)", func() string { return el.Choices },
				func(v string) { upd(func(e models.Element) { e.(*models.ChoiceSetInput).Choices = v }) }),
			m.enumField("Style", models.ChoiceStyles, func() string { return el.Style },
				func(v string) { upd(func(e models.Element) { e.(*models.ChoiceSetInput).Style = v }) }),
			m.boolField("Multi-select", func() bool { return el.MultiSelect },
				func(v bool) { upd(func(e models.Element) { e.(*models.ChoiceSetInput).MultiSelect = v }) }),
		)
	case *models.FactSet:
		for i := range el.Facts {
			specs = append(specs,
				m.textField(fmt.Sprintf("Fact %d title", i+1), func() string { return el.Facts[i].Title },
					func(v string) { upd(func(e models.Element) { e.(*models.FactSet).Facts[i].Title = v }) }),
				m.textField(fmt.Sprintf("Fact %d value", i+1), func() string { return el.Facts[i].Value },
					func(v string) { upd(func(e models.Element) { e.(*models.FactSet).Facts[i].Value = v }) }),
			)
		}
	case *models.ColumnSet:
		for i := range el.Columns {
			specs = append(specs,
				m.textField(fmt.Sprintf("Column %d text", i+1), func() string { return el.Columns[i].Text },
					func(v string) { upd(func(e models.Element) { e.(*models.ColumnSet).Columns[i].Text = v }) }),
			)
		}
	case *models.Container:
		for i := range el.Items {
			specs = append(specs,
				m.textField(fmt.Sprintf("Item %d text", i+1), func() string { return el.Items[i].Text },
					func(v string) { upd(func(e models.Element) { e.(*models.Container).Items[i].Text = v }) }),
			)
		}
	}

	base := el.Base()
	specs = append(specs,
		m.enumField("Spacing", models.SpacingOptions, func() string { return base.Spacing },
			func(v string) { upd(func(e models.Element) { e.Base().Spacing = v }) }),
		m.boolField("Separator", func() bool { return base.Separator },
			func(v bool) { upd(func(e models.Element) { e.Base().Separator = v }) }),
		m.enumField("Alignment", models.AlignmentOptions, func() string { return base.HorizontalAlignment },
			func(v string) { upd(func(e models.Element) { e.Base().HorizontalAlignment = v }) }),
	)
	return specs
}

func (m *DesignerModel) actionFields(act models.Action) []fieldSpec {
	id := act.ActionID()
	upd := func(fn func(models.Action)) { m.session.UpdateAction(id, fn) }

	var specs []fieldSpec
	switch act := act.(type) {
	case *models.SubmitAction:
		specs = append(specs,
			m.textField("Title", func() string { return act.Title },
				func(v string) { upd(func(a models.Action) { a.(*models.SubmitAction).Title = v }) }),
		)
	case *models.OpenURLAction:
		specs = append(specs,
			m.textField("Title", func() string { return act.Title },
				func(v string) { upd(func(a models.Action) { a.(*models.OpenURLAction).Title = v }) }),
			m.textField("URL", func() string { return act.URL },
				func(v string) { upd(func(a models.Action) { a.(*models.OpenURLAction).URL = v }) }),
		)
	case *models.ShowCardAction:
		specs = append(specs,
			m.textField("Title", func() string { return act.Title },
				func(v string) { upd(func(a models.Action) { a.(*models.ShowCardAction).Title = v }) }),
		)
	}
	return specs
}
