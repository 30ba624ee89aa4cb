package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/botdeck/botdeck-terminal/pkg/designer"
	"github.com/botdeck/botdeck-terminal/pkg/files"
	"github.com/botdeck/botdeck-terminal/pkg/models"
	"github.com/botdeck/botdeck-terminal/pkg/templates"
	"github.com/botdeck/botdeck-terminal/pkg/webex"
)

type designerPane int

const (
	palettePane designerPane = iota
	elementsPane
	actionsPane
)

type designerMode int

const (
	modeNormal designerMode = iota
	modeFields
	modeFieldInput
	modeTemplates
	modeDraftName
	modeDraftPick
	modeJSON
)

type cardSentMsg struct {
	err error
}

// DesignerModel is the card designer: an element palette, the ordered
// element and action lists, per-field editors, and a live preview fed
// from the session's JSON buffer.
type DesignerModel struct {
	settings *models.Settings
	session  *designer.Session
	preview  *PreviewRenderer
	room     *webex.Room

	pane          designerPane
	paletteCursor int
	elementCursor int
	actionCursor  int

	mode        designerMode
	fields      []fieldSpec
	fieldCursor int
	fieldTarget fieldTarget
	fieldInput  textinput.Model

	templateCursor int
	draftNames     []string
	draftCursor    int
	nameInput      textinput.Model

	jsonEditor textarea.Model

	sending bool
	width   int
	height  int
}

func NewDesignerModel(settings *models.Settings) *DesignerModel {
	key := settings.UI.DefaultTemplate
	session, err := designer.NewSession(key)
	if err != nil {
		session, _ = designer.NewSession(templates.All()[0].Key)
	}

	nameInput := textinput.New()
	nameInput.Placeholder = "draft name"
	nameInput.CharLimit = 64

	editor := textarea.New()
	editor.CharLimit = 0

	return &DesignerModel{
		settings:   settings,
		session:    session,
		preview:    NewPreviewRenderer(40),
		nameInput:  nameInput,
		jsonEditor: editor,
		fieldInput: textinput.New(),
	}
}

func (m *DesignerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	rightWidth := m.rightPaneWidth()
	m.preview.SetWidth(rightWidth - 4)
	m.jsonEditor.SetWidth(rightWidth - 4)
	m.jsonEditor.SetHeight(max(height-6, 5))
	m.fieldInput.Width = max(m.leftPaneWidth()-8, 16)
	m.nameInput.Width = max(m.leftPaneWidth()-8, 16)
}

func (m *DesignerModel) SetRoom(room webex.Room) {
	m.room = &room
}

func (m *DesignerModel) CapturesInput() bool {
	return m.mode != modeNormal
}

func (m *DesignerModel) leftPaneWidth() int {
	return max(m.width*2/5, 30)
}

func (m *DesignerModel) rightPaneWidth() int {
	return max(m.width-m.leftPaneWidth()-6, 24)
}

func (m *DesignerModel) Update(msg tea.Msg) (*DesignerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case cardSentMsg:
		m.sending = false
		if msg.err != nil {
			return m, func() tea.Msg { return ErrorStatusMsg(fmt.Sprintf("Card send failed: %v", msg.err)) }
		}
		return m, func() tea.Msg { return StatusMsg("Card sent") }

	case tea.KeyMsg:
		switch m.mode {
		case modeFields:
			return m, m.updateFields(msg)
		case modeFieldInput:
			return m, m.updateFieldInput(msg)
		case modeTemplates:
			return m, m.updateTemplates(msg)
		case modeDraftName:
			return m, m.updateDraftName(msg)
		case modeDraftPick:
			return m, m.updateDraftPick(msg)
		case modeJSON:
			return m, m.updateJSON(msg)
		}
		return m, m.updateNormal(msg)
	}
	return m, nil
}

func (m *DesignerModel) updateNormal(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "left", "h":
		if m.pane > palettePane {
			m.pane--
		}
	case "right", "l":
		if m.pane < actionsPane {
			m.pane++
		}
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "shift+up", "K":
		return m.moveElement(-1)
	case "shift+down", "J":
		return m.moveElement(1)
	case "enter":
		return m.activate()
	case "d", "delete", "backspace":
		return m.deleteSelected()
	case "1", "2", "3":
		if m.pane == actionsPane {
			idx := int(msg.String()[0] - '1')
			return m.addAction(models.ActionKinds[idx])
		}
	case "t":
		m.mode = modeTemplates
		m.templateCursor = 0
		for i, t := range templates.All() {
			if t.Key == m.session.Template() {
				m.templateCursor = i
			}
		}
	case "e":
		m.jsonEditor.SetValue(m.session.Text())
		m.mode = modeJSON
		return m.jsonEditor.Focus()
	case "y":
		return m.copyJSON()
	case "ctrl+s":
		m.nameInput.SetValue(m.session.Template())
		m.mode = modeDraftName
		return m.nameInput.Focus()
	case "ctrl+o":
		return m.openDraftPicker()
	case "ctrl+g":
		return m.sendCard()
	}
	return nil
}

func (m *DesignerModel) moveCursor(delta int) {
	switch m.pane {
	case palettePane:
		m.paletteCursor = clamp(m.paletteCursor+delta, 0, len(models.ElementKinds)-1)
	case elementsPane:
		m.elementCursor = clamp(m.elementCursor+delta, 0, len(m.session.Elements())-1)
	case actionsPane:
		m.actionCursor = clamp(m.actionCursor+delta, 0, len(m.session.Actions())-1)
	}
}

func (m *DesignerModel) moveElement(delta int) tea.Cmd {
	if m.pane != elementsPane {
		return nil
	}
	from := m.elementCursor
	to := from + delta
	if err := m.session.MoveElement(from, to); err != nil {
		return nil
	}
	m.elementCursor = to
	return nil
}

func (m *DesignerModel) activate() tea.Cmd {
	switch m.pane {
	case palettePane:
		kind := models.ElementKinds[m.paletteCursor]
		if _, err := m.session.AddElement(kind); err != nil {
			return func() tea.Msg { return ErrorStatusMsg(err.Error()) }
		}
		m.elementCursor = len(m.session.Elements()) - 1
		return func() tea.Msg { return StatusMsg("Added " + string(kind)) }
	case elementsPane:
		els := m.session.Elements()
		if m.elementCursor < len(els) {
			m.openElementFields(els[m.elementCursor])
		}
	case actionsPane:
		acts := m.session.Actions()
		if m.actionCursor < len(acts) {
			m.openActionFields(acts[m.actionCursor])
		}
	}
	return nil
}

func (m *DesignerModel) deleteSelected() tea.Cmd {
	switch m.pane {
	case elementsPane:
		els := m.session.Elements()
		if m.elementCursor >= len(els) {
			return nil
		}
		kind := els[m.elementCursor].Kind()
		if err := m.session.RemoveElement(els[m.elementCursor].ElementID()); err != nil {
			return nil
		}
		m.elementCursor = clamp(m.elementCursor, 0, len(m.session.Elements())-1)
		return func() tea.Msg { return StatusMsg("Removed " + string(kind)) }
	case actionsPane:
		acts := m.session.Actions()
		if m.actionCursor >= len(acts) {
			return nil
		}
		if err := m.session.RemoveAction(acts[m.actionCursor].ActionID()); err != nil {
			return nil
		}
		m.actionCursor = clamp(m.actionCursor, 0, len(m.session.Actions())-1)
		return func() tea.Msg { return StatusMsg("Removed action") }
	}
	return nil
}

func (m *DesignerModel) addAction(kind models.ActionKind) tea.Cmd {
	if _, err := m.session.AddAction(kind); err != nil {
		return func() tea.Msg { return ErrorStatusMsg(err.Error()) }
	}
	m.actionCursor = len(m.session.Actions()) - 1
	return func() tea.Msg { return StatusMsg("Added " + string(kind)) }
}

func (m *DesignerModel) updateTemplates(msg tea.KeyMsg) tea.Cmd {
	all := templates.All()
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
	case "up", "k":
		m.templateCursor = clamp(m.templateCursor-1, 0, len(all)-1)
	case "down", "j":
		m.templateCursor = clamp(m.templateCursor+1, 0, len(all)-1)
	case "enter":
		tmpl := all[m.templateCursor]
		if err := m.session.SetTemplate(tmpl.Key); err != nil {
			m.mode = modeNormal
			return func() tea.Msg { return ErrorStatusMsg(err.Error()) }
		}
		m.elementCursor = 0
		m.actionCursor = 0
		m.mode = modeNormal
		return func() tea.Msg { return StatusMsg("Template: " + tmpl.Name) }
	}
	return nil
}

func (m *DesignerModel) updateJSON(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.session.SetText(m.jsonEditor.Value())
		m.jsonEditor.Blur()
		m.mode = modeNormal
		return nil
	}
	var cmd tea.Cmd
	m.jsonEditor, cmd = m.jsonEditor.Update(msg)
	m.session.SetText(m.jsonEditor.Value())
	return cmd
}

func (m *DesignerModel) updateDraftName(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.nameInput.Blur()
		m.mode = modeNormal
		return nil
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		m.nameInput.Blur()
		m.mode = modeNormal
		if err := files.ValidateDraftName(name); err != nil {
			return func() tea.Msg { return ErrorStatusMsg(err.Error()) }
		}
		if err := files.WriteDraft(name, m.session.Text()); err != nil {
			return func() tea.Msg { return ErrorStatusMsg(fmt.Sprintf("Failed to save draft: %v", err)) }
		}
		return func() tea.Msg { return StatusMsg("Saved draft '" + name + "'") }
	}
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return cmd
}

func (m *DesignerModel) openDraftPicker() tea.Cmd {
	names, err := files.ListDrafts()
	if err != nil {
		return func() tea.Msg { return ErrorStatusMsg(fmt.Sprintf("Failed to list drafts: %v", err)) }
	}
	if len(names) == 0 {
		return func() tea.Msg { return StatusMsg("No saved drafts") }
	}
	m.draftNames = names
	m.draftCursor = 0
	m.mode = modeDraftPick
	return nil
}

func (m *DesignerModel) updateDraftPick(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
	case "up", "k":
		m.draftCursor = clamp(m.draftCursor-1, 0, len(m.draftNames)-1)
	case "down", "j":
		m.draftCursor = clamp(m.draftCursor+1, 0, len(m.draftNames)-1)
	case "enter":
		name := m.draftNames[m.draftCursor]
		m.mode = modeNormal
		draft, err := files.ReadDraft(name)
		if err != nil {
			return func() tea.Msg { return ErrorStatusMsg(fmt.Sprintf("Failed to load draft: %v", err)) }
		}
		m.session.LoadDocument(draft.Document)
		m.elementCursor = 0
		m.actionCursor = 0
		return func() tea.Msg { return StatusMsg("Loaded draft '" + name + "'") }
	}
	return nil
}

func (m *DesignerModel) copyJSON() tea.Cmd {
	text := m.session.Text()
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return ErrorStatusMsg(fmt.Sprintf("Clipboard unavailable: %v", err))
		}
		return StatusMsg("Card JSON copied to clipboard")
	}
}

func (m *DesignerModel) sendCard() tea.Cmd {
	if m.sending {
		return nil
	}
	if m.settings.Webex.Token == "" {
		return func() tea.Msg { return ErrorStatusMsg("No bot token configured. Set one in Settings.") }
	}
	roomID := m.settings.Webex.DefaultRoomID
	if m.room != nil {
		roomID = m.room.ID
	}
	if roomID == "" {
		return func() tea.Msg { return ErrorStatusMsg("No room selected. Pick one in Spaces.") }
	}
	text := m.session.Text()
	if !json.Valid([]byte(text)) {
		return func() tea.Msg { return ErrorStatusMsg("Card JSON is not valid") }
	}

	m.sending = true
	client := webex.NewClient(m.settings.Webex.APIBase, m.settings.Webex.Token)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		err := client.SendCard(ctx, roomID, "Adaptive Card", json.RawMessage(text))
		return cardSentMsg{err: err}
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
