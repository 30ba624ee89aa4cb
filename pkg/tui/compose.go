package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/botdeck/botdeck-terminal/pkg/models"
	"github.com/botdeck/botdeck-terminal/pkg/webex"
)

type messageSentMsg struct {
	err error
}

// ComposeModel sends plain text messages to a space.
type ComposeModel struct {
	settings *models.Settings
	body     textarea.Model
	roomID   textinput.Model
	room     *webex.Room

	editingRoom bool
	sending     bool
	width       int
	height      int
}

func NewComposeModel(settings *models.Settings) *ComposeModel {
	body := textarea.New()
	body.Placeholder = "Type your message..."
	body.CharLimit = 0

	roomID := textinput.New()
	roomID.Placeholder = "Room ID"
	roomID.SetValue(settings.Webex.DefaultRoomID)

	return &ComposeModel{
		settings: settings,
		body:     body,
		roomID:   roomID,
	}
}

func (m *ComposeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.body.SetWidth(max(width-8, 20))
	m.body.SetHeight(max(height-10, 3))
	m.roomID.Width = max(width-20, 20)
}

func (m *ComposeModel) SetRoom(room webex.Room) {
	m.room = &room
	m.roomID.SetValue(room.ID)
}

func (m *ComposeModel) CapturesInput() bool {
	return m.body.Focused() || m.editingRoom
}

func (m *ComposeModel) targetRoomID() string {
	return strings.TrimSpace(m.roomID.Value())
}

func (m *ComposeModel) Update(msg tea.Msg) (*ComposeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case messageSentMsg:
		m.sending = false
		if msg.err != nil {
			return m, func() tea.Msg { return ErrorStatusMsg(fmt.Sprintf("Send failed: %v", msg.err)) }
		}
		m.body.Reset()
		return m, func() tea.Msg { return StatusMsg("Message sent") }

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+s":
			return m, m.send()
		case "esc":
			m.body.Blur()
			m.roomID.Blur()
			m.editingRoom = false
			return m, nil
		}

		if m.editingRoom {
			if msg.String() == "enter" {
				m.editingRoom = false
				m.roomID.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.roomID, cmd = m.roomID.Update(msg)
			return m, cmd
		}

		if m.body.Focused() {
			var cmd tea.Cmd
			m.body, cmd = m.body.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "enter", "i":
			return m, m.body.Focus()
		case "r":
			m.editingRoom = true
			return m, m.roomID.Focus()
		}
	}
	return m, nil
}

func (m *ComposeModel) send() tea.Cmd {
	if m.sending {
		return nil
	}
	if m.settings.Webex.Token == "" {
		return func() tea.Msg { return ErrorStatusMsg("No bot token configured. Set one in Settings.") }
	}
	roomID := m.targetRoomID()
	if roomID == "" {
		return func() tea.Msg { return ErrorStatusMsg("No room selected. Pick a space or enter a room ID.") }
	}
	text := strings.TrimSpace(m.body.Value())
	if text == "" {
		return func() tea.Msg { return ErrorStatusMsg("Message is empty") }
	}

	m.sending = true
	client := webex.NewClient(m.settings.Webex.APIBase, m.settings.Webex.Token)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		err := client.SendMessage(ctx, roomID, text)
		return messageSentMsg{err: err}
	}
}

func (m *ComposeModel) View() string {
	target := m.targetRoomID()
	targetLine := dimStyle.Render("To: ")
	switch {
	case m.room != nil && m.room.ID == target:
		targetLine += m.room.Title
	case target != "":
		targetLine += target
	default:
		targetLine += errorStyle.Render("(no room selected)")
	}
	if m.editingRoom {
		targetLine = dimStyle.Render("To: ") + m.roomID.View()
	}

	count := dimStyle.Render(fmt.Sprintf("%d characters", len([]rune(m.body.Value()))))
	status := ""
	if m.sending {
		status = "  " + dimStyle.Render("sending...")
	}

	pane := activePaneStyle.Width(max(m.width-4, 20)).Render(
		titleStyle.Render("Compose") + "\n\n" +
			targetLine + "\n\n" +
			m.body.View() + "\n" +
			count + status,
	)
	help := helpStyle.Render(" enter: type • esc: done • r: edit room • ctrl+s: send")
	return lipgloss.JoinVertical(lipgloss.Left, pane, help)
}
