package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/botdeck/botdeck-terminal/pkg/files"
	"github.com/botdeck/botdeck-terminal/pkg/models"
)

const (
	settingsFieldToken = iota
	settingsFieldRoom
	settingsFieldCount
)

// SettingsModel edits the bot token and the default room. The token is
// masked unless explicitly revealed.
type SettingsModel struct {
	settings  *models.Settings
	inputs    [settingsFieldCount]textinput.Model
	cursor    int
	editing   bool
	showToken bool
	width     int
	height    int
}

func NewSettingsModel(settings *models.Settings) *SettingsModel {
	token := textinput.New()
	token.Placeholder = "Webex bot access token"
	token.EchoMode = textinput.EchoPassword
	token.CharLimit = 0
	token.SetValue(settings.Webex.Token)

	room := textinput.New()
	room.Placeholder = "Default room ID (optional)"
	room.SetValue(settings.Webex.DefaultRoomID)

	m := &SettingsModel{settings: settings}
	m.inputs[settingsFieldToken] = token
	m.inputs[settingsFieldRoom] = room
	return m
}

func (m *SettingsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	for i := range m.inputs {
		m.inputs[i].Width = max(width-12, 20)
	}
}

func (m *SettingsModel) CapturesInput() bool {
	return m.editing
}

func (m *SettingsModel) Update(msg tea.Msg) (*SettingsModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.editing {
		switch key.String() {
		case "esc":
			m.editing = false
			m.inputs[m.cursor].Blur()
			return m, nil
		case "enter":
			m.editing = false
			m.inputs[m.cursor].Blur()
			return m, m.save()
		}
		var cmd tea.Cmd
		m.inputs[m.cursor], cmd = m.inputs[m.cursor].Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < settingsFieldCount-1 {
			m.cursor++
		}
	case "enter":
		m.editing = true
		return m, m.inputs[m.cursor].Focus()
	case "ctrl+r":
		m.showToken = !m.showToken
		if m.showToken {
			m.inputs[settingsFieldToken].EchoMode = textinput.EchoNormal
		} else {
			m.inputs[settingsFieldToken].EchoMode = textinput.EchoPassword
		}
	case "ctrl+s":
		return m, m.save()
	}
	return m, nil
}

func (m *SettingsModel) save() tea.Cmd {
	m.settings.Webex.Token = strings.TrimSpace(m.inputs[settingsFieldToken].Value())
	m.settings.Webex.DefaultRoomID = strings.TrimSpace(m.inputs[settingsFieldRoom].Value())
	settings := m.settings
	return func() tea.Msg {
		if err := files.WriteSettings(settings); err != nil {
			return ErrorStatusMsg(fmt.Sprintf("Failed to save settings: %v", err))
		}
		return SettingsSavedMsg{Settings: settings}
	}
}

func (m *SettingsModel) View() string {
	labels := [settingsFieldCount]string{"Bot token", "Default room"}
	var rows []string
	for i := range m.inputs {
		marker := "  "
		if i == m.cursor {
			marker = selectedItemStyle.Render("▸") + " "
		}
		rows = append(rows, marker+labelStyle.Render(labels[i]))
		rows = append(rows, "  "+m.inputs[i].View())
		rows = append(rows, "")
	}

	hint := "Tokens come from the Webex developer portal (My Apps → your bot)."
	if m.settings.Webex.Token != "" && !m.showToken {
		hint = "Token saved. Press ctrl+r to reveal it."
	}
	rows = append(rows, dimStyle.Render(hint))

	pane := activePaneStyle.Width(max(m.width-4, 20)).Render(
		titleStyle.Render("Settings") + "\n\n" + strings.Join(rows, "\n"),
	)
	help := helpStyle.Render(" ↑/↓: field • enter: edit • ctrl+r: show/hide token • ctrl+s: save")
	return lipgloss.JoinVertical(lipgloss.Left, pane, help)
}
