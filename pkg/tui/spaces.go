package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/botdeck/botdeck-terminal/pkg/models"
	"github.com/botdeck/botdeck-terminal/pkg/webex"
)

type roomsLoadedMsg struct {
	rooms []webex.Room
	err   error
}

// SpacesModel lists the spaces the bot belongs to and lets the user
// pick the one messages go to.
type SpacesModel struct {
	settings *models.Settings
	rooms    []webex.Room
	cursor   int
	loading  bool
	loadErr  error
	spinner  spinner.Model
	width    int
	height   int
}

func NewSpacesModel(settings *models.Settings) *SpacesModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimary))
	return &SpacesModel{
		settings: settings,
		spinner:  sp,
	}
}

func (m *SpacesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *SpacesModel) fetchRooms() tea.Cmd {
	if m.settings.Webex.Token == "" {
		return nil
	}
	m.loading = true
	m.loadErr = nil
	client := webex.NewClient(m.settings.Webex.APIBase, m.settings.Webex.Token)
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		rooms, err := client.ListRooms(ctx)
		return roomsLoadedMsg{rooms: rooms, err: err}
	})
}

func (m *SpacesModel) Update(msg tea.Msg) (*SpacesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case roomsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.loadErr = msg.err
			return m, func() tea.Msg { return ErrorStatusMsg(fmt.Sprintf("Failed to load spaces: %v", msg.err)) }
		}
		m.rooms = msg.rooms
		if m.cursor >= len(m.rooms) {
			m.cursor = 0
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.rooms)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor < len(m.rooms) {
				room := m.rooms[m.cursor]
				return m, func() tea.Msg { return RoomSelectedMsg{Room: room} }
			}
		case "r":
			return m, m.fetchRooms()
		}
	}
	return m, nil
}

func (m *SpacesModel) View() string {
	var body string
	switch {
	case m.settings.Webex.Token == "":
		body = dimStyle.Render("Set a bot token in Settings to load spaces.")
	case m.loading:
		body = m.spinner.View() + " Loading spaces..."
	case m.loadErr != nil:
		body = errorStyle.Render(fmt.Sprintf("Could not load spaces: %v", m.loadErr)) + "\n\n" +
			dimStyle.Render("Press r to retry.")
	case len(m.rooms) == 0:
		body = dimStyle.Render("No spaces found. Add the bot to a space in Webex, then press r.")
	default:
		body = m.roomList()
	}

	pane := activePaneStyle.Width(max(m.width-4, 20)).Render(
		titleStyle.Render("Spaces") + "\n\n" + body,
	)
	help := helpStyle.Render(" ↑/↓: navigate • enter: select • r: refresh")
	return lipgloss.JoinVertical(lipgloss.Left, pane, help)
}

func (m *SpacesModel) roomList() string {
	lines := make([]string, 0, len(m.rooms))
	for i, room := range m.rooms {
		line := room.Title + dimStyle.Render("  "+room.ID)
		if i == m.cursor {
			line = selectedItemStyle.Render("▸ " + room.Title + "  " + room.ID)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
