package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/botdeck/botdeck-terminal/pkg/files"
	"github.com/botdeck/botdeck-terminal/pkg/models"
	"github.com/botdeck/botdeck-terminal/pkg/webex"
)

type sessionState int

const (
	designerView sessionState = iota
	composeView
	spacesView
	settingsView
)

var viewNames = map[sessionState]string{
	designerView: "Designer",
	composeView:  "Compose",
	spacesView:   "Spaces",
	settingsView: "Settings",
}

var viewOrder = []sessionState{designerView, composeView, spacesView, settingsView}

// StatusMsg sets the status line at the bottom of the screen.
type StatusMsg string

// ErrorStatusMsg sets the status line in the error style.
type ErrorStatusMsg string

// SwitchViewMsg asks the app to activate a different view.
type SwitchViewMsg struct {
	View sessionState
}

// RoomSelectedMsg propagates the chosen room to every view that sends.
type RoomSelectedMsg struct {
	Room webex.Room
}

// SettingsSavedMsg carries freshly written settings back to the app.
type SettingsSavedMsg struct {
	Settings *models.Settings
}

type clearStatusMsg struct {
	generation int
}

// App is the root model. It owns the settings and the selected room and
// routes everything else to the active view.
type App struct {
	state    sessionState
	settings *models.Settings

	designer *DesignerModel
	compose  *ComposeModel
	spaces   *SpacesModel
	config   *SettingsModel

	selectedRoom *webex.Room
	width        int
	height       int

	status    string
	statusErr bool
	statusGen int
}

// NewApp loads settings from disk and builds every view.
func NewApp() *App {
	settings := files.ReadSettingsWithDefault()

	a := &App{
		state:    designerView,
		settings: settings,
		designer: NewDesignerModel(settings),
		compose:  NewComposeModel(settings),
		spaces:   NewSpacesModel(settings),
		config:   NewSettingsModel(settings),
	}
	return a
}

func (a *App) Init() tea.Cmd {
	return a.spaces.fetchRooms()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		contentHeight := msg.Height - 4 // tab bar + status line
		a.designer.SetSize(msg.Width, contentHeight)
		a.compose.SetSize(msg.Width, contentHeight)
		a.spaces.SetSize(msg.Width, contentHeight)
		a.config.SetSize(msg.Width, contentHeight)
		return a, nil

	case StatusMsg:
		return a, a.setStatus(string(msg), false)

	case ErrorStatusMsg:
		return a, a.setStatus(string(msg), true)

	case clearStatusMsg:
		if msg.generation == a.statusGen {
			a.status = ""
		}
		return a, nil

	case SwitchViewMsg:
		a.state = msg.View
		return a, nil

	case RoomSelectedMsg:
		a.selectedRoom = &msg.Room
		a.compose.SetRoom(msg.Room)
		a.designer.SetRoom(msg.Room)
		return a, a.setStatus("Selected space: "+msg.Room.Title, false)

	case SettingsSavedMsg:
		a.settings = msg.Settings
		a.designer.settings = msg.Settings
		a.compose.settings = msg.Settings
		a.spaces.settings = msg.Settings
		return a, a.setStatus("Settings saved", false)

	case roomsLoadedMsg:
		model, cmd := a.spaces.Update(msg)
		a.spaces = model
		return a, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "tab", "shift+tab":
			if !a.activeCapturesInput() {
				a.state = a.nextView(msg.String() == "shift+tab")
				return a, nil
			}
		}
	}

	return a, a.routeToActive(msg)
}

func (a *App) routeToActive(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.state {
	case designerView:
		a.designer, cmd = a.designer.Update(msg)
	case composeView:
		a.compose, cmd = a.compose.Update(msg)
	case spacesView:
		a.spaces, cmd = a.spaces.Update(msg)
	case settingsView:
		a.config, cmd = a.config.Update(msg)
	}
	return cmd
}

func (a *App) activeCapturesInput() bool {
	switch a.state {
	case designerView:
		return a.designer.CapturesInput()
	case composeView:
		return a.compose.CapturesInput()
	case settingsView:
		return a.config.CapturesInput()
	}
	return false
}

func (a *App) nextView(backwards bool) sessionState {
	idx := 0
	for i, s := range viewOrder {
		if s == a.state {
			idx = i
			break
		}
	}
	if backwards {
		idx = (idx - 1 + len(viewOrder)) % len(viewOrder)
	} else {
		idx = (idx + 1) % len(viewOrder)
	}
	return viewOrder[idx]
}

func (a *App) setStatus(text string, isErr bool) tea.Cmd {
	a.status = text
	a.statusErr = isErr
	a.statusGen++
	gen := a.statusGen
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{generation: gen}
	})
}

func (a *App) View() string {
	var content string
	switch a.state {
	case designerView:
		content = a.designer.View()
	case composeView:
		content = a.compose.View()
	case spacesView:
		content = a.spaces.View()
	case settingsView:
		content = a.config.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.tabBar(),
		content,
		a.statusLine(),
	)
}

func (a *App) tabBar() string {
	tabs := make([]string, 0, len(viewOrder))
	for _, s := range viewOrder {
		if s == a.state {
			tabs = append(tabs, activeTabStyle.Render(viewNames[s]))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(viewNames[s]))
		}
	}
	bar := titleStyle.Render(" Botdeck ") + " " + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if a.selectedRoom != nil {
		bar += dimStyle.Render("  → " + a.selectedRoom.Title)
	}
	return bar
}

func (a *App) statusLine() string {
	if a.status == "" {
		return helpStyle.Render(" tab: switch view • ctrl+c: quit")
	}
	if a.statusErr {
		return errorStyle.Padding(0, 1).Render(a.status)
	}
	return statusStyle.Render(a.status)
}
