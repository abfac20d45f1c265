package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/azoth/docgen/internal/app"
)

// Screen represents the current active screen
type Screen int

const (
	ScreenHome Screen = iota
	ScreenEditor
)

// String returns the screen name
func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "Documents"
	case ScreenEditor:
		return "Editor"
	default:
		return "Unknown"
	}
}

// Model is the root Bubble Tea model
type Model struct {
	app           *app.App
	currentScreen Screen
	width         int
	height        int

	home   tea.Model
	editor tea.Model

	// Error state
	err error
}

// New creates a new root model
func New(a *app.App) Model {
	return Model{
		app:           a,
		currentScreen: ScreenHome,
		home:          NewHomeModel(a),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.home.Init()
}

// InputCapturer is implemented by screens that capture keyboard input (text
// forms). When active, global keys are suppressed.
type InputCapturer interface {
	IsCapturingInput() bool
}

func (m *Model) activeScreenCapturingInput() bool {
	var screen tea.Model
	switch m.currentScreen {
	case ScreenHome:
		screen = m.home
	case ScreenEditor:
		screen = m.editor
	}
	if ic, ok := screen.(InputCapturer); ok {
		return ic.IsCapturingInput()
	}
	return false
}

// Update implements tea.Model - routes keys to screens
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if !m.activeScreenCapturingInput() {
			if key.Matches(msg, DefaultKeyMap.Quit) {
				return m, tea.Quit
			}
		}

	case OpenEditorMsg:
		// A fresh document for every visit; nothing is kept between sessions
		m.editor = NewEditorModel(m.app, msg.Kind)
		m.currentScreen = ScreenEditor
		return m, m.editor.Init()

	case BackToHomeMsg:
		m.editor = nil
		m.currentScreen = ScreenHome
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	// Route message to current screen
	var cmd tea.Cmd
	switch m.currentScreen {
	case ScreenHome:
		if m.home != nil {
			m.home, cmd = m.home.Update(msg)
		}
	case ScreenEditor:
		if m.editor != nil {
			m.editor, cmd = m.editor.Update(msg)
		}
	}

	return m, cmd
}

// View implements tea.Model - renders header + current screen + footer
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := headerStyle.Render(fmt.Sprintf("docgen - %s", m.currentScreen.String()))
	footer := footerStyle.Render("Azoth Agence · Générateur de Documents")

	var content string
	switch m.currentScreen {
	case ScreenHome:
		if m.home != nil {
			content = m.home.View()
		}
	case ScreenEditor:
		if m.editor != nil {
			content = m.editor.View()
		}
	}

	errorDisplay := ""
	if m.err != nil {
		errorDisplay = lipgloss.NewStyle().
			Foreground(errorColor).
			Render(fmt.Sprintf("\nError: %s", m.err.Error()))
	}

	// Divider line between header and content
	innerWidth := m.width - 6 // account for border (2) + padding (4)
	if innerWidth < 20 {
		innerWidth = 20
	}
	dividerWidth := innerWidth - 12
	if dividerWidth < 10 {
		dividerWidth = 10
	}
	divider := lipgloss.NewStyle().Foreground(borderColor).Render(
		strings.Repeat("─", dividerWidth),
	)

	body := fmt.Sprintf("%s\n%s\n\n%s%s\n\n%s\n%s", header, divider, content, errorDisplay, divider, footer)

	frame := appBorderStyle.
		Width(innerWidth).
		Height(m.height - 4) // leave room for border top/bottom
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame.Render(body))
}

// Run starts the TUI
func Run(a *app.App) error {
	p := tea.NewProgram(New(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
