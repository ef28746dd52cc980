package screen

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/myportfolio/internal/ui"
	"github.com/rovshanmuradov/myportfolio/internal/ui/component"
	"github.com/rovshanmuradov/myportfolio/internal/ui/router"
	"github.com/rovshanmuradov/myportfolio/internal/ui/style"
)

const maxNameLength = 40

// LoginScreen asks for the name shown on the dashboard
type LoginScreen struct {
	width  int
	height int
	keyMap ui.KeyMap

	input     textinput.Model
	canSubmit func(string) bool

	helpBar *component.HelpBar
	styles  style.Styles
}

// NewLoginScreen creates the login screen. canSubmit decides whether the
// Continue button is drawn enabled for the current input.
func NewLoginScreen(theme style.Theme, canSubmit func(string) bool) *LoginScreen {
	styles := style.NewStyles(theme)
	keyMap := ui.DefaultKeyMap()

	ti := textinput.New()
	ti.Placeholder = "Your name"
	ti.CharLimit = maxNameLength
	ti.Width = maxNameLength
	ti.Prompt = "› "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(styles.Palette.Primary)
	ti.Focus()

	if canSubmit == nil {
		canSubmit = func(name string) bool { return strings.TrimSpace(name) != "" }
	}

	return &LoginScreen{
		keyMap:    keyMap,
		input:     ti,
		canSubmit: canSubmit,
		styles:    styles,
		helpBar: component.NewHelpBar(styles.Palette).
			SetKeyBindings(keyMap.ContextualHelp(ui.RouteLogin)),
	}
}

// Init starts the cursor blinking
func (m *LoginScreen) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles screen updates
func (m *LoginScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keyMap.Enter) {
		// The controller refuses blank names, so the message is sent regardless.
		return m, ui.Send(ui.SubmitNameMsg{Name: m.input.Value()})
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the login screen
func (m *LoginScreen) View() string {
	var content strings.Builder

	content.WriteString(m.styles.Title.Render("Welcome to MyPortfolio"))
	content.WriteString("\n")
	content.WriteString(m.styles.Subtitle.Render("Enter your name to continue"))
	content.WriteString("\n\n")
	content.WriteString(m.styles.Panel.Render(m.input.View()))
	content.WriteString("\n")

	if m.CanContinue() {
		content.WriteString(m.styles.Button.Render("Continue"))
	} else {
		content.WriteString(m.styles.Disabled.Render("Continue"))
	}
	content.WriteString("\n")
	content.WriteString(m.helpBar.View())

	result := content.String()
	if m.width > 0 && m.height > 0 {
		result = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, result)
	}
	return result
}

// SetSize sets the screen dimensions
func (m *LoginScreen) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.helpBar.SetWidth(width)
}

// Value returns the current input
func (m *LoginScreen) Value() string {
	return m.input.Value()
}

// CanContinue reports whether the Continue button is enabled
func (m *LoginScreen) CanContinue() bool {
	return m.canSubmit(m.input.Value())
}
