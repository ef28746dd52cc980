package screen

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/myportfolio/internal/ui"
	"github.com/rovshanmuradov/myportfolio/internal/ui/component"
	"github.com/rovshanmuradov/myportfolio/internal/ui/router"
	"github.com/rovshanmuradov/myportfolio/internal/ui/style"
)

// LandingScreen is the first screen shown after start-up
type LandingScreen struct {
	width  int
	height int
	keyMap ui.KeyMap

	helpBar *component.HelpBar
	styles  style.Styles
}

// NewLandingScreen creates the landing screen
func NewLandingScreen(theme style.Theme) *LandingScreen {
	styles := style.NewStyles(theme)
	keyMap := ui.DefaultKeyMap()

	return &LandingScreen{
		keyMap: keyMap,
		styles: styles,
		helpBar: component.NewHelpBar(styles.Palette).
			SetKeyBindings(keyMap.ContextualHelp(ui.RouteLanding)),
	}
}

// Init initializes the landing screen
func (m *LandingScreen) Init() tea.Cmd {
	return nil
}

// Update handles screen updates
func (m *LandingScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keyMap.Enter) {
		return m, ui.Send(ui.EnterMsg{})
	}
	return m, nil
}

// View renders the landing screen
func (m *LandingScreen) View() string {
	var content strings.Builder

	content.WriteString(m.styles.Title.Render("💹 MyPortfolio"))
	content.WriteString("\n")
	content.WriteString(m.styles.Subtitle.Render("Your stocks at a glance"))
	content.WriteString("\n\n")
	content.WriteString(m.styles.Button.Render("Enter Dashboard"))
	content.WriteString("\n")
	content.WriteString(m.helpBar.View())

	result := content.String()
	if m.width > 0 && m.height > 0 {
		result = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, result)
	}
	return result
}

// SetSize sets the screen dimensions
func (m *LandingScreen) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.helpBar.SetWidth(width)
}
