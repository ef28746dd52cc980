package component

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/myportfolio/internal/ui/style"
	"github.com/shopspring/decimal"
)

// StatusHeader shows whose dashboard this is, the portfolio value and the theme toggle
type StatusHeader struct {
	displayName string
	total       decimal.Decimal
	currency    string
	theme       style.Theme
	width       int

	container lipgloss.Style
	title     lipgloss.Style
	value     lipgloss.Style
	toggle    lipgloss.Style
}

// NewStatusHeader creates a new status header component
func NewStatusHeader(styles style.Styles, theme style.Theme, currency string) *StatusHeader {
	palette := styles.Palette

	return &StatusHeader{
		currency: currency,
		theme:    theme,
		width:    80,

		container: lipgloss.NewStyle().
			Foreground(palette.Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.Primary).
			Padding(0, 2).
			MarginBottom(1),

		title: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true),

		value: lipgloss.NewStyle().
			Foreground(palette.Text).
			Bold(true),

		toggle: styles.Button,
	}
}

// SetDisplayName sets the name shown in the title
func (sh *StatusHeader) SetDisplayName(name string) *StatusHeader {
	sh.displayName = name
	return sh
}

// SetTotal sets the portfolio value
func (sh *StatusHeader) SetTotal(total decimal.Decimal) *StatusHeader {
	sh.total = total
	return sh
}

// SetWidth sets the header width
func (sh *StatusHeader) SetWidth(width int) *StatusHeader {
	sh.width = width
	return sh
}

// Title returns the unstyled title text
func (sh *StatusHeader) Title() string {
	return fmt.Sprintf("📊 %s's Dashboard", sh.displayName)
}

// View renders the header
func (sh *StatusHeader) View() string {
	left := sh.title.Render(sh.Title())
	middle := "Portfolio Value " + sh.value.Render(FormatMoney(sh.total, sh.currency))
	right := sh.toggle.Render(sh.theme.Icon())

	inner := max(sh.width-6, 0)
	gap := inner - lipgloss.Width(left) - lipgloss.Width(middle) - lipgloss.Width(right)
	if gap < 2 {
		return sh.container.Render(lipgloss.JoinVertical(lipgloss.Left, left, middle, right))
	}
	spaceL := gap / 2
	spaceR := gap - spaceL
	line := left + fmt.Sprintf("%*s", spaceL, "") + middle + fmt.Sprintf("%*s", spaceR, "") + right
	return sh.container.Render(line)
}
