package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles groups the styles shared by all screens for one theme.
type Styles struct {
	Palette Palette

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Card     lipgloss.Style
	Panel    lipgloss.Style
	Button   lipgloss.Style
	Disabled lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
}

// NewStyles builds the shared styles for theme.
func NewStyles(theme Theme) Styles {
	palette := PaletteFor(theme)

	return Styles{
		Palette: palette,

		Title: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true).
			Margin(1, 0),

		Subtitle: lipgloss.NewStyle().
			Foreground(palette.TextSecondary).
			Italic(true),

		Card: lipgloss.NewStyle().
			Foreground(palette.Text).
			Background(palette.BackgroundAlt).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.TextMuted).
			Padding(0, 1),

		Panel: lipgloss.NewStyle().
			Foreground(palette.Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.TextMuted).
			Padding(0, 2).
			Margin(0, 1, 1, 0),

		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(palette.Button).
			Bold(true).
			Padding(0, 2),

		Disabled: lipgloss.NewStyle().
			Foreground(palette.TextMuted).
			Background(palette.BackgroundAlt).
			Padding(0, 2),

		Muted: lipgloss.NewStyle().
			Foreground(palette.TextMuted),

		Error: lipgloss.NewStyle().
			Foreground(palette.Error).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(palette.Success),
	}
}

// ChangeStyle colours a percentage change green, red or muted.
func (s Styles) ChangeStyle(change float64) lipgloss.Style {
	switch {
	case change > 0:
		return lipgloss.NewStyle().Foreground(s.Palette.Success)
	case change < 0:
		return lipgloss.NewStyle().Foreground(s.Palette.Error)
	default:
		return s.Muted
	}
}

// AdaptiveJoinHorizontal stacks blocks vertically on narrow screens
func AdaptiveJoinHorizontal(width int, blocks ...string) string {
	if width < 80 {
		return lipgloss.JoinVertical(lipgloss.Left, blocks...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// AdaptiveWidth returns percentage of width, or nearly all of it on narrow screens
func AdaptiveWidth(width, percentage int) int {
	if width < 80 {
		return width - 4
	}
	return (width * percentage) / 100
}
