package style

import "github.com/charmbracelet/lipgloss"

// Base colors
var (
	Cyan   = lipgloss.Color("#00E5FF") // Primary highlight
	Lime   = lipgloss.Color("#A3E635") // Buttons
	Yellow = lipgloss.Color("#FFB500") // Warnings
	Green  = lipgloss.Color("#2AFFAA") // Positive change
	Red    = lipgloss.Color("#FF5555") // Negative change / errors
	Blue   = lipgloss.Color("#3B82F6") // Info

	Base03 = lipgloss.Color("#030712") // Dark background
	Base02 = lipgloss.Color("#1F2937") // Dark card
	Base01 = lipgloss.Color("#6C7280") // Muted text
	Base2  = lipgloss.Color("#ECEFF4") // Light text
	Base1  = lipgloss.Color("#B4BCC8") // Secondary text

	Paper     = lipgloss.Color("#F9FAFB") // Light background
	PaperCard = lipgloss.Color("#E5E7EB") // Light card
	Ink       = lipgloss.Color("#111827") // Dark text
	InkMuted  = lipgloss.Color("#4B5563")
)

// ChartColors is the fixed palette for distribution slices and the performance line.
var ChartColors = [...]lipgloss.Color{
	lipgloss.Color("#00bcd4"),
	lipgloss.Color("#2196f3"),
	lipgloss.Color("#ffc107"),
	lipgloss.Color("#4caf50"),
	lipgloss.Color("#ff5722"),
}

// ChartColor returns the palette entry for slice i, cycling through ChartColors.
func ChartColor(i int) lipgloss.Color {
	n := len(ChartColors)
	return ChartColors[((i%n)+n)%n]
}

// Theme selects the dark or light palette.
type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

// ParseTheme maps "light" to ThemeLight and anything else to ThemeDark.
func ParseTheme(name string) Theme {
	if name == "light" {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) String() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Icon is shown on the theme toggle.
func (t Theme) Icon() string {
	if t == ThemeLight {
		return "☀️"
	}
	return "🌙"
}

// Palette provides a centralized color management
type Palette struct {
	Primary lipgloss.Color
	Button  lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color
	Info    lipgloss.Color

	Background    lipgloss.Color
	BackgroundAlt lipgloss.Color
	Text          lipgloss.Color
	TextMuted     lipgloss.Color
	TextSecondary lipgloss.Color
}

// DefaultPalette returns the dark palette
func DefaultPalette() Palette {
	return PaletteFor(ThemeDark)
}

// PaletteFor returns the palette of the given theme
func PaletteFor(theme Theme) Palette {
	if theme == ThemeLight {
		return Palette{
			Primary: lipgloss.Color("#0891B2"),
			Button:  lipgloss.Color("#65A30D"),
			Success: lipgloss.Color("#15803D"),
			Error:   lipgloss.Color("#B91C1C"),
			Warning: lipgloss.Color("#B45309"),
			Info:    Blue,

			Background:    Paper,
			BackgroundAlt: PaperCard,
			Text:          Ink,
			TextMuted:     InkMuted,
			TextSecondary: Base01,
		}
	}

	return Palette{
		Primary: Cyan,
		Button:  Lime,
		Success: Green,
		Error:   Red,
		Warning: Yellow,
		Info:    Blue,

		Background:    Base03,
		BackgroundAlt: Base02,
		Text:          Base2,
		TextMuted:     Base01,
		TextSecondary: Base1,
	}
}
