package component

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/myportfolio/internal/portfolio"
	"github.com/rovshanmuradov/myportfolio/internal/ui/style"
	"github.com/shopspring/decimal"
)

// Distribution renders the portfolio split as one stacked bar and a legend.
// Slice i is always drawn in style.ChartColor(i).
type Distribution struct {
	slices   []portfolio.Slice
	weights  []float64
	width    int
	currency string

	labelStyle lipgloss.Style
	mutedStyle lipgloss.Style
}

// NewDistribution creates an empty distribution chart
func NewDistribution(palette style.Palette, currency string) *Distribution {
	return &Distribution{
		width:      30,
		currency:   currency,
		labelStyle: lipgloss.NewStyle().Foreground(palette.Text).Bold(true),
		mutedStyle: lipgloss.NewStyle().Foreground(palette.TextMuted),
	}
}

// SetData sets the slices and their weights in percent; both share the same order
func (d *Distribution) SetData(slices []portfolio.Slice, weights []float64) *Distribution {
	d.slices = slices
	d.weights = weights
	return d
}

// SetWidth sets the bar width
func (d *Distribution) SetWidth(width int) *Distribution {
	d.width = max(width, len(d.slices))
	return d
}

// Cells returns how many bar cells each slice gets. The counts add up to the bar width
// whenever any weight is positive.
func (d *Distribution) Cells() []int {
	cells := make([]int, len(d.weights))
	used, largest := 0, -1
	for i, w := range d.weights {
		cells[i] = int(math.Round(w / 100 * float64(d.width)))
		used += cells[i]
		if largest < 0 || w > d.weights[largest] {
			largest = i
		}
	}
	if largest >= 0 && used > 0 {
		cells[largest] += d.width - used
	}
	return cells
}

// View renders the chart
func (d *Distribution) View() string {
	if len(d.slices) == 0 {
		return d.mutedStyle.Render("no holdings")
	}

	var bar strings.Builder
	for i, n := range d.Cells() {
		if n <= 0 {
			continue
		}
		bar.WriteString(lipgloss.NewStyle().Foreground(style.ChartColor(i)).Render(strings.Repeat("█", n)))
	}

	lines := []string{bar.String(), ""}
	for i, s := range d.slices {
		weight := 0.0
		if i < len(d.weights) {
			weight = d.weights[i]
		}
		swatch := lipgloss.NewStyle().Foreground(style.ChartColor(i)).Render("■")
		lines = append(lines, fmt.Sprintf("%s %s %s %s",
			swatch,
			d.labelStyle.Render(fmt.Sprintf("%-6s", s.Label)),
			fmt.Sprintf("%12s", FormatMoney(decimal.NewFromFloat(s.Value), d.currency)),
			d.mutedStyle.Render(fmt.Sprintf("%5.1f%%", weight)),
		))
	}
	return strings.Join(lines, "\n")
}
