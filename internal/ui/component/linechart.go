package component

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/myportfolio/internal/portfolio"
	"github.com/rovshanmuradov/myportfolio/internal/ui/style"
)

// LineChart plots a performance series on a character grid with a y axis
// on the left and the point labels underneath.
type LineChart struct {
	series portfolio.Series
	width  int
	height int

	lineStyle  lipgloss.Style
	axisStyle  lipgloss.Style
	labelStyle lipgloss.Style
}

// NewLineChart creates a chart drawn in the first chart colour
func NewLineChart(palette style.Palette) *LineChart {
	return &LineChart{
		width:      40,
		height:     8,
		lineStyle:  lipgloss.NewStyle().Foreground(style.ChartColor(0)).Bold(true),
		axisStyle:  lipgloss.NewStyle().Foreground(palette.TextMuted),
		labelStyle: lipgloss.NewStyle().Foreground(palette.TextSecondary),
	}
}

// SetSeries sets the plotted series
func (c *LineChart) SetSeries(series portfolio.Series) *LineChart {
	c.series = series
	return c
}

// SetSize sets the plot area in cells, excluding axis and labels
func (c *LineChart) SetSize(width, height int) *LineChart {
	c.width = max(width, 2)
	c.height = max(height, 2)
	return c
}

// View renders the chart
func (c *LineChart) View() string {
	if len(c.series) == 0 {
		return c.axisStyle.Render("no data")
	}

	values := c.series.Values()
	lo, hi := minMax(values)
	grid := make([][]rune, c.height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", c.width))
	}

	cols := c.columns(len(values))
	rowOf := func(v float64) int {
		if hi == lo {
			return c.height / 2
		}
		return c.height - 1 - int(math.Round((v-lo)/(hi-lo)*float64(c.height-1)))
	}

	for i := 0; i+1 < len(values); i++ {
		x0, x1 := cols[i], cols[i+1]
		for x := x0 + 1; x < x1; x++ {
			t := float64(x-x0) / float64(x1-x0)
			grid[rowOf(values[i]+(values[i+1]-values[i])*t)][x] = '·'
		}
	}
	for i, v := range values {
		grid[rowOf(v)][cols[i]] = '●'
	}

	hiLabel := fmt.Sprintf("%.2f", hi)
	loLabel := fmt.Sprintf("%.2f", lo)
	axisWidth := max(len(hiLabel), len(loLabel))

	var b strings.Builder
	for r, row := range grid {
		label := ""
		switch r {
		case 0:
			label = hiLabel
		case c.height - 1:
			label = loLabel
		}
		b.WriteString(c.axisStyle.Render(fmt.Sprintf("%*s │", axisWidth, label)))
		b.WriteString(c.lineStyle.Render(string(row)))
		b.WriteString("\n")
	}
	b.WriteString(c.axisStyle.Render(strings.Repeat(" ", axisWidth) + " └" + strings.Repeat("─", c.width)))
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", axisWidth+2))
	b.WriteString(c.labelStyle.Render(c.labelRow(cols)))

	return b.String()
}

// columns spreads n points evenly over the plot width
func (c *LineChart) columns(n int) []int {
	cols := make([]int, n)
	if n == 1 {
		cols[0] = c.width / 2
		return cols
	}
	for i := range cols {
		cols[i] = i * (c.width - 1) / (n - 1)
	}
	return cols
}

func (c *LineChart) labelRow(cols []int) string {
	row := []rune(strings.Repeat(" ", c.width+4))
	for i, p := range c.series {
		label := []rune(p.Label)
		start := cols[i] - len(label)/2
		start = clamp(start, 0, len(row)-len(label))
		for j, r := range label {
			if start+j >= 0 && start+j < len(row) {
				row[start+j] = r
			}
		}
	}
	return strings.TrimRight(string(row), " ")
}
