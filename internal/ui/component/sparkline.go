package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var sparkChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline represents a mini graph component for showing price trends
type Sparkline struct {
	data  []float64
	width int
	color lipgloss.Color
}

// NewSparkline creates a new sparkline component
func NewSparkline(width int, color lipgloss.Color) *Sparkline {
	return &Sparkline{
		data:  make([]float64, 0),
		width: width,
		color: color,
	}
}

// SetData sets the data points for the sparkline, keeping the last width points
func (s *Sparkline) SetData(data []float64) *Sparkline {
	if len(data) > s.width {
		data = data[len(data)-s.width:]
	}
	s.data = make([]float64, len(data))
	copy(s.data, data)
	return s
}

// View renders the sparkline
func (s *Sparkline) View() string {
	return lipgloss.NewStyle().Foreground(s.color).Render(s.blocks())
}

func (s *Sparkline) blocks() string {
	if len(s.data) == 0 {
		return strings.Repeat(string(sparkChars[0]), s.width)
	}

	lo, hi := minMax(s.data)
	if lo == hi {
		return strings.Repeat("▄", len(s.data))
	}

	var result strings.Builder
	for _, value := range s.data {
		normalized := (value - lo) / (hi - lo)
		index := int(normalized * float64(len(sparkChars)-1))
		result.WriteRune(sparkChars[clamp(index, 0, len(sparkChars)-1)])
	}
	return result.String()
}

// Trend returns an arrow for the change from the first to the last point
func (s *Sparkline) Trend() string {
	if len(s.data) < 2 {
		return "→"
	}
	first, last := s.data[0], s.data[len(s.data)-1]
	switch {
	case last > first:
		return "↗"
	case last < first:
		return "↘"
	default:
		return "→"
	}
}

func minMax(data []float64) (float64, float64) {
	if len(data) == 0 {
		return 0, 0
	}
	lo, hi := data[0], data[0]
	for _, v := range data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
