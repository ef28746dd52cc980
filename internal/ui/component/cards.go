package component

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/myportfolio/internal/portfolio"
	"github.com/rovshanmuradov/myportfolio/internal/ui/style"
)

const cardWidth = 30

// CardGrid lays out one card per holding, highlighting the selected ticker.
type CardGrid struct {
	holdings []portfolio.Holding
	trends   map[string][]float64
	selected string
	width    int
	currency string

	styles style.Styles
}

// NewCardGrid creates an empty grid
func NewCardGrid(styles style.Styles, currency string) *CardGrid {
	return &CardGrid{
		width:    80,
		currency: currency,
		styles:   styles,
		trends:   make(map[string][]float64),
	}
}

// SetHoldings sets the cards in display order
func (g *CardGrid) SetHoldings(holdings []portfolio.Holding) *CardGrid {
	g.holdings = holdings
	return g
}

// SetTrend sets the sparkline values shown on a ticker's card
func (g *CardGrid) SetTrend(ticker string, values []float64) *CardGrid {
	g.trends[ticker] = values
	return g
}

// SetSelected sets the highlighted ticker
func (g *CardGrid) SetSelected(ticker string) *CardGrid {
	g.selected = ticker
	return g
}

// SetWidth sets the available width
func (g *CardGrid) SetWidth(width int) *CardGrid {
	g.width = width
	return g
}

// Columns returns how many cards fit on one row
func (g *CardGrid) Columns() int {
	// border + margin around each card
	return max(1, g.width/(cardWidth+4))
}

// View renders the grid
func (g *CardGrid) View() string {
	if len(g.holdings) == 0 {
		return g.styles.Muted.Render("No stocks yet")
	}

	cols := g.Columns()
	var rows []string
	for start := 0; start < len(g.holdings); start += cols {
		end := min(start+cols, len(g.holdings))
		cards := make([]string, 0, end-start)
		for _, h := range g.holdings[start:end] {
			cards = append(cards, g.renderCard(h))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (g *CardGrid) renderCard(h portfolio.Holding) string {
	cardStyle := g.styles.Card.Width(cardWidth).MarginRight(1)
	if h.Ticker == g.selected {
		cardStyle = cardStyle.BorderForeground(g.styles.Palette.Primary)
	}

	title := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%s (%s)", h.Name, h.Ticker))
	change := g.styles.ChangeStyle(h.ChangePercent).Render(fmt.Sprintf("(%+.2f%%)", h.ChangePercent))
	price := fmt.Sprintf("Price: %s %s", FormatPrice(h.Price, g.currency), change)
	shares := fmt.Sprintf("Holdings: %s shares", strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.4f", h.Shares), "0"), "."))

	lines := []string{title, price, shares}
	if values, ok := g.trends[h.Ticker]; ok && len(values) > 0 {
		spark := NewSparkline(cardWidth-4, g.styles.Palette.Primary).SetData(values)
		lines = append(lines, spark.View()+" "+spark.Trend())
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}
