package component

import (
	"strings"
	"testing"

	"github.com/rovshanmuradov/myportfolio/internal/portfolio"
	"github.com/rovshanmuradov/myportfolio/internal/ui/style"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$44,372.50", FormatMoney(decimal.RequireFromString("44372.5"), "USD"))
	assert.Equal(t, "$175.32", FormatPrice(175.32, "USD"))
	assert.Equal(t, "12.30", FormatMoney(decimal.RequireFromString("12.3"), "NOPE"))
}

func TestSparkline(t *testing.T) {
	s := NewSparkline(5, style.ChartColor(0)).SetData([]float64{1, 2, 3, 4, 5, 6})
	assert.Equal(t, "▁▂▄▆█", s.blocks())
	assert.Equal(t, "↗", s.Trend())

	flat := NewSparkline(3, style.ChartColor(0)).SetData([]float64{2, 2})
	assert.Equal(t, "▄▄", flat.blocks())
	assert.Equal(t, "→", flat.Trend())
}

func TestLineChart(t *testing.T) {
	series := portfolio.DefaultSeed().Performance["AAPL"]
	chart := NewLineChart(style.DefaultPalette()).SetSeries(series).SetSize(20, 5)

	view := chart.View()
	assert.Equal(t, len(series), strings.Count(view, "●"))
	assert.Contains(t, view, "175.32")
	assert.Contains(t, view, "170.00")
	assert.Contains(t, view, "Mon")
	assert.Contains(t, view, "Fri")

	assert.Equal(t, []int{0, 4, 9, 14, 19}, chart.columns(5))
	assert.Contains(t, NewLineChart(style.DefaultPalette()).View(), "no data")
}

func TestDistributionCells(t *testing.T) {
	vm, err := portfolio.New(portfolio.DefaultSeed(), zap.NewNop())
	require.NoError(t, err)

	d := NewDistribution(style.DefaultPalette(), "USD").
		SetData(vm.Distribution(), vm.Weights()).
		SetWidth(40)

	cells := d.Cells()
	require.Len(t, cells, 3)
	sum := 0
	for _, n := range cells {
		sum += n
	}
	assert.Equal(t, 40, sum)
	assert.Greater(t, cells[1], cells[2])
	assert.Greater(t, cells[2], cells[0])

	view := d.View()
	assert.Contains(t, view, "GOOGL")
	assert.Contains(t, view, "$28,211.20")
	assert.Less(t, strings.Index(view, "AAPL"), strings.Index(view, "TSLA"))
}

func TestCardGrid(t *testing.T) {
	seed := portfolio.DefaultSeed()
	grid := NewCardGrid(style.NewStyles(style.ThemeDark), "USD").
		SetHoldings(seed.Holdings).
		SetSelected("GOOGL").
		SetWidth(70)

	assert.Equal(t, 2, grid.Columns())
	view := grid.View()
	assert.Contains(t, view, "Apple Inc. (AAPL)")
	assert.Contains(t, view, "Holdings: 25 shares")
	assert.Contains(t, view, "(-0.45%)")
}

func TestStatusHeader(t *testing.T) {
	h := NewStatusHeader(style.NewStyles(style.ThemeDark), style.ThemeDark, "USD").
		SetDisplayName("Alice").
		SetTotal(decimal.RequireFromString("44372.5")).
		SetWidth(100)

	assert.Equal(t, "📊 Alice's Dashboard", h.Title())
	view := h.View()
	assert.Contains(t, view, "Alice's Dashboard")
	assert.Contains(t, view, "$44,372.50")
}
